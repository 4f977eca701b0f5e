package pipeline

import (
	"errors"
	"fmt"
)

// Recoverable run outcomes that map directly to a user-facing message.
var (
	// ErrPreferenceMissing gates the whole pipeline: nothing runs until the
	// user has picked a target language.
	ErrPreferenceMissing = errors.New("no target language selected")

	// ErrNoSpeechDetected is returned when recognition hears nothing; the
	// run stops before translation.
	ErrNoSpeechDetected = errors.New("no speech detected")

	// ErrNoAudioTrack is returned for a video without audio, before any
	// transcode or recognition attempt.
	ErrNoAudioTrack = errors.New("video has no audio track")
)

// Stage names the pipeline step a failure belongs to.
type Stage string

const (
	StageFetch      Stage = "fetch"
	StageTranscode  Stage = "transcode"
	StageRecognize  Stage = "recognize"
	StageTranslate  Stage = "translate"
	StageSynthesize Stage = "synthesize"
	StageDeliver    Stage = "deliver"
)

// StageError wraps an external-collaborator failure with the stage it
// happened in. The run aborts there and its artifacts are released; the
// transport layer turns the stage into one user-facing message.
type StageError struct {
	Stage Stage
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageErr(stage Stage, err error) error {
	return &StageError{Stage: stage, Err: err}
}
