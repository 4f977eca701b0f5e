package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"polyglot-bot/internal/artifact"
	"polyglot-bot/internal/language"
	"polyglot-bot/internal/prefs"
	"polyglot-bot/internal/speech"
	"polyglot-bot/internal/transcode"
	"polyglot-bot/internal/translate"
)

// Kind tags the content of an inbound item.
type Kind string

const (
	KindText  Kind = "text"
	KindVoice Kind = "voice"
	KindVideo Kind = "video"
)

// Inbound is one user submission. It lives for a single run and is never
// persisted. FileRef is the transport's opaque handle for media payloads.
type Inbound struct {
	UserID  int64
	Kind    Kind
	Text    string
	FileRef string
}

// Result is handed to the deliver callback while the run's artifacts are
// still alive. AudioPath is empty for the text flow and points into the
// run's scope otherwise; it is gone once Run returns.
type Result struct {
	Text      string
	AudioPath string
}

// Fetcher downloads a remote payload into a local file. The transport layer
// provides the implementation.
type Fetcher interface {
	Fetch(ctx context.Context, fileRef, destPath string) error
}

// Runner is the pipeline contract the transport layer depends on.
type Runner interface {
	Run(ctx context.Context, item Inbound, deliver func(Result) error) error
}

// Pipeline chains fetch, transcode, recognition, translation, and synthesis
// into one run per inbound item. Stages execute strictly in order; a failure
// aborts at that stage and the scope release removes whatever artifacts
// exist by then.
type Pipeline struct {
	prefs       prefs.Store
	artifacts   *artifact.Store
	fetcher     Fetcher
	transcoder  transcode.Transcoder
	recognizer  speech.Recognizer
	translator  translate.Translator
	synthesizer speech.Synthesizer
	callTimeout time.Duration
}

func New(
	prefStore prefs.Store,
	artifacts *artifact.Store,
	fetcher Fetcher,
	transcoder transcode.Transcoder,
	recognizer speech.Recognizer,
	translator translate.Translator,
	synthesizer speech.Synthesizer,
	callTimeout time.Duration,
) *Pipeline {
	return &Pipeline{
		prefs:       prefStore,
		artifacts:   artifacts,
		fetcher:     fetcher,
		transcoder:  transcoder,
		recognizer:  recognizer,
		translator:  translator,
		synthesizer: synthesizer,
		callTimeout: callTimeout,
	}
}

// Run executes one item end to end. deliver is invoked exactly once on
// success, before temporary artifacts are destroyed.
func (p *Pipeline) Run(ctx context.Context, item Inbound, deliver func(Result) error) error {
	target, ok := p.prefs.Get(item.UserID)
	if !ok {
		return ErrPreferenceMissing
	}

	switch item.Kind {
	case KindText:
		return p.runText(ctx, item, target, deliver)
	case KindVoice, KindVideo:
		return p.runMedia(ctx, item, target, deliver)
	default:
		return fmt.Errorf("unknown content kind: %q", item.Kind)
	}
}

func (p *Pipeline) runText(ctx context.Context, item Inbound, target string, deliver func(Result) error) error {
	translated, err := p.translateStage(ctx, item.Text, target)
	if err != nil {
		return err
	}
	if err := deliver(Result{Text: translated}); err != nil {
		return stageErr(StageDeliver, err)
	}
	return nil
}

// runMedia is the shared voice/video flow; the two differ only in the
// audio-track probe guarding video input.
func (p *Pipeline) runMedia(ctx context.Context, item Inbound, target string, deliver func(Result) error) error {
	scope, err := p.artifacts.NewScope()
	if err != nil {
		return fmt.Errorf("create artifact scope: %w", err)
	}
	defer func() {
		if err := scope.Release(); err != nil {
			log.Printf("failed to release artifacts for user %d: %v", item.UserID, err)
		}
	}()

	src := scope.Path("source" + sourceExt(item.Kind))
	if err := p.fetchStage(ctx, item.FileRef, src); err != nil {
		return err
	}

	if item.Kind == KindVideo {
		hasAudio, err := p.probeStage(ctx, src)
		if err != nil {
			return err
		}
		if !hasAudio {
			return ErrNoAudioTrack
		}
	}

	pcm := scope.Path("audio-16k-mono.wav")
	if err := p.transcodeStage(ctx, src, pcm); err != nil {
		return err
	}

	recognized, err := p.recognizeStage(ctx, pcm)
	if err != nil {
		return err
	}
	if recognized == "" {
		return ErrNoSpeechDetected
	}

	translated, err := p.translateStage(ctx, recognized, target)
	if err != nil {
		return err
	}

	spoken := scope.Path("translated.ogg")
	if err := p.synthesizeStage(ctx, translated, target, spoken); err != nil {
		return err
	}

	if err := deliver(Result{Text: translated, AudioPath: spoken}); err != nil {
		return stageErr(StageDeliver, err)
	}
	return nil
}

func (p *Pipeline) fetchStage(ctx context.Context, fileRef, dest string) error {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	if err := p.fetcher.Fetch(ctx, fileRef, dest); err != nil {
		return stageErr(StageFetch, err)
	}
	return nil
}

func (p *Pipeline) probeStage(ctx context.Context, src string) (bool, error) {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	hasAudio, err := p.transcoder.HasAudioTrack(ctx, src)
	if err != nil {
		return false, stageErr(StageTranscode, err)
	}
	return hasAudio, nil
}

func (p *Pipeline) transcodeStage(ctx context.Context, src, dest string) error {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	if err := p.transcoder.DecodeToPCM(ctx, src, dest); err != nil {
		return stageErr(StageTranscode, err)
	}
	return nil
}

func (p *Pipeline) recognizeStage(ctx context.Context, pcmPath string) (string, error) {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	text, err := p.recognizer.Recognize(ctx, pcmPath)
	if err != nil {
		return "", stageErr(StageRecognize, err)
	}
	return text, nil
}

func (p *Pipeline) translateStage(ctx context.Context, text, target string) (string, error) {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	translated, err := p.translator.Translate(ctx, text, language.Auto, target)
	if err != nil {
		return "", stageErr(StageTranslate, err)
	}
	return translated, nil
}

func (p *Pipeline) synthesizeStage(ctx context.Context, text, target, dest string) error {
	ctx, cancel := p.callCtx(ctx)
	defer cancel()
	audio, err := p.synthesizer.Synthesize(ctx, text, target)
	if err != nil {
		return stageErr(StageSynthesize, err)
	}
	if err := os.WriteFile(dest, audio, 0o644); err != nil {
		return stageErr(StageSynthesize, err)
	}
	return nil
}

// callCtx bounds every external call so a stalled collaborator cannot hang
// the run.
func (p *Pipeline) callCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, p.callTimeout)
}

func sourceExt(kind Kind) string {
	if kind == KindVideo {
		return ".mp4"
	}
	return ".oga"
}
