package transcode

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// ExecError is a typed decode failure: the external process could not be
// started or exited non-zero.
type ExecError struct {
	Command  string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ExecError) Error() string {
	return fmt.Sprintf("%s failed (exit=%d): %s", e.Command, e.ExitCode, strings.TrimSpace(e.Stderr))
}

func (e *ExecError) Unwrap() error { return e.Err }

// commandResult is an internal process execution response.
type commandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// commandRunner abstracts process execution for testability.
type commandRunner interface {
	Run(ctx context.Context, name string, args ...string) (commandResult, error)
}

type execRunner struct{}

func (r *execRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := commandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: 0,
	}
	if err != nil {
		result.ExitCode = -1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitCode = exitErr.ExitCode()
		}
		return result, err
	}
	return result, nil
}

// FFmpeg shells out to ffmpeg/ffprobe. Callers depend only on the
// Transcoder contract; the binaries are configurable for odd installs.
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	runner      commandRunner
}

func NewFFmpeg(ffmpegPath, ffprobePath string) *FFmpeg {
	if ffmpegPath == "" {
		ffmpegPath = "ffmpeg"
	}
	if ffprobePath == "" {
		ffprobePath = "ffprobe"
	}
	return &FFmpeg{ffmpegPath: ffmpegPath, ffprobePath: ffprobePath, runner: &execRunner{}}
}

func (f *FFmpeg) DecodeToPCM(ctx context.Context, inputPath, outputPath string) error {
	args := buildDecodeArgs(inputPath, outputPath)
	res, err := f.runner.Run(ctx, f.ffmpegPath, args...)
	if err != nil {
		return &ExecError{Command: f.ffmpegPath, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err}
	}
	if _, err := os.Stat(outputPath); err != nil {
		return &ExecError{
			Command:  f.ffmpegPath,
			ExitCode: res.ExitCode,
			Stderr:   "decode completed but output file is missing",
			Err:      err,
		}
	}
	return nil
}

func (f *FFmpeg) HasAudioTrack(ctx context.Context, inputPath string) (bool, error) {
	args := buildProbeArgs(inputPath)
	res, err := f.runner.Run(ctx, f.ffprobePath, args...)
	if err != nil {
		return false, &ExecError{Command: f.ffprobePath, ExitCode: res.ExitCode, Stderr: res.Stderr, Err: err}
	}
	return strings.TrimSpace(res.Stdout) != "", nil
}

// buildDecodeArgs drops any video track and resamples to mono 16k s16le WAV.
func buildDecodeArgs(inputPath, outputPath string) []string {
	return []string{
		"-hide_banner",
		"-nostdin",
		"-y",
		"-i", inputPath,
		"-vn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		outputPath,
	}
}

// buildProbeArgs lists audio stream codec types; empty output means the
// container has no audio track.
func buildProbeArgs(inputPath string) []string {
	return []string{
		"-v", "error",
		"-select_streams", "a",
		"-show_entries", "stream=codec_type",
		"-of", "csv=p=0",
		inputPath,
	}
}
