package transcode

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

type fakeRunner struct {
	result     commandResult
	err        error
	lastName   string
	lastArgs   []string
	createFile string
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) (commandResult, error) {
	r.lastName = name
	r.lastArgs = args
	if r.createFile != "" {
		_ = os.WriteFile(r.createFile, []byte("RIFF"), 0o644)
	}
	return r.result, r.err
}

func TestDecodeToPCM_BuildsCanonicalArgs(t *testing.T) {
	out := filepath.Join(t.TempDir(), "audio.wav")
	runner := &fakeRunner{createFile: out}
	f := &FFmpeg{ffmpegPath: "ffmpeg", ffprobePath: "ffprobe", runner: runner}

	if err := f.DecodeToPCM(context.Background(), "in.oga", out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := strings.Join(runner.lastArgs, " ")
	for _, want := range []string{"-i in.oga", "-vn", "-ac 1", "-ar 16000", "-c:a pcm_s16le", out} {
		if !strings.Contains(got, want) {
			t.Errorf("args missing %q: %s", want, got)
		}
	}
}

func TestDecodeToPCM_MapsExitFailure(t *testing.T) {
	runner := &fakeRunner{
		result: commandResult{ExitCode: 1, Stderr: "Invalid data found when processing input"},
		err:    errors.New("exit status 1"),
	}
	f := &FFmpeg{ffmpegPath: "ffmpeg", ffprobePath: "ffprobe", runner: runner}

	err := f.DecodeToPCM(context.Background(), "broken.oga", "out.wav")
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got %T: %v", err, err)
	}
	if execErr.ExitCode != 1 {
		t.Errorf("exit code: got %d, want 1", execErr.ExitCode)
	}
	if !strings.Contains(execErr.Error(), "Invalid data") {
		t.Errorf("stderr lost: %v", execErr)
	}
}

func TestDecodeToPCM_MissingOutputIsError(t *testing.T) {
	runner := &fakeRunner{} // succeeds but writes nothing
	f := &FFmpeg{ffmpegPath: "ffmpeg", ffprobePath: "ffprobe", runner: runner}

	err := f.DecodeToPCM(context.Background(), "in.oga", filepath.Join(t.TempDir(), "missing.wav"))
	var execErr *ExecError
	if !errors.As(err, &execErr) {
		t.Fatalf("expected ExecError, got %T: %v", err, err)
	}
}

func TestHasAudioTrack(t *testing.T) {
	cases := []struct {
		name   string
		stdout string
		want   bool
	}{
		{"audio present", "audio\n", true},
		{"no audio", "", false},
		{"whitespace only", "  \n", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			runner := &fakeRunner{result: commandResult{Stdout: tc.stdout}}
			f := &FFmpeg{ffmpegPath: "ffmpeg", ffprobePath: "ffprobe", runner: runner}
			got, err := f.HasAudioTrack(context.Background(), "clip.mp4")
			if err != nil {
				t.Fatalf("probe: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %v, want %v", got, tc.want)
			}
			if runner.lastName != "ffprobe" {
				t.Errorf("probe must use ffprobe, used %s", runner.lastName)
			}
		})
	}
}

func TestHasAudioTrack_ProbeFailure(t *testing.T) {
	runner := &fakeRunner{result: commandResult{ExitCode: 1, Stderr: "no such file"}, err: errors.New("exit status 1")}
	f := &FFmpeg{ffmpegPath: "ffmpeg", ffprobePath: "ffprobe", runner: runner}
	if _, err := f.HasAudioTrack(context.Background(), "gone.mp4"); err == nil {
		t.Fatal("expected probe error")
	}
}
