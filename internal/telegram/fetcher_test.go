package telegram

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type stallingFileAPI struct {
	release chan struct{}
}

func (s *stallingFileAPI) GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error) {
	<-s.release
	return tgbotapi.File{}, errors.New("released")
}

type failingFileAPI struct {
	err error
}

func (f *failingFileAPI) GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error) {
	return tgbotapi.File{}, f.err
}

func TestFetch_StalledMetadataCallHonorsContextDeadline(t *testing.T) {
	api := &stallingFileAPI{release: make(chan struct{})}
	t.Cleanup(func() { close(api.release) })

	fetcher := &FileFetcher{api: api, token: "token", client: http.DefaultClient}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- fetcher.Fetch(ctx, "file-1", filepath.Join(t.TempDir(), "source.oga"))
	}()

	select {
	case err := <-done:
		if !errors.Is(err, context.DeadlineExceeded) {
			t.Fatalf("expected deadline error, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("fetch did not return after the context deadline")
	}
}

func TestFetch_MetadataFailureIsWrapped(t *testing.T) {
	apiErr := errors.New("file not found")
	fetcher := &FileFetcher{api: &failingFileAPI{err: apiErr}, token: "token", client: http.DefaultClient}

	err := fetcher.Fetch(context.Background(), "file-1", filepath.Join(t.TempDir(), "source.oga"))
	if !errors.Is(err, apiErr) {
		t.Fatalf("expected wrapped api error, got %v", err)
	}
}
