package telegram

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

type fileAPI interface {
	GetFile(config tgbotapi.FileConfig) (tgbotapi.File, error)
}

// FileFetcher resolves a Telegram file reference and downloads its bytes
// into a local artifact. It implements pipeline.Fetcher.
type FileFetcher struct {
	api    fileAPI
	token  string
	client *http.Client
}

func NewFileFetcher(api *tgbotapi.BotAPI) *FileFetcher {
	return &FileFetcher{api: api, token: api.Token, client: http.DefaultClient}
}

func (f *FileFetcher) Fetch(ctx context.Context, fileRef, destPath string) error {
	file, err := f.getFile(ctx, fileRef)
	if err != nil {
		return fmt.Errorf("failed to resolve file: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(f.token), nil)
	if err != nil {
		return fmt.Errorf("failed to build download request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to download file: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("download returned status %d", resp.StatusCode)
	}

	out, err := os.Create(destPath)
	if err != nil {
		return fmt.Errorf("failed to create artifact: %w", err)
	}
	if _, err := io.Copy(out, resp.Body); err != nil {
		_ = out.Close()
		return fmt.Errorf("failed to write artifact: %w", err)
	}
	return out.Close()
}

type fileResult struct {
	file tgbotapi.File
	err  error
}

// getFile bounds the metadata call with ctx. The bot API client takes no
// context and has no timeout of its own, so a stalled call must not hold
// the run past its deadline.
func (f *FileFetcher) getFile(ctx context.Context, fileRef string) (tgbotapi.File, error) {
	ch := make(chan fileResult, 1)
	go func() {
		file, err := f.api.GetFile(tgbotapi.FileConfig{FileID: fileRef})
		ch <- fileResult{file: file, err: err}
	}()
	select {
	case <-ctx.Done():
		return tgbotapi.File{}, ctx.Err()
	case res := <-ch:
		return res.file, res.err
	}
}
