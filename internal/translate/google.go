package translate

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	translatev2 "google.golang.org/api/translate/v2"

	"polyglot-bot/internal/language"
)

// GoogleClient uses the Translation API v2, which detects the source
// language when none is specified.
type GoogleClient struct {
	svc *translatev2.Service
}

func NewGoogle(ctx context.Context, apiKey string) (*GoogleClient, error) {
	svc, err := translatev2.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to init translate service: %w", err)
	}
	return &GoogleClient{svc: svc}, nil
}

func (c *GoogleClient) Translate(ctx context.Context, text, source, target string) (string, error) {
	call := c.svc.Translations.List([]string{text}, target).Format("text")
	if source != language.Auto && source != "" {
		call = call.Source(source)
	}
	resp, err := call.Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("google translate failed: %w", err)
	}
	if len(resp.Translations) == 0 {
		return "", fmt.Errorf("google translate returned no translations")
	}
	return resp.Translations[0].TranslatedText, nil
}
