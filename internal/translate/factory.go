package translate

import (
	"context"
	"fmt"
	"strings"
)

const (
	ProviderOpenAI = "openai"
	ProviderYandex = "yandex"
	ProviderGoogle = "google"
)

// Factory creates translator clients with consistent logic
type Factory struct {
	OpenaiAPIKey     string
	OpenaiBaseURL    string
	OpenaiModel      string
	YandexOAuthToken string
	YandexFolderID   string
	GoogleAPIKey     string
}

func (f *Factory) CreateClient(ctx context.Context, provider string) (Translator, error) {
	switch strings.ToLower(provider) {
	case ProviderOpenAI:
		return NewOpenAI(f.OpenaiAPIKey, f.OpenaiBaseURL, f.OpenaiModel), nil
	case ProviderYandex:
		return NewYandex(f.YandexOAuthToken, f.YandexFolderID)
	case ProviderGoogle:
		return NewGoogle(ctx, f.GoogleAPIKey)
	default:
		return nil, fmt.Errorf("unknown translate provider: %s", provider)
	}
}
