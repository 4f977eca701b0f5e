package translate

import "context"

// Translator converts text between languages. Pass language.Auto as source
// to let the backend detect it.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) (string, error)
}
