package speech

import "context"

// Synthesizer renders text as spoken audio bytes in an OGG/Opus container.
type Synthesizer interface {
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}
