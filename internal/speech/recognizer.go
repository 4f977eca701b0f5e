package speech

import "context"

// Recognizer converts a canonical PCM WAV file into text. An empty result
// means nothing intelligible was heard; that is not an error.
type Recognizer interface {
	Recognize(ctx context.Context, audioPath string) (string, error)
}
