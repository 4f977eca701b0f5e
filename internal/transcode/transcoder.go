package transcode

import "context"

// Transcoder converts a compressed audio/video container into the canonical
// recognition format: 16 kHz mono signed 16-bit PCM WAV. Implementations
// keep no state between calls.
type Transcoder interface {
	// DecodeToPCM reads the container at inputPath and writes canonical PCM
	// WAV to outputPath. Video inputs have their video track discarded.
	DecodeToPCM(ctx context.Context, inputPath, outputPath string) error

	// HasAudioTrack reports whether the container carries at least one
	// audio stream.
	HasAudioTrack(ctx context.Context, inputPath string) (bool, error)
}
