// Package speech abstracts speech-to-text engines and audio decoding.
package speech

import (
	"context"
	"errors"
)

// ErrNotUnderstood means the engine processed the audio but found no
// intelligible speech. Retryable with another locale hint.
var ErrNotUnderstood = errors.New("speech: audio not understood")

// ErrServiceUnavailable means the recognition service itself failed
// (network, non-2xx). Never retried within a request.
var ErrServiceUnavailable = errors.New("speech: recognition service unavailable")

// Recognizer transcribes speech from a decoded audio clip.
type Recognizer interface {
	// Name returns the engine name (for logging).
	Name() string

	// Transcribe recognizes speech from FLAC-encoded audio. locale is a BCP-47
	// hint ("en-IN", "hi-IN"); empty means the engine default. Failures are
	// ErrNotUnderstood, ErrServiceUnavailable, or a context error.
	Transcribe(ctx context.Context, flac []byte, sampleRate int, locale string) (string, error)
}

// Decoder converts an uploaded audio container into FLAC suitable for the
// recognizer. Any temporary storage it creates must be cleaned up before it
// returns, on every path.
type Decoder interface {
	ToFLAC(ctx context.Context, audio []byte, formatHint string) ([]byte, error)
}
