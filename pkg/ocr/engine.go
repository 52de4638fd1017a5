// Package ocr abstracts image-to-text engines.
package ocr

import "context"

// Engine extracts plain text from an image. Implementations own any
// preprocessing they need; callers treat the engine as a black box.
type Engine interface {
	// Name returns the engine name (for logging).
	Name() string

	// ExtractText runs OCR on the raw image bytes and returns the
	// recognized text. Whitespace-only output is returned as-is; deciding
	// whether that is a failure belongs to the caller.
	ExtractText(ctx context.Context, image []byte) (string, error)
}
