package port

import "context"

// TextExtractor abstracts the OCR collaborator: image file path in,
// transcribed text out. Failures propagate as errors, never as
// empty-string success.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (string, error)
}
