package domain

import "errors"

var (
	ErrMalformedInput       = errors.New("malformed input")
	ErrUpstreamUnavailable  = errors.New("upstream model service unavailable")
	ErrMalformedResponse    = errors.New("malformed upstream response")
	ErrFallbackUnconfigured = errors.New("fallback model is not configured")
	ErrUnsupportedImageType = errors.New("unsupported image content type")
	ErrEmptyTranscription   = errors.New("ocr produced no text")
)
