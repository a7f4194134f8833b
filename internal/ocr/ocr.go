// Package ocr shells out to tesseract to turn a card image into raw text.
// It is the local adapter for the external OCR collaborator: failures
// always surface as errors, never as empty-string success.
package ocr

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"cardscan/internal/config"
	"cardscan/internal/domain"
)

// Extractor implements port.TextExtractor over the tesseract binary.
type Extractor struct {
	binary    string
	languages string
}

// NewExtractor creates an Extractor from config, applying defaults for an
// empty binary name or language list.
func NewExtractor(cfg *config.OCRConfig) *Extractor {
	binary := cfg.Binary
	if binary == "" {
		binary = "tesseract"
	}
	languages := cfg.Languages
	if languages == "" {
		languages = "eng"
	}
	return &Extractor{binary: binary, languages: languages}
}

// Extract runs tesseract on the image at path and returns the transcribed
// text.
func (e *Extractor) Extract(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("reading image %s: %w", path, err)
	}

	// tesseract <file> stdout -l <langs>
	cmd := exec.CommandContext(ctx, e.binary, path, "stdout", "-l", e.languages)
	var out, errb bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errb
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("tesseract: %w (stderr: %s)", err, strings.TrimSpace(errb.String()))
	}

	text := out.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("ocr of %s: %w", path, domain.ErrEmptyTranscription)
	}
	return text, nil
}
