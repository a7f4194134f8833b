// Package extract wires the heuristic pipeline to the optional fallback
// augmenter and the OCR adapter.
package extract

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"cardscan/internal/augment"
	"cardscan/internal/domain"
	"cardscan/internal/heuristic"
	"cardscan/internal/port"
)

// Service runs text extraction end to end. augmenter and ocr are optional;
// a nil augmenter means heuristics only, a nil ocr means ExtractFile is
// unavailable.
type Service struct {
	extractor *heuristic.Extractor
	augmenter *augment.Augmenter
	ocr       port.TextExtractor
}

// NewService creates a Service.
func NewService(extractor *heuristic.Extractor, augmenter *augment.Augmenter, ocr port.TextExtractor) *Service {
	return &Service{extractor: extractor, augmenter: augmenter, ocr: ocr}
}

// ExtractText runs the heuristic pass and, when key fields are still empty,
// the fallback augmenter. Augmentation failure never discards the heuristic
// result: it is logged and recorded in extras.
func (s *Service) ExtractText(ctx context.Context, rawText string) (*domain.ContactCard, error) {
	if strings.TrimSpace(rawText) == "" {
		return nil, fmt.Errorf("%w: raw text is empty", domain.ErrMalformedInput)
	}

	card := s.extractor.Extract(rawText)
	card.Extras["extraction_id"] = uuid.NewString()

	if card.NeedsFallback() {
		if err := s.augment(ctx, card); err != nil {
			log.Printf("extract.Service: fallback augmentation skipped: %v", err)
			card.Extras["fallback_skipped"] = err.Error()
		}
	}
	return card, nil
}

// ExtractFile transcribes the image at path through the OCR adapter and
// feeds the text into ExtractText. OCR failure propagates.
func (s *Service) ExtractFile(ctx context.Context, path string) (*domain.ContactCard, error) {
	if s.ocr == nil {
		return nil, fmt.Errorf("%w: no ocr adapter configured", domain.ErrMalformedInput)
	}
	text, err := s.ocr.Extract(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("transcribing %s: %w", path, err)
	}
	return s.ExtractText(ctx, text)
}

func (s *Service) augment(ctx context.Context, card *domain.ContactCard) error {
	if s.augmenter == nil {
		return domain.ErrFallbackUnconfigured
	}
	return s.augmenter.Augment(ctx, card, heuristic.CollapseWhitespace(card.Extras["normalized_text"]))
}
