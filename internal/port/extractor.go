package port

import (
	"context"

	"cardscan/internal/domain"
)

// CardExtractor abstracts text-based contact card extraction.
type CardExtractor interface {
	ExtractText(ctx context.Context, rawText string) (*domain.ContactCard, error)
}

// ImageInput carries the data needed for image-based extraction.
type ImageInput struct {
	ImageBase64 string
	MimeType    string
}

// ImageExtractor abstracts vision-model contact card extraction. It shares
// the ContactCard output type with CardExtractor but takes the raw image.
type ImageExtractor interface {
	ExtractImage(ctx context.Context, input ImageInput) (*domain.ContactCard, error)
}
