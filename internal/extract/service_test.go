package extract_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardscan/internal/augment"
	"cardscan/internal/domain"
	"cardscan/internal/extract"
	"cardscan/internal/heuristic"
	"cardscan/mocks"
)

// completeCardText yields a card the heuristics fully resolve, so the
// fallback never fires.
const completeCardText = "Mr. John Carter\nAcme Solutions Pvt Ltd\n12 Market Street, Pune 411001\njohn@acme.com\n+1 555 123 4567"

func TestExtractText_EmptyInput(t *testing.T) {
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, nil)
	_, err := svc.ExtractText(context.Background(), "   \n\t ")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}

func TestExtractText_AssignsExtractionID(t *testing.T) {
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, nil)
	card, err := svc.ExtractText(context.Background(), completeCardText)
	require.NoError(t, err)
	assert.NotEmpty(t, card.Extras["extraction_id"])
}

func TestExtractText_FallbackNotCalledWhenComplete(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	svc := extract.NewService(heuristic.NewExtractor(nil), augment.NewAugmenter(completer), nil)

	card, err := svc.ExtractText(context.Background(), completeCardText)
	require.NoError(t, err)

	assert.Equal(t, "Mr. John Carter", card.ContactPerson)
	assert.Equal(t, "Acme Solutions Pvt Ltd", card.CompanyName)
	completer.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestExtractText_FallbackFillsGaps(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"contactPerson": "Priya Sharma", "email": "priya@globaltrading.example"}`, nil)
	svc := extract.NewService(heuristic.NewExtractor(nil), augment.NewAugmenter(completer), nil)

	card, err := svc.ExtractText(context.Background(), "GLOBAL\nTRADING CO")
	require.NoError(t, err)

	assert.Equal(t, "GLOBAL TRADING CO", card.CompanyName)
	assert.Equal(t, "Priya Sharma", card.ContactPerson)
	assert.Equal(t, "priya@globaltrading.example", card.Email)
	completer.AssertExpectations(t)
}

func TestExtractText_FallbackUnconfiguredKeepsHeuristicResult(t *testing.T) {
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, nil)

	card, err := svc.ExtractText(context.Background(), "GLOBAL\nTRADING CO")
	require.NoError(t, err)

	assert.Equal(t, "GLOBAL TRADING CO", card.CompanyName)
	assert.Contains(t, card.Extras["fallback_skipped"], domain.ErrFallbackUnconfigured.Error())
}

func TestExtractText_FallbackErrorKeepsHeuristicResult(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("upstream timeout"))
	svc := extract.NewService(heuristic.NewExtractor(nil), augment.NewAugmenter(completer), nil)

	card, err := svc.ExtractText(context.Background(), "GLOBAL\nTRADING CO")
	require.NoError(t, err)

	assert.Equal(t, "GLOBAL TRADING CO", card.CompanyName)
	assert.Contains(t, card.Extras["fallback_skipped"], "upstream timeout")
}

func TestExtractFile_TranscribesThenExtracts(t *testing.T) {
	ocr := new(mocks.MockTextExtractor)
	ocr.On("Extract", mock.Anything, "/tmp/card.jpg").Return(completeCardText, nil)
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, ocr)

	card, err := svc.ExtractFile(context.Background(), "/tmp/card.jpg")
	require.NoError(t, err)

	assert.Equal(t, "Acme Solutions Pvt Ltd", card.CompanyName)
	assert.Equal(t, "john@acme.com", card.Email)
	ocr.AssertExpectations(t)
}

func TestExtractFile_OCRErrorPropagates(t *testing.T) {
	ocr := new(mocks.MockTextExtractor)
	ocr.On("Extract", mock.Anything, "/tmp/card.jpg").Return("", domain.ErrEmptyTranscription)
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, ocr)

	_, err := svc.ExtractFile(context.Background(), "/tmp/card.jpg")
	assert.ErrorIs(t, err, domain.ErrEmptyTranscription)
}

func TestExtractFile_NoAdapter(t *testing.T) {
	svc := extract.NewService(heuristic.NewExtractor(nil), nil, nil)
	_, err := svc.ExtractFile(context.Background(), "/tmp/card.jpg")
	assert.ErrorIs(t, err, domain.ErrMalformedInput)
}
