package augment_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"cardscan/internal/augment"
	"cardscan/internal/domain"
	"cardscan/mocks"
)

func TestAugment_FillsOnlyEmptyFields(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"companyName": "Model Corp", "email": "model@corp.com", "designation": "Director"}`, nil)

	card := domain.NewContactCard()
	card.CompanyName = "Acme Solutions Pvt Ltd"
	card.Email = "john@acme.com"

	err := augment.NewAugmenter(completer).Augment(context.Background(), card, "some text")
	require.NoError(t, err)

	assert.Equal(t, "Acme Solutions Pvt Ltd", card.CompanyName)
	assert.Equal(t, "john@acme.com", card.Email)
	assert.Equal(t, "Director", card.Designation)
	assert.Equal(t, "designation", card.Extras["fallback_filled"])
	completer.AssertExpectations(t)
}

func TestAugment_RecordsRawPayloadAndFilledFields(t *testing.T) {
	raw := `{"contactPerson": "John Carter", "mobile": "+1 555 123 4567"}`
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return(raw, nil)

	card := domain.NewContactCard()
	err := augment.NewAugmenter(completer).Augment(context.Background(), card, "text")
	require.NoError(t, err)

	assert.Equal(t, raw, card.Extras["fallback_raw"])
	assert.Equal(t, "contactPerson,mobile", card.Extras["fallback_filled"])
	assert.Equal(t, "John Carter", card.ContactPerson)
	assert.Equal(t, "+1 555 123 4567", card.Mobile)
}

func TestAugment_StripsFences(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("```json\n{\"website\": \"https://acme.com\"}\n```", nil)

	card := domain.NewContactCard()
	require.NoError(t, augment.NewAugmenter(completer).Augment(context.Background(), card, "text"))
	assert.Equal(t, "https://acme.com", card.Website)
}

func TestAugment_RecoversObjectFromProse(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`Here is the extracted card: {"address": "12 Market Street, Pune"} let me know if you need more.`, nil)

	card := domain.NewContactCard()
	require.NoError(t, augment.NewAugmenter(completer).Augment(context.Background(), card, "text"))
	assert.Equal(t, "12 Market Street, Pune", card.Address)
}

func TestAugment_AcceptsAliasKeys(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"company": "Legacy Corp", "name": "Jane Roe", "phone": "555 987 6543"}`, nil)

	card := domain.NewContactCard()
	require.NoError(t, augment.NewAugmenter(completer).Augment(context.Background(), card, "text"))
	assert.Equal(t, "Legacy Corp", card.CompanyName)
	assert.Equal(t, "Jane Roe", card.ContactPerson)
	assert.Equal(t, "555 987 6543", card.Mobile)
}

func TestAugment_NilCompleter(t *testing.T) {
	card := domain.NewContactCard()
	err := augment.NewAugmenter(nil).Augment(context.Background(), card, "text")
	assert.ErrorIs(t, err, domain.ErrFallbackUnconfigured)
}

func TestAugment_CompleterErrorPropagates(t *testing.T) {
	upstream := errors.New("rate limited")
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).Return("", upstream)

	card := domain.NewContactCard()
	err := augment.NewAugmenter(completer).Augment(context.Background(), card, "text")
	assert.ErrorIs(t, err, upstream)
}

func TestAugment_NoObjectInPayload(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return("I could not find any contact information.", nil)

	card := domain.NewContactCard()
	err := augment.NewAugmenter(completer).Augment(context.Background(), card, "text")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestAugment_ProductsOnlyWhenEmpty(t *testing.T) {
	completer := new(mocks.MockTextCompleter)
	completer.On("Complete", mock.Anything, mock.Anything, mock.Anything).
		Return(`{"interestedProducts": ["pumps", "valves"]}`, nil)

	card := domain.NewContactCard()
	card.InterestedProducts = []string{"machinery"}
	require.NoError(t, augment.NewAugmenter(completer).Augment(context.Background(), card, "text"))
	assert.Equal(t, []string{"machinery"}, card.InterestedProducts)

	empty := domain.NewContactCard()
	require.NoError(t, augment.NewAugmenter(completer).Augment(context.Background(), empty, "text"))
	assert.Equal(t, []string{"pumps", "valves"}, empty.InterestedProducts)
}
