// Package augment fills gaps the heuristic pass left behind by asking a
// text-completion model. The merge is strictly additive: a model value only
// lands in a field that is still empty.
package augment

import (
	"context"
	"fmt"
	"strings"

	"cardscan/internal/domain"
	"cardscan/internal/jsonx"
	"cardscan/internal/port"
)

// Augmenter wraps a TextCompleter behind the additive merge policy.
type Augmenter struct {
	completer port.TextCompleter
}

// NewAugmenter creates an Augmenter. completer may be nil when the fallback
// provider is unconfigured; Augment then fails with a named error.
func NewAugmenter(completer port.TextCompleter) *Augmenter {
	return &Augmenter{completer: completer}
}

// Augment sends the normalized card text to the fallback model and merges
// returned fields into card, never overwriting a non-empty heuristic value.
// The raw model payload and the list of filled fields are recorded in
// card.Extras for audit.
func (a *Augmenter) Augment(ctx context.Context, card *domain.ContactCard, normalizedText string) error {
	if a.completer == nil {
		return domain.ErrFallbackUnconfigured
	}

	raw, err := a.completer.Complete(ctx, BuildFallbackPrompt(), normalizedText)
	if err != nil {
		return fmt.Errorf("fallback completion: %w", err)
	}
	if card.Extras == nil {
		card.Extras = map[string]string{}
	}
	card.Extras["fallback_raw"] = raw

	payload := jsonx.StripFences(raw)
	var got domain.ContactCard
	if err := jsonx.Decode(payload, &got); err != nil {
		obj, ok := jsonx.FirstObject(payload)
		if !ok {
			return fmt.Errorf("fallback payload has no JSON object: %w", err)
		}
		if err := jsonx.Decode(obj, &got); err != nil {
			return fmt.Errorf("parsing fallback payload: %w", err)
		}
	}

	filled := mergeAdditive(card, &got)
	if len(filled) > 0 {
		card.Extras["fallback_filled"] = strings.Join(filled, ",")
	}
	return nil
}

// mergeAdditive copies model fields into empty card fields only, returning
// the names of the fields it filled.
func mergeAdditive(card, got *domain.ContactCard) []string {
	var filled []string
	fill := func(dst *string, src, name string) {
		if *dst == "" && src != "" {
			*dst = src
			filled = append(filled, name)
		}
	}
	fill(&card.CompanyName, got.CompanyName, "companyName")
	fill(&card.ContactPerson, got.ContactPerson, "contactPerson")
	fill(&card.Designation, got.Designation, "designation")
	fill(&card.Email, got.Email, "email")
	fill(&card.Mobile, got.Mobile, "mobile")
	fill(&card.Website, got.Website, "website")
	fill(&card.Address, got.Address, "address")
	fill(&card.Remarks, got.Remarks, "remarks")
	if len(card.InterestedProducts) == 0 && len(got.InterestedProducts) > 0 {
		card.InterestedProducts = got.InterestedProducts
		filled = append(filled, "interestedProducts")
	}
	return filled
}
