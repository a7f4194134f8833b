// Package heuristic implements the deterministic, rule-based extraction
// pipeline: OCR text in, structured contact card out. Everything here is
// pure computation with no I/O, safe to run concurrently across requests.
package heuristic

import (
	"strings"

	"cardscan/internal/domain"
	"cardscan/internal/keywords"
)

// Extractor runs the classifier chain over normalized lines. The keyword
// set is injected at construction and read-only afterwards.
type Extractor struct {
	kw *keywords.Set
}

// NewExtractor creates an Extractor. A nil set means the default keywords.
func NewExtractor(kw *keywords.Set) *Extractor {
	if kw == nil {
		kw = keywords.Default()
	}
	return &Extractor{kw: kw}
}

// Extract classifies the raw OCR text into a ContactCard. Classifiers run
// in a fixed order: patterns, company, name, designation, address,
// services; company and name cross-exclude each other's lines. Fields the
// rules cannot determine stay empty, which is a valid terminal state.
func (e *Extractor) Extract(rawText string) *domain.ContactCard {
	card := domain.NewContactCard()
	lines := NormalizeLines(rawText)
	flat := CollapseWhitespace(rawText)

	card.Email = Emails(flat)
	card.Mobile = Phones(flat)
	card.Website = Websites(flat)

	company, companyLines := e.findCompany(lines)
	card.CompanyName = company
	card.ContactPerson = e.findName(lines, companyLines)
	card.Designation = e.findDesignation(lines)
	card.Address = e.findAddress(lines, card.ContactPerson, company, companyLines)

	services := e.findServices(lines)
	if len(services) > 0 {
		card.InterestedProducts = services
	}
	card.Remarks = strings.Join(services, ", ")

	card.Extras["normalized_text"] = JoinLines(lines)
	return card
}
