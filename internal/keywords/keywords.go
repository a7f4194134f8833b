// Package keywords holds the static token lists the heuristic classifiers
// match against. The sets are configuration data injected at construction
// time; tests substitute smaller sets.
package keywords

import "strings"

// Set groups the keyword categories used by the role classifiers. All tokens
// are lowercase. A Set is read-only after construction.
type Set struct {
	CompanySuffixes   []string
	AddressIndicators []string
	DesignationTitles []string
	ServiceTerms      []string
	NameStopWords     map[string]struct{}
	Honorifics        map[string]struct{}
}

// Default returns the canonical keyword set.
func Default() *Set {
	return &Set{
		CompanySuffixes: []string{
			"pvt", "ltd", "llp", "llc", "plc", "inc", "corp", "gmbh", "co",
			"limited", "corporation", "company", "enterprises", "enterprise",
			"industries", "solutions", "technologies", "international",
			"group", "traders", "trading", "exports", "imports", "& sons",
			"& co",
		},
		AddressIndicators: []string{
			"street", "road", "avenue", "lane", "block", "sector", "floor",
			"building", "tower", "plaza", "suite", "po box", "p.o.", "city",
			"district", "pin", "zip", "postal", "nagar", "marg", "colony",
			"area", "near", "opp", "cross", "industrial", "estate", "phase",
			"house", "office",
		},
		DesignationTitles: []string{
			"ceo", "cto", "cfo", "coo", "founder", "co-founder", "director",
			"managing director", "manager", "president", "vice president",
			"chairman", "proprietor", "partner", "head of", "team lead",
			"engineer", "executive", "officer", "consultant", "specialist",
			"supervisor", "secretary", "analyst", "architect", "designer",
			"developer", "sales manager", "marketing manager",
		},
		ServiceTerms: []string{
			"services", "products", "dealer", "dealers", "supplier",
			"suppliers", "manufacturer", "manufacturers", "distributor",
			"distributors", "wholesale", "retail", "exporter", "importer",
			"specialist in", "we deal in", "all kinds of", "spare parts",
			"equipment", "machinery", "stockist", "authorised",
		},
		NameStopWords: toSet(
			"pvt", "ltd", "llp", "llc", "plc", "inc", "corp", "limited",
			"corporation", "company", "solutions", "technologies",
			"technology", "services", "systems", "group", "enterprises",
			"industries", "international", "investments", "management",
			"consulting", "global", "trading", "exports", "imports",
			"private", "bank", "office", "india",
		),
		Honorifics: toSet(
			"mr", "mrs", "ms", "miss", "dr", "prof", "er", "engr", "eng",
			"shri", "smt", "md", "sir", "madam", "capt", "col",
		),
	}
}

// MatchesAny reports whether the line contains any keyword from the list.
// Single-word keywords match whole tokens only, so "inc" does not fire on
// "Principal"; multi-word keywords match as substrings.
func MatchesAny(line string, kws []string) bool {
	lower := strings.ToLower(line)
	var tokens []string
	for _, kw := range kws {
		if strings.ContainsAny(kw, " .&") {
			if strings.Contains(lower, kw) {
				return true
			}
			continue
		}
		if tokens == nil {
			tokens = tokenize(lower)
		}
		for _, tok := range tokens {
			if tok == kw {
				return true
			}
		}
	}
	return false
}

// ContainsAny reports whether the lowercased line contains any keyword as a
// plain substring. The designation classifier uses this looser form so that
// "Sr. Sales Manager (EMEA)" still matches "sales manager".
func ContainsAny(line string, kws []string) bool {
	lower := strings.ToLower(line)
	for _, kw := range kws {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// NormalizeToken lowercases a word and trims surrounding punctuation, the
// form used for stop-word and honorific lookups.
func NormalizeToken(word string) string {
	return strings.Trim(strings.ToLower(word), ".,;:()[]'\"!?-")
}

func tokenize(lower string) []string {
	fields := strings.Fields(lower)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := NormalizeToken(f); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

func toSet(words ...string) map[string]struct{} {
	s := make(map[string]struct{}, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}
