package heuristic

import (
	"strings"

	"cardscan/internal/keywords"
)

// findAddress aggregates address-looking lines. Each line is considered
// after stripping embedded email and website substrings; survivors must not
// repeat the chosen name or company, must not be pure phone matches, and
// must carry an address keyword or at least one digit. Everything that
// survives is joined with ", " in original order: over-including beats
// dropping information.
func (e *Extractor) findAddress(lines []Line, name, company string, companyLines map[string]struct{}) string {
	var parts []string
	for _, ln := range lines {
		s := emailRe.ReplaceAllString(ln.Text, "")
		s = websiteRe.ReplaceAllString(s, "")
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, taken := companyLines[ln.Text]; taken {
			continue
		}
		lower := strings.ToLower(s)
		if name != "" && strings.Contains(lower, strings.ToLower(name)) {
			continue
		}
		if company != "" && strings.Contains(lower, strings.ToLower(company)) {
			continue
		}
		if !containsLetter(s) && phoneRe.MatchString(s) {
			continue
		}
		if keywords.MatchesAny(s, e.kw.AddressIndicators) || containsDigit(s) {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, ", ")
}
