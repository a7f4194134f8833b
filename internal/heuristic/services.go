package heuristic

import (
	"strings"

	"cardscan/internal/keywords"
)

// findServices collects lines naming offered services or products: no
// digits, no email or phone match, at least one service keyword. Leading
// bullet characters are stripped and duplicates collapsed. The result feeds
// both interestedProducts and remarks.
func (e *Extractor) findServices(lines []Line) []string {
	seen := make(map[string]struct{})
	var services []string
	for _, ln := range lines {
		if containsDigit(ln.Text) {
			continue
		}
		if emailRe.MatchString(ln.Text) || phoneRe.MatchString(ln.Text) {
			continue
		}
		if !keywords.MatchesAny(ln.Text, e.kw.ServiceTerms) {
			continue
		}
		s := strings.TrimLeft(ln.Text, "•·*->– \t")
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		services = append(services, s)
	}
	return services
}
