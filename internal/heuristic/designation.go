package heuristic

import "cardscan/internal/keywords"

// findDesignation returns the first line containing a designation title as
// a case-insensitive substring, or "".
func (e *Extractor) findDesignation(lines []Line) string {
	for _, ln := range lines {
		if keywords.ContainsAny(ln.Text, e.kw.DesignationTitles) {
			return ln.Text
		}
	}
	return ""
}
