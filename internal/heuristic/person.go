package heuristic

import (
	"math"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"cardscan/internal/keywords"
)

var leadingJunkRe = regexp.MustCompile(`^[^\p{L}\p{N}]+`)

// likelyName reports whether a line reads like a person's name: 2-4 words,
// no stop-word, and either a leading honorific or a title-case score of at
// least max(2, ceil(0.75 * words)).
func (e *Extractor) likelyName(line string) bool {
	s := leadingJunkRe.ReplaceAllString(line, "")
	if !containsLetter(s) {
		return false
	}
	words := strings.Fields(s)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if _, stop := e.kw.NameStopWords[keywords.NormalizeToken(w)]; stop {
			return false
		}
	}
	if _, ok := e.kw.Honorifics[keywords.NormalizeToken(words[0])]; ok {
		return true
	}
	score := 0
	for _, w := range words {
		if !containsLetter(w) && !isInitial(w) {
			return false
		}
		if isTitleCased(w) || isAllUpper(w) {
			score++
		}
	}
	need := int(math.Ceil(0.75 * float64(len(words))))
	if need < 2 {
		need = 2
	}
	return score >= need
}

// findName picks the contact person from the weighted candidate list:
// company lines, lines matching email or phone patterns, and lines carrying
// a company keyword are excluded; remaining candidates are ordered by
// weight, then original position. If nothing survives, the first name-like
// line anywhere in the document wins (still never the company line).
func (e *Extractor) findName(lines []Line, companyLines map[string]struct{}) string {
	candidates := make([]Line, 0, len(lines))
	order := make(map[string]int, len(lines))
	for i, ln := range lines {
		order[ln.Text] = i
		if _, taken := companyLines[ln.Text]; taken {
			continue
		}
		if emailRe.MatchString(ln.Text) || phoneRe.MatchString(ln.Text) {
			continue
		}
		if keywords.MatchesAny(ln.Text, e.kw.CompanySuffixes) {
			continue
		}
		candidates = append(candidates, ln)
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].Weight != candidates[j].Weight {
			return candidates[i].Weight > candidates[j].Weight
		}
		return order[candidates[i].Text] < order[candidates[j].Text]
	})
	for _, ln := range candidates {
		if e.likelyName(ln.Text) {
			return ln.Text
		}
	}
	for _, ln := range lines {
		if _, taken := companyLines[ln.Text]; taken {
			continue
		}
		if e.likelyName(ln.Text) {
			return ln.Text
		}
	}
	return ""
}

func isInitial(w string) bool {
	r := []rune(strings.TrimSuffix(w, "."))
	return len(r) == 1 && unicode.IsLetter(r[0])
}

func isTitleCased(w string) bool {
	r := []rune(w)
	for _, c := range r {
		if unicode.IsLetter(c) {
			return unicode.IsUpper(c)
		}
	}
	return false
}

func isAllUpper(w string) bool {
	return containsLetter(w) && w == strings.ToUpper(w)
}
