package heuristic

import (
	"strings"
	"unicode"

	"cardscan/internal/keywords"
)

// likelyCompany reports whether a line reads like a company title: a
// company-suffix keyword, an all-caps run of letters, or a fully uppercase
// "fancy" form with interleaved decoration. A line that also reads like a
// person's name is never a company.
func (e *Extractor) likelyCompany(line string) bool {
	if len(strings.TrimSpace(line)) < 3 {
		return false
	}
	hasSignal := keywords.MatchesAny(line, e.kw.CompanySuffixes) ||
		allCapsLetters(line, 5) ||
		fancyCaps(line)
	if !hasSignal {
		return false
	}
	return !e.likelyName(line)
}

// findCompany picks the company line(s). On the first company-like line it
// peeks at the next line and concatenates when that one is independently
// company-like, covering two-line legal names. Fallbacks: the first
// all-caps non-name line (optionally merged with a following one), then the
// very first line as a last resort.
func (e *Extractor) findCompany(lines []Line) (string, map[string]struct{}) {
	used := make(map[string]struct{})

	for i, ln := range lines {
		if !e.likelyCompany(ln.Text) {
			continue
		}
		used[ln.Text] = struct{}{}
		if i+1 < len(lines) {
			next := lines[i+1].Text
			if next != ln.Text && e.likelyCompany(next) {
				used[next] = struct{}{}
				return ln.Text + " " + next, used
			}
		}
		return ln.Text, used
	}

	for i, ln := range lines {
		if !allCapsLetters(ln.Text, 4) || e.likelyName(ln.Text) {
			continue
		}
		used[ln.Text] = struct{}{}
		if i+1 < len(lines) {
			next := lines[i+1].Text
			if next != ln.Text && allCapsLetters(next, 4) && !e.likelyName(next) {
				used[next] = struct{}{}
				return ln.Text + " " + next, used
			}
		}
		return ln.Text, used
	}

	if len(lines) > 0 {
		// Weak last resort, kept deliberately: some cards lead with the
		// person's name and this will misfire there.
		used[lines[0].Text] = struct{}{}
		return lines[0].Text, used
	}
	return "", used
}

// allCapsLetters reports whether the line's alphabetic characters are all
// uppercase and number at least min.
func allCapsLetters(line string, min int) bool {
	letters := 0
	for _, r := range line {
		if !unicode.IsLetter(r) {
			continue
		}
		if !unicode.IsUpper(r) {
			return false
		}
		letters++
	}
	return letters >= min
}

// fancyCaps tolerates non-letter decoration between letters: the line must
// contain at least one letter and equal its own uppercased form.
func fancyCaps(line string) bool {
	return containsLetter(line) && line == strings.ToUpper(line)
}

func containsLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func containsDigit(s string) bool {
	for _, r := range s {
		if unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
