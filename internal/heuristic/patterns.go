package heuristic

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Broad international form: optional +/00 prefix, digits with common
	// separators. Too-short matches are rejected after normalization.
	phoneRe = regexp.MustCompile(`(?:\+|00)?\(?\d[\d\s().\-/]{5,}\d`)

	websiteRe = regexp.MustCompile(`(?i)\b(?:https?://)?(?:www\.)?[a-z0-9][a-z0-9\-]*(?:\.[a-z0-9\-]+)*\.(?:com|net|org|io|co|in|ai|dev|biz|info|tech|online|store|shop|me|us|uk|ca|au|de|eu)\b(?:/[^\s,]*)?`)

	parenZeroRe = regexp.MustCompile(`\(\s*0\s*\)`)
	dashSpaceRe = regexp.MustCompile(`\s*-\s*`)
)

// EmailMatches returns every email-shaped substring in order of occurrence.
func EmailMatches(text string) []string {
	return emailRe.FindAllString(text, -1)
}

// Emails joins all email matches with ", ".
func Emails(text string) string {
	return strings.Join(EmailMatches(text), ", ")
}

// PhoneMatches finds phone-shaped substrings and normalizes each one:
// format marks stripped, a parenthesized leading (0) removed, whitespace
// collapsed, dash spacing tightened, stray periods converted to spaces.
// Matches shorter than 7 characters or with fewer than 7 digits after
// normalization are dropped, as are duplicates.
func PhoneMatches(text string) []string {
	seen := make(map[string]struct{})
	var phones []string
	for _, m := range phoneRe.FindAllString(text, -1) {
		p := normalizePhone(m)
		if len(p) < 7 || digitCount(p) < 7 {
			continue
		}
		if _, dup := seen[p]; dup {
			continue
		}
		seen[p] = struct{}{}
		phones = append(phones, p)
	}
	return phones
}

// Phones joins all normalized phone matches with ", ".
func Phones(text string) string {
	return strings.Join(PhoneMatches(text), ", ")
}

func normalizePhone(m string) string {
	p := stripFormatMarks(m)
	p = parenZeroRe.ReplaceAllString(p, "")
	p = strings.ReplaceAll(p, ".", " ")
	p = strings.Join(strings.Fields(p), " ")
	p = dashSpaceRe.ReplaceAllString(p, "-")
	return strings.TrimSpace(p)
}

// WebsiteMatches finds domain-like substrings against the TLD allow-list,
// skipping any span already captured as part of an email address, and
// prefixes https:// where the scheme is missing.
func WebsiteMatches(text string) []string {
	emailSpans := emailRe.FindAllStringIndex(text, -1)
	seen := make(map[string]struct{})
	var sites []string
	for _, span := range websiteRe.FindAllStringIndex(text, -1) {
		if overlapsAny(span, emailSpans) {
			continue
		}
		s := text[span[0]:span[1]]
		if !strings.HasPrefix(strings.ToLower(s), "http://") &&
			!strings.HasPrefix(strings.ToLower(s), "https://") {
			s = "https://" + s
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		sites = append(sites, s)
	}
	return sites
}

// Websites joins all website matches with ", ".
func Websites(text string) string {
	return strings.Join(WebsiteMatches(text), ", ")
}

func overlapsAny(span []int, others [][]int) bool {
	for _, o := range others {
		if span[0] < o[1] && o[0] < span[1] {
			return true
		}
	}
	return false
}

func digitCount(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
