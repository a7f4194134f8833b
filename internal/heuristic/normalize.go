package heuristic

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Line is a deduplicated, trimmed line of source text with its positional
// weight. The first line of a document gets weight 2: titles and company
// names cluster there.
type Line struct {
	Text   string
	Weight int
}

var quoteReplacer = strings.NewReplacer(
	"‘", "'", "’", "'",
	"“", `"`, "”", `"`,
)

// formatMarks removes Unicode format characters (Cf), which covers the
// bidirectional-text marks OCR engines leak into phone numbers.
var formatMarks = runes.Remove(runes.In(unicode.Cf))

// NormalizeLines splits raw OCR text into trimmed, non-empty lines with
// curly quotes straightened and duplicates collapsed, keeping
// first-occurrence order. Pure and deterministic.
func NormalizeLines(raw string) []Line {
	raw = quoteReplacer.Replace(raw)
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	seen := make(map[string]struct{})
	var lines []Line
	for _, part := range strings.Split(raw, "\n") {
		text := strings.TrimSpace(stripFormatMarks(part))
		if text == "" {
			continue
		}
		if _, dup := seen[text]; dup {
			continue
		}
		seen[text] = struct{}{}
		weight := 1
		if len(lines) == 0 {
			weight = 2
		}
		lines = append(lines, Line{Text: text, Weight: weight})
	}
	return lines
}

// CollapseWhitespace flattens the full text onto one line with single
// spaces. The pattern extractors run on this form because OCR splits
// numbers and URLs mid-line but rarely mid-token.
func CollapseWhitespace(raw string) string {
	return strings.Join(strings.Fields(quoteReplacer.Replace(raw)), " ")
}

// JoinLines renders normalized lines back into a newline-separated blob,
// used for the audit copy kept in extras and as fallback-model input.
func JoinLines(lines []Line) string {
	parts := make([]string, len(lines))
	for i, ln := range lines {
		parts[i] = ln.Text
	}
	return strings.Join(parts, "\n")
}

func stripFormatMarks(s string) string {
	out, _, err := transform.String(formatMarks, s)
	if err != nil {
		return s
	}
	return out
}
