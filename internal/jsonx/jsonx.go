// Package jsonx recovers usable JSON from language-model output: fenced
// code blocks, leading prose, and truncated objects.
package jsonx

import "strings"

// StripFences removes leading and trailing markdown code-fence markers
// (``` or ```json) around a payload.
func StripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		if i := strings.Index(s, "\n"); i >= 0 && len(strings.TrimSpace(s[:i])) <= 8 {
			// drop a language tag like "json" on the fence line
			s = s[i+1:]
		}
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// FirstObject extracts the first balanced-looking {...} span via greedy
// brace matching: from the first '{' to the last '}'. If no closing brace
// follows the opening one, the remainder of the string is returned so the
// repair step can close it. ok is false when there is no '{' at all.
func FirstObject(s string) (string, bool) {
	start := strings.Index(s, "{")
	if start < 0 {
		return "", false
	}
	end := strings.LastIndex(s, "}")
	if end < start {
		return s[start:], true
	}
	return s[start : end+1], true
}
