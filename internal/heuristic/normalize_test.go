package heuristic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardscan/internal/heuristic"
)

func TestNormalizeLines_TrimDedupeWeight(t *testing.T) {
	raw := "Acme Ltd\n\n  Acme Ltd  \r\nSecond Line\nSecond Line\nThird"

	lines := heuristic.NormalizeLines(raw)

	require.Len(t, lines, 3)
	assert.Equal(t, heuristic.Line{Text: "Acme Ltd", Weight: 2}, lines[0])
	assert.Equal(t, heuristic.Line{Text: "Second Line", Weight: 1}, lines[1])
	assert.Equal(t, heuristic.Line{Text: "Third", Weight: 1}, lines[2])
}

func TestNormalizeLines_StraightensCurlyQuotes(t *testing.T) {
	lines := heuristic.NormalizeLines("“Acme”\n‘quoted’")

	require.Len(t, lines, 2)
	assert.Equal(t, `"Acme"`, lines[0].Text)
	assert.Equal(t, "'quoted'", lines[1].Text)
}

func TestNormalizeLines_Empty(t *testing.T) {
	assert.Empty(t, heuristic.NormalizeLines(""))
	assert.Empty(t, heuristic.NormalizeLines("  \n\t\n  "))
}

func TestCollapseWhitespace(t *testing.T) {
	assert.Equal(t, "a b c", heuristic.CollapseWhitespace("a\n  b\tc"))
}

func TestJoinLines(t *testing.T) {
	lines := heuristic.NormalizeLines("one\ntwo")
	assert.Equal(t, "one\ntwo", heuristic.JoinLines(lines))
}
