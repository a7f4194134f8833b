package keywords_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"cardscan/internal/keywords"
)

func TestMatchesAny_TokenExactForSingleWords(t *testing.T) {
	kw := keywords.Default()

	assert.True(t, keywords.MatchesAny("Acme Trading Ltd.", kw.CompanySuffixes))
	assert.True(t, keywords.MatchesAny("ACME INC", kw.CompanySuffixes))
	// "inc" must not fire inside a longer word
	assert.False(t, keywords.MatchesAny("Principal Architect", kw.CompanySuffixes))
	assert.False(t, keywords.MatchesAny("Coastal Homes", kw.CompanySuffixes))
}

func TestMatchesAny_MultiWordSubstring(t *testing.T) {
	kw := keywords.Default()
	assert.True(t, keywords.MatchesAny("Smith & Sons Hardware", kw.CompanySuffixes))
	assert.True(t, keywords.MatchesAny("We deal in all kinds of machinery", kw.ServiceTerms))
}

func TestContainsAny_Substring(t *testing.T) {
	kw := keywords.Default()
	assert.True(t, keywords.ContainsAny("Sr. Sales Manager (EMEA)", kw.DesignationTitles))
	assert.False(t, keywords.ContainsAny("12 Market Street", kw.DesignationTitles))
}

func TestNormalizeToken(t *testing.T) {
	assert.Equal(t, "ltd", keywords.NormalizeToken("Ltd."))
	assert.Equal(t, "mr", keywords.NormalizeToken("Mr."))
	assert.Equal(t, "", keywords.NormalizeToken("..."))
}
