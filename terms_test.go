package reviewlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsStopword(t *testing.T) {
	assert.True(t, isStopword("the"))
	assert.True(t, isStopword("and"))
	assert.False(t, isStopword("battery"))
}

func TestKeyTerms(t *testing.T) {
	tokenized := [][]string{
		Tokenize("The battery and the battery charger"),
		Tokenize("Battery died after 10 days"),
	}

	got := keyTerms(tokenized, 10)

	require.NotEmpty(t, got)
	assert.Equal(t, TermCount{Term: "battery", Count: 3}, got[0])
	for _, term := range got {
		assert.NotEqual(t, "the", term.Term)
		assert.NotEqual(t, "and", term.Term)
		assert.NotEqual(t, "10", term.Term)
	}
}

func TestKeyTermsLimit(t *testing.T) {
	tokenized := [][]string{Tokenize("alpha bravo charlie delta foxtrot hotel juliet kilo lima mike november oscar")}

	assert.Len(t, keyTerms(tokenized, 5), 5)
	assert.Empty(t, keyTerms(nil, 5))
}
