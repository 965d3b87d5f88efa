package reviewlens

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon(t *testing.T) {
	lex := DefaultLexicon()

	assert.True(t, lex.IsPositive("good"))
	assert.True(t, lex.IsNegative("terrible"))
	assert.True(t, lex.IsIntensifier("very"))
	assert.True(t, lex.IsNegation("not"))
	assert.False(t, lex.IsPositive("product"))

	// "never" is both a negation and a negative word.
	assert.True(t, lex.IsNegation("never"))
	assert.True(t, lex.IsNegative("never"))

	assert.Equal(t, 101, lex.Size())
}

func TestLexiconAspectOrder(t *testing.T) {
	var names []Aspect
	for _, entry := range DefaultLexicon().Aspects() {
		names = append(names, entry.Aspect)
	}

	assert.Equal(t, []Aspect{ProductQuality, Delivery, CustomerService, Price, Usability}, names)
}

func TestLexiconAspectsReturnsCopy(t *testing.T) {
	aspects := DefaultLexicon().Aspects()
	aspects[0].Keywords[0] = "changed"

	assert.Equal(t, "quality", DefaultLexicon().Aspects()[0].Keywords[0])
}

func TestLexiconFromReader(t *testing.T) {
	ext := `{
		"positive": ["Stellar"],
		"negative": ["meh"],
		"intensifiers": ["insanely"],
		"negations": ["without"],
		"aspects": {"delivery": ["courier", "shipping", " "]}
	}`

	lex, err := LexiconFromReader(strings.NewReader(ext))
	require.NoError(t, err)

	assert.True(t, lex.IsPositive("stellar"))
	assert.True(t, lex.IsNegative("meh"))
	assert.True(t, lex.IsIntensifier("insanely"))
	assert.True(t, lex.IsNegation("without"))
	assert.True(t, lex.IsPositive("good"))

	var delivery []string
	for _, entry := range lex.Aspects() {
		if entry.Aspect == Delivery {
			delivery = entry.Keywords
		}
	}
	assert.Equal(t, "courier", delivery[len(delivery)-1])
	assert.Len(t, delivery, 13) // "shipping" is already present

	// The built-in lexicon is unchanged.
	assert.False(t, DefaultLexicon().IsPositive("stellar"))
	assert.Len(t, DefaultLexicon().Aspects()[1].Keywords, 12)
}

func TestLexiconFromReaderUnknownAspect(t *testing.T) {
	_, err := LexiconFromReader(strings.NewReader(`{"aspects": {"battery": ["charge"]}}`))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAspect)
	assert.Contains(t, err.Error(), `"battery"`)
}

func TestLexiconFromReaderInvalidJSON(t *testing.T) {
	_, err := LexiconFromReader(strings.NewReader(`{"positive": [`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "error parsing lexicon JSON")
}

func TestLexiconFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lexicon.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"positive": ["stellar"], "aspects": {"delivery": ["courier"]}}`), 0o600))

	lex, err := LexiconFromFile(path)
	require.NoError(t, err)

	scorer := NewScorer(lex, nil, DefaultSentimentConfig())
	assert.Equal(t, Positive, scorer.Score("The courier was stellar").Label)
	assert.Contains(t, scorer.ExtractAspects("The courier was stellar"), Delivery)

	_, err = LexiconFromFile(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error opening lexicon file")
}
