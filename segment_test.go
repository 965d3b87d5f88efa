package reviewlens

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPunctuationSegmenter(t *testing.T) {
	seg := NewPunctuationSegmenter()

	assert.Equal(t, []string{"Great", " Really", " Yes"}, seg.Segment("Great!!! Really?! Yes..."))
	assert.Empty(t, seg.Segment("  ...  !! "))
	assert.Equal(t, []string{"no terminator"}, seg.Segment("no terminator"))
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	require.NoError(t, err)

	got := seg.Segment("The box was damaged. Support was rude!")

	assert.Equal(t, []string{"The box was damaged", "Support was rude"}, got)
}

func TestPhraseMinerWithPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	require.NoError(t, err)

	miner := NewPhraseMiner(nil, seg)
	got := miner.MinePhrases([]Review{{1, "The box was damaged. Support was rude!"}})

	assert.Equal(t, []KeyPhrase{
		{"The box was damaged", 1},
		{"Support was rude", 1},
	}, got.Complaints)
}
