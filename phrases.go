package reviewlens

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	maxKeyPhrases   = 5
	minPhraseLength = 10 // phrases must be longer than this, in runes
)

// PhraseMiner collects recurring complaint and praise sentences across a
// batch of reviews.
type PhraseMiner struct {
	scorer    *Scorer
	segmenter Segmenter
	limit     int
}

// NewPhraseMiner creates a miner. A nil segmenter selects the punctuation
// segmenter.
func NewPhraseMiner(scorer *Scorer, segmenter Segmenter) *PhraseMiner {
	if scorer == nil {
		scorer = defaultScorer
	}
	if segmenter == nil {
		segmenter = NewPunctuationSegmenter()
	}
	return &PhraseMiner{
		scorer:    scorer,
		segmenter: segmenter,
		limit:     maxKeyPhrases,
	}
}

// MinePhrases scores every sentence of every review. Negative sentences are
// counted as complaints and positive ones as praises, keyed by their exact
// trimmed text. Each list holds at most five entries, most frequent first;
// ties keep the order in which phrases were first seen.
func (pm *PhraseMiner) MinePhrases(reviews []Review) KeyPhrases {
	complaints := newPhraseCounter()
	praises := newPhraseCounter()

	for _, review := range reviews {
		for _, sentence := range pm.segmenter.Segment(review.Text) {
			trimmed := strings.TrimSpace(sentence)
			if utf8.RuneCountInString(trimmed) <= minPhraseLength {
				continue
			}

			switch pm.scorer.Score(trimmed).Label {
			case Negative:
				complaints.add(trimmed)
			case Positive:
				praises.add(trimmed)
			}
		}
	}

	return KeyPhrases{
		Complaints: complaints.top(pm.limit),
		Praises:    praises.top(pm.limit),
	}
}

// phraseCounter is a frequency table that remembers insertion order.
type phraseCounter struct {
	index   map[string]int
	entries []KeyPhrase
}

func newPhraseCounter() *phraseCounter {
	return &phraseCounter{index: make(map[string]int)}
}

func (c *phraseCounter) add(phrase string) {
	if i, ok := c.index[phrase]; ok {
		c.entries[i].Count++
		return
	}
	c.index[phrase] = len(c.entries)
	c.entries = append(c.entries, KeyPhrase{Phrase: phrase, Count: 1})
}

// top returns up to n entries by descending count. The sort is stable, so
// equal counts stay in insertion order.
func (c *phraseCounter) top(n int) []KeyPhrase {
	sorted := slices.Clone(c.entries)
	slices.SortStableFunc(sorted, func(a, b KeyPhrase) int {
		return cmp.Compare(b.Count, a.Count)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	if sorted == nil {
		sorted = []KeyPhrase{}
	}
	return sorted
}

// MinePhrases mines key phrases with the built-in lexicon and the
// punctuation segmenter.
func MinePhrases(reviews []Review) KeyPhrases {
	return NewPhraseMiner(nil, nil).MinePhrases(reviews)
}
