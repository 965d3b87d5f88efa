package reviewlens

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/bbalet/stopwords"
)

const (
	maxKeyTerms   = 10
	minTermLength = 3
	stopwordLang  = "en"
)

// keyTerms counts content words across the batch. Stopwords, words shorter
// than three runes and purely numeric tokens are skipped.
func keyTerms(tokenized [][]string, n int) []TermCount {
	counter := newPhraseCounter()
	stop := make(map[string]bool)

	for _, tokens := range tokenized {
		for _, tok := range tokens {
			if utf8.RuneCountInString(tok) < minTermLength || isNumeric(tok) {
				continue
			}
			isStop, seen := stop[tok]
			if !seen {
				isStop = isStopword(tok)
				stop[tok] = isStop
			}
			if isStop {
				continue
			}
			counter.add(tok)
		}
	}

	top := counter.top(n)
	terms := make([]TermCount, len(top))
	for i, entry := range top {
		terms[i] = TermCount{Term: entry.Phrase, Count: entry.Count}
	}
	return terms
}

// isStopword asks the stopwords package whether word would be removed from
// English text.
func isStopword(word string) bool {
	return strings.TrimSpace(stopwords.CleanString(word, stopwordLang, false)) == ""
}

func isNumeric(word string) bool {
	for _, r := range word {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
