package reviewlens

const (
	windowBefore = 5 // tokens kept before an aspect keyword
	windowAfter  = 6 // exclusive end offset after an aspect keyword
)

// ExtractAspects scores the sentiment expressed around each aspect the text
// mentions.
//
// For every keyword of an aspect, only its first occurrence is used. The
// context windows of all keywords are concatenated, overlaps included, and
// scored as one token sequence.
func (sc *Scorer) ExtractAspects(text string) AspectSentiment {
	return sc.extractAspects(sc.tokenizer.Tokenize(text))
}

func (sc *Scorer) extractAspects(tokens []string) AspectSentiment {
	result := make(AspectSentiment)
	if len(tokens) == 0 {
		return result
	}

	first := firstIndex(tokens)

	for _, entry := range sc.lexicon.aspects {
		var context []string
		for _, kw := range entry.Keywords {
			idx, ok := first[kw]
			if !ok {
				continue
			}
			start := max(0, idx-windowBefore)
			end := min(len(tokens), idx+windowAfter)
			context = append(context, tokens[start:end]...)
		}

		if context == nil {
			continue
		}
		result[entry.Aspect] = sc.ScoreTokens(context)
	}

	return result
}

// firstIndex maps each distinct token to the position it first appears at.
func firstIndex(tokens []string) map[string]int {
	idx := make(map[string]int, len(tokens))
	for i, tok := range tokens {
		if _, seen := idx[tok]; !seen {
			idx[tok] = i
		}
	}
	return idx
}

// ExtractAspects extracts aspect sentiment with the built-in lexicon.
func ExtractAspects(text string) AspectSentiment {
	return defaultScorer.ExtractAspects(text)
}
