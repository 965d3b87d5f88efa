package reviewlens

// Scorer performs lexicon-based sentiment scoring. It holds no mutable state
// and is safe for concurrent use.
type Scorer struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
	config    SentimentConfig
}

// SentimentConfig configures sentiment scoring
type SentimentConfig struct {
	IntensifierBoost float64 // Weight of a sentiment word that follows an intensifier
	Threshold        float64 // Scores beyond ±Threshold are polar
	NegationWindow   int     // Non-sentiment tokens a negation survives; 0 means until the next sentiment word
}

// DefaultSentimentConfig returns standard configuration
func DefaultSentimentConfig() SentimentConfig {
	return SentimentConfig{
		IntensifierBoost: 1.5,
		Threshold:        0.2,
		NegationWindow:   0,
	}
}

// NewScorer creates a scorer. A nil lexicon or tokenizer selects the
// built-in one.
func NewScorer(lexicon *Lexicon, tokenizer Tokenizer, config SentimentConfig) *Scorer {
	if lexicon == nil {
		lexicon = DefaultLexicon()
	}
	if tokenizer == nil {
		tokenizer = defaultTokenizer
	}
	return &Scorer{
		lexicon:   lexicon,
		tokenizer: tokenizer,
		config:    config,
	}
}

// Lexicon returns the lexicon the scorer reads from.
func (sc *Scorer) Lexicon() *Lexicon {
	return sc.lexicon
}

// Tokenize splits text with the scorer's tokenizer.
func (sc *Scorer) Tokenize(text string) []string {
	return sc.tokenizer.Tokenize(text)
}

// Score tokenizes text and scores the resulting tokens.
func (sc *Scorer) Score(text string) SentimentResult {
	return sc.ScoreTokens(sc.tokenizer.Tokenize(text))
}

// ScoreTokens scores an already tokenized text in a single left-to-right
// pass.
//
// A negation word contributes nothing itself; it flips the polarity of the
// next sentiment word found, however far away, unless NegationWindow is set.
// A sentiment word directly after an intensifier weighs IntensifierBoost
// instead of 1.
func (sc *Scorer) ScoreTokens(tokens []string) SentimentResult {
	var (
		posWeight float64
		negWeight float64
		negated   bool
		gap       int
	)

	for i, word := range tokens {
		if sc.lexicon.IsNegation(word) {
			negated = true
			gap = 0
			continue
		}

		multiplier := 1.0
		if i > 0 && sc.lexicon.IsIntensifier(tokens[i-1]) {
			multiplier = sc.config.IntensifierBoost
		}

		switch {
		case sc.lexicon.IsPositive(word):
			if negated {
				negWeight += multiplier
			} else {
				posWeight += multiplier
			}
			negated = false
		case sc.lexicon.IsNegative(word):
			if negated {
				posWeight += multiplier
			} else {
				negWeight += multiplier
			}
			negated = false
		case negated && sc.config.NegationWindow > 0:
			gap++
			if gap >= sc.config.NegationWindow {
				negated = false
			}
		}
	}

	return sc.finalize(posWeight, negWeight)
}

// finalize turns the accumulated weights into a result.
func (sc *Scorer) finalize(posWeight, negWeight float64) SentimentResult {
	var score float64
	if total := posWeight + negWeight; total > 0 {
		score = (posWeight - negWeight) / total
	}

	return SentimentResult{
		Label:          classifyScore(score, sc.config.Threshold),
		Score:          score,
		PositiveWeight: posWeight,
		NegativeWeight: negWeight,
	}
}

// classifyScore determines the label from a score
func classifyScore(score, threshold float64) Label {
	switch {
	case score > threshold:
		return Positive
	case score < -threshold:
		return Negative
	default:
		return Neutral
	}
}

var defaultScorer = NewScorer(nil, nil, DefaultSentimentConfig())

// Score scores text with the built-in lexicon and default configuration.
func Score(text string) SentimentResult {
	return defaultScorer.Score(text)
}
