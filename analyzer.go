package reviewlens

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"math"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

// Version is recorded in the metadata of every result.
const Version = "v1.0.0"

// An Option changes how an Analyzer is built.
//
// For example, to score reviews on four goroutines:
//
//	a := reviewlens.NewAnalyzer(reviewlens.WithWorkers(4))
type Option func(opts *options)

type options struct {
	lexicon   *Lexicon
	tokenizer Tokenizer
	config    SentimentConfig
	segmenter Segmenter
	workers   int
	logger    *slog.Logger
	clock     clockwork.Clock
}

// WithLexicon sets the lexicon (the built-in English one by default).
func WithLexicon(lexicon *Lexicon) Option {
	return func(opts *options) {
		opts.lexicon = lexicon
	}
}

// WithTokenizer sets the tokenizer.
func WithTokenizer(tokenizer Tokenizer) Option {
	return func(opts *options) {
		opts.tokenizer = tokenizer
	}
}

// WithSentimentConfig replaces the scoring configuration.
func WithSentimentConfig(config SentimentConfig) Option {
	return func(opts *options) {
		opts.config = config
	}
}

// WithNegationWindow limits how many non-sentiment tokens a negation stays
// pending for. Zero keeps it pending until the next sentiment word.
func WithNegationWindow(n int) Option {
	return func(opts *options) {
		opts.config.NegationWindow = max(0, n)
	}
}

// WithSegmenter sets the sentence segmenter used for key phrases.
func WithSegmenter(segmenter Segmenter) Option {
	return func(opts *options) {
		opts.segmenter = segmenter
	}
}

// WithWorkers sets how many reviews are scored concurrently.
func WithWorkers(n int) Option {
	return func(opts *options) {
		opts.workers = max(1, n)
	}
}

// WithLogger sets the logger. Nothing is logged by default.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *options) {
		opts.logger = logger
	}
}

// WithClock sets the clock used for result metadata.
func WithClock(clock clockwork.Clock) Option {
	return func(opts *options) {
		opts.clock = clock
	}
}

// Analyzer scores batches of reviews. It keeps no state between calls and
// is safe for concurrent use.
type Analyzer struct {
	scorer  *Scorer
	miner   *PhraseMiner
	workers int
	logger  *slog.Logger
	clock   clockwork.Clock
}

// NewAnalyzer creates an Analyzer according to the given options.
func NewAnalyzer(opts ...Option) *Analyzer {
	base := options{
		config:  DefaultSentimentConfig(),
		workers: 1,
	}
	for _, applyOpt := range opts {
		applyOpt(&base)
	}

	if base.logger == nil {
		base.logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if base.clock == nil {
		base.clock = clockwork.NewRealClock()
	}

	scorer := NewScorer(base.lexicon, base.tokenizer, base.config)

	return &Analyzer{
		scorer:  scorer,
		miner:   NewPhraseMiner(scorer, base.segmenter),
		workers: base.workers,
		logger:  base.logger,
		clock:   base.clock,
	}
}

// Scorer returns the scorer used for individual texts.
func (a *Analyzer) Scorer() *Scorer {
	return a.scorer
}

// Analyze runs the full pipeline over reviews.
func (a *Analyzer) Analyze(reviews []Review) AnalysisResult {
	// Background is never cancelled, so no error can occur.
	result, _ := a.AnalyzeContext(context.Background(), reviews)
	return result
}

// AnalyzeContext runs the full pipeline over reviews, stopping early if ctx
// is cancelled. An empty batch yields a zero result with empty collections.
func (a *Analyzer) AnalyzeContext(ctx context.Context, reviews []Review) (AnalysisResult, error) {
	start := a.clock.Now()
	a.logger.Debug("analyzing review batch", "reviews", len(reviews), "workers", a.workers)

	results := make([]ReviewResult, len(reviews))
	tokenized := make([][]string, len(reviews))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.workers)
	for i, review := range reviews {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			tokens := a.scorer.Tokenize(review.Text)
			tokenized[i] = tokens
			results[i] = ReviewResult{
				ID:        review.ID,
				Text:      review.Text,
				Sentiment: a.scorer.ScoreTokens(tokens),
				Aspects:   a.scorer.extractAspects(tokens),
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return AnalysisResult{}, fmt.Errorf("failed to analyze reviews: %w", err)
	}

	overall, aspects := tally(results)

	scores := make([]float64, len(results))
	for i, r := range results {
		scores[i] = r.Sentiment.Score
	}

	result := AnalysisResult{
		Reviews:    results,
		Overall:    overall,
		Aspects:    aspects,
		KeyPhrases: a.miner.MinePhrases(reviews),
		Summary:    summarize(scores),
		KeyTerms:   keyTerms(tokenized, maxKeyTerms),
		Metadata: Metadata{
			ProcessedAt:      start,
			ProcessingTimeMs: a.clock.Since(start).Milliseconds(),
			Version:          Version,
		},
	}

	a.logger.Debug("review batch analyzed",
		"reviews", overall.Total,
		"aspects", len(aspects),
		"complaints", len(result.KeyPhrases.Complaints),
		"praises", len(result.KeyPhrases.Praises),
		"duration_ms", result.Metadata.ProcessingTimeMs)

	return result, nil
}

// tally counts labels over the batch and per aspect. Aspect percentages use
// the number of reviews that mention the aspect as their denominator.
func tally(results []ReviewResult) (Overall, map[Aspect]AspectStats) {
	var counts LabelCounts
	aspectCounts := make(map[Aspect]*LabelCounts)
	mentions := make(map[Aspect]int)

	for _, r := range results {
		counts.inc(r.Sentiment.Label)
		for aspect, sentiment := range r.Aspects {
			c, ok := aspectCounts[aspect]
			if !ok {
				c = &LabelCounts{}
				aspectCounts[aspect] = c
			}
			c.inc(sentiment.Label)
			mentions[aspect]++
		}
	}

	total := len(results)
	overall := Overall{
		Total:           total,
		SentimentCounts: counts,
		Percentages: Percentages{
			Positive: percent(counts.Positive, total),
			Neutral:  percent(counts.Neutral, total),
			Negative: percent(counts.Negative, total),
		},
	}

	aspects := make(map[Aspect]AspectStats, len(aspectCounts))
	for aspect, c := range aspectCounts {
		n := mentions[aspect]
		aspects[aspect] = AspectStats{
			Positive: percent(c.Positive, n),
			Neutral:  percent(c.Neutral, n),
			Negative: percent(c.Negative, n),
			Total:    n,
		}
	}

	return overall, aspects
}

func (c *LabelCounts) inc(label Label) {
	switch label {
	case Positive:
		c.Positive++
	case Negative:
		c.Negative++
	default:
		c.Neutral++
	}
}

// percent returns count/total as a whole percentage rounded half up, or 0
// when total is 0.
func percent(count, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Floor(float64(count)/float64(total)*100 + 0.5))
}

// Analyze runs the full pipeline with default settings.
func Analyze(reviews []Review) AnalysisResult {
	return NewAnalyzer().Analyze(reviews)
}
