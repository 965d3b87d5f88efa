package reviewlens

import "time"

// A Review is a single piece of customer feedback. IDs are assigned by the
// caller and are expected to be unique within a batch.
type Review struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

// Label is the polarity class assigned to a piece of text.
type Label string

const (
	Positive Label = "positive"
	Neutral  Label = "neutral"
	Negative Label = "negative"
)

// Aspect names a product dimension that can be scored on its own.
type Aspect string

const (
	ProductQuality  Aspect = "product_quality"
	Delivery        Aspect = "delivery"
	CustomerService Aspect = "customer_service"
	Price           Aspect = "price"
	Usability       Aspect = "usability"
)

// SentimentResult holds the outcome of scoring a piece of text.
type SentimentResult struct {
	Label          Label   `json:"label"`
	Score          float64 `json:"score"`          // -1.0 to 1.0
	PositiveWeight float64 `json:"positiveWeight"` // accumulated positive evidence
	NegativeWeight float64 `json:"negativeWeight"` // accumulated negative evidence
}

// AspectSentiment maps each aspect mentioned in a review to the sentiment
// expressed around it. Aspects that were not mentioned have no entry.
type AspectSentiment map[Aspect]SentimentResult

// A KeyPhrase is a sentence that recurs across a batch, with the number of
// times it was seen.
type KeyPhrase struct {
	Phrase string `json:"phrase"`
	Count  int    `json:"count"`
}

// KeyPhrases holds the top complaints and praises of a batch.
type KeyPhrases struct {
	Complaints []KeyPhrase `json:"complaints"`
	Praises    []KeyPhrase `json:"praises"`
}

// ReviewResult is the per-review part of an AnalysisResult.
type ReviewResult struct {
	ID        int             `json:"id"`
	Text      string          `json:"text"`
	Sentiment SentimentResult `json:"sentiment"`
	Aspects   AspectSentiment `json:"aspects"`
}

// LabelCounts is a three-way tally of labels.
type LabelCounts struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Percentages holds rounded whole-number percentages per label. Each bucket
// is rounded on its own, so the three values may not sum to exactly 100.
type Percentages struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
}

// Overall summarises the label distribution of a batch.
type Overall struct {
	Total           int         `json:"total"`
	SentimentCounts LabelCounts `json:"sentimentCounts"`
	Percentages     Percentages `json:"percentages"`
}

// AspectStats holds the label percentages of one aspect. Total is the number
// of reviews that mentioned the aspect and is the denominator of the
// percentages.
type AspectStats struct {
	Positive int `json:"positive"`
	Neutral  int `json:"neutral"`
	Negative int `json:"negative"`
	Total    int `json:"total"`
}

// ScoreSummary describes the distribution of review scores in a batch.
type ScoreSummary struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// TermCount is a content word and the number of times it occurred.
type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Metadata records when and how a batch was processed.
type Metadata struct {
	ProcessedAt      time.Time `json:"processedAt"`
	ProcessingTimeMs int64     `json:"processingTimeMs"`
	Version          string    `json:"version"`
}

// AnalysisResult is everything computed for a batch of reviews.
type AnalysisResult struct {
	Reviews    []ReviewResult         `json:"reviews"`
	Overall    Overall                `json:"overall"`
	Aspects    map[Aspect]AspectStats `json:"aspects"`
	KeyPhrases KeyPhrases             `json:"keyPhrases"`
	Summary    ScoreSummary           `json:"summary"`
	KeyTerms   []TermCount            `json:"keyTerms"`
	Metadata   Metadata               `json:"metadata"`
}
