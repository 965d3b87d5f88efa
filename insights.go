package reviewlens

import "fmt"

// InsightKind classifies an Insight for display.
type InsightKind string

const (
	InsightPositive InsightKind = "positive"
	InsightNegative InsightKind = "negative"
	InsightWarning  InsightKind = "warning"
	InsightSuccess  InsightKind = "success"
)

const (
	overallMajority     = 50 // percent
	aspectLikedAbove    = 60 // percent
	aspectComplainAbove = 40 // percent
	maxInsightPhrase    = 60 // runes
)

// An Insight is a short human-readable finding about a batch.
type Insight struct {
	Kind InsightKind `json:"kind"`
	Text string      `json:"text"`
}

var aspectDisplayNames = map[Aspect]string{
	ProductQuality:  "product quality",
	Delivery:        "delivery",
	CustomerService: "customer service",
	Price:           "pricing",
	Usability:       "ease of use",
}

// DisplayName returns a lowercase human-readable name for the aspect.
func (a Aspect) DisplayName() string {
	if name, ok := aspectDisplayNames[a]; ok {
		return name
	}
	return string(a)
}

// Dominant returns the label with the larger share of the batch, or Neutral
// on a tie.
func (r AnalysisResult) Dominant() Label {
	return dominant(r.Overall.Percentages.Positive, r.Overall.Percentages.Negative)
}

// Dominant returns the label with the larger share of mentions, or Neutral
// on a tie.
func (s AspectStats) Dominant() Label {
	return dominant(s.Positive, s.Negative)
}

func dominant(pos, neg int) Label {
	switch {
	case pos > neg:
		return Positive
	case neg > pos:
		return Negative
	default:
		return Neutral
	}
}

// Insights summarises the result as a list of findings. Aspects are visited
// in the order of the built-in aspect table.
func (r AnalysisResult) Insights() []Insight {
	var insights []Insight

	p := r.Overall.Percentages
	switch {
	case p.Positive > overallMajority:
		insights = append(insights, Insight{InsightPositive,
			fmt.Sprintf("%d%% of customers had a positive experience", p.Positive)})
	case p.Negative > overallMajority:
		insights = append(insights, Insight{InsightNegative,
			fmt.Sprintf("%d%% of customers had a negative experience", p.Negative)})
	}

	for _, entry := range defaultLexicon.aspects {
		stats, ok := r.Aspects[entry.Aspect]
		if !ok {
			continue
		}
		switch {
		case stats.Positive > aspectLikedAbove:
			insights = append(insights, Insight{InsightPositive,
				fmt.Sprintf("%d%% of users liked %s", stats.Positive, entry.Aspect.DisplayName())})
		case stats.Negative > aspectComplainAbove:
			insights = append(insights, Insight{InsightNegative,
				fmt.Sprintf("%d%% of users complained about %s", stats.Negative, entry.Aspect.DisplayName())})
		}
	}

	if len(r.KeyPhrases.Complaints) > 0 {
		insights = append(insights, Insight{InsightWarning,
			fmt.Sprintf("Common complaint: \"%s\"", truncate(r.KeyPhrases.Complaints[0].Phrase, maxInsightPhrase))})
	}
	if len(r.KeyPhrases.Praises) > 0 {
		insights = append(insights, Insight{InsightSuccess,
			fmt.Sprintf("Common praise: \"%s\"", truncate(r.KeyPhrases.Praises[0].Phrase, maxInsightPhrase))})
	}

	return insights
}

// truncate cuts s to n runes, appending "..." when anything was removed.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
