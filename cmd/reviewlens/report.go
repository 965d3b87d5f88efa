package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/tsawler/reviewlens"
)

// writeReport renders result as a plain-text report.
func writeReport(w io.Writer, result reviewlens.AnalysisResult) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	o := result.Overall
	fmt.Fprintf(tw, "Overall sentiment:\t%s\n", strings.ToUpper(string(result.Dominant())))
	fmt.Fprintf(tw, "Reviews:\t%d\n", o.Total)
	fmt.Fprintf(tw, "Positive:\t%d%%\t(%d)\n", o.Percentages.Positive, o.SentimentCounts.Positive)
	fmt.Fprintf(tw, "Neutral:\t%d%%\t(%d)\n", o.Percentages.Neutral, o.SentimentCounts.Neutral)
	fmt.Fprintf(tw, "Negative:\t%d%%\t(%d)\n", o.Percentages.Negative, o.SentimentCounts.Negative)
	fmt.Fprintf(tw, "Mean score:\t%.2f\t(sd %.2f)\n", result.Summary.Mean, result.Summary.StdDev)

	fmt.Fprintln(tw, "\nAspect\tPositive\tNeutral\tNegative\tMentions\tVerdict")
	for _, entry := range reviewlens.DefaultLexicon().Aspects() {
		stats, ok := result.Aspects[entry.Aspect]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d%%\t%d%%\t%d%%\t%d\t%s\n", entry.Aspect.DisplayName(),
			stats.Positive, stats.Neutral, stats.Negative, stats.Total, stats.Dominant())
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	writePhrases(w, "Complaints", result.KeyPhrases.Complaints)
	writePhrases(w, "Praises", result.KeyPhrases.Praises)

	fmt.Fprintln(w, "\nInsights")
	for _, insight := range result.Insights() {
		fmt.Fprintf(w, "  [%s] %s\n", insight.Kind, insight.Text)
	}

	if len(result.KeyTerms) > 0 {
		terms := make([]string, len(result.KeyTerms))
		for i, t := range result.KeyTerms {
			terms[i] = fmt.Sprintf("%s(%d)", t.Term, t.Count)
		}
		_, err := fmt.Fprintf(w, "\nKey terms: %s\n", strings.Join(terms, ", "))
		return err
	}
	return nil
}

func writePhrases(w io.Writer, title string, phrases []reviewlens.KeyPhrase) {
	fmt.Fprintf(w, "\n%s\n", title)
	if len(phrases) == 0 {
		fmt.Fprintln(w, "  None detected")
		return
	}
	for _, p := range phrases {
		suffix := ""
		if p.Count > 1 {
			suffix = "s"
		}
		fmt.Fprintf(w, "  %q  %d mention%s\n", p.Phrase, p.Count, suffix)
	}
}
