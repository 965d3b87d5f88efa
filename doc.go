/*
Package reviewlens scores batches of customer reviews with a lexicon-based
sentiment model.

Each review is tokenized, scored as positive, neutral or negative, and
broken down by the product aspects it mentions. A batch is then
aggregated into overall and per-aspect percentages, recurring complaint
and praise sentences, and a few summary statistics.

	result := reviewlens.Analyze([]reviewlens.Review{
		{ID: 1, Text: "Great quality, love it!"},
		{ID: 2, Text: "Terrible, broken and useless."},
	})
	fmt.Println(result.Overall.Percentages.Positive) // 50

The package-level functions use the built-in English lexicon. Build an
Analyzer with options to extend the lexicon, bound negation, or score
reviews concurrently.
*/
package reviewlens
