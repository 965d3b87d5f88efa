package reviewlens

import (
	"math"
	"slices"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// summarize computes distribution statistics over review scores. StdDev is
// the sample standard deviation and is 0 for fewer than two scores. Median
// is the empirical 0.5 quantile, so for an even count it is the lower of the
// two middle values.
func summarize(scores []float64) ScoreSummary {
	if len(scores) == 0 {
		return ScoreSummary{}
	}

	sorted := slices.Clone(scores)
	slices.Sort(sorted)

	mean, stdDev := stat.MeanStdDev(sorted, nil)
	if len(sorted) < 2 || math.IsNaN(stdDev) {
		stdDev = 0
	}

	return ScoreSummary{
		Mean:   mean,
		StdDev: stdDev,
		Median: stat.Quantile(0.5, stat.Empirical, sorted, nil),
		Min:    floats.Min(sorted),
		Max:    floats.Max(sorted),
	}
}
