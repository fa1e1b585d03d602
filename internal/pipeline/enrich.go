package pipeline

import (
	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// Amount bucket labels, one per band between the configured breakpoints plus
// the open band above the last one.
var bucketLabels = []string{"Small", "Medium", "Large", "Very Large", "Huge"}

// Enrich returns a copy of the dataset with every derived field populated:
// calendar features, amount buckets, per-day sequence numbers and trailing
// rolling means. The input is never mutated and an empty dataset enriches to
// an empty dataset.
//
// Rolling means run over arrival order within the same type partition, not
// date order. That reproduces the numbers of the source system; re-sorting by
// date would change output.
func Enrich(ds domain.Dataset, cfg config.Config) domain.Dataset {
	if len(ds) == 0 {
		return domain.Dataset{}
	}

	out := ds.Clone()
	dayCounts := make(map[string]int)
	partitions := make(map[domain.TxnType][]float64)

	for i := range out {
		t := &out[i]

		t.Year = t.Date.Year()
		t.Month = int(t.Date.Month())
		t.Day = t.Date.Day()
		t.DayOfWeek = t.Date.Weekday().String()
		t.Hour = t.Date.Hour()
		t.Quarter = (int(t.Date.Month())-1)/3 + 1
		_, t.WeekOfYear = t.Date.ISOWeek()

		t.AmountBucket = amountBucket(t.Amount, cfg.BucketBreakpoints)

		day := t.Date.Format("2006-01-02")
		dayCounts[day]++
		t.DailySeq = dayCounts[day]

		window := append(partitions[t.Type], t.Amount)
		partitions[t.Type] = window
		t.Rolling7 = trailingMean(window, cfg.RollingShort)
		t.Rolling30 = trailingMean(window, cfg.RollingLong)

		t.Enriched = true
	}
	return out
}

// amountBucket classifies an amount into its band. Bands are right-inclusive,
// (0, b1], (b1, b2], ..., so an amount exactly on a breakpoint lands in the
// lower band. Non-positive amounts get no bucket.
func amountBucket(amount float64, breakpoints []float64) string {
	if amount <= 0 {
		return ""
	}
	for i, edge := range breakpoints {
		if amount <= edge {
			return bucketLabels[i]
		}
	}
	return bucketLabels[len(breakpoints)]
}

// trailingMean averages the last n values of the window, including the value
// just appended. Minimum period is one: a shorter window averages what exists.
func trailingMean(window []float64, n int) float64 {
	start := len(window) - n
	if start < 0 {
		start = 0
	}
	sum := 0.0
	for _, v := range window[start:] {
		sum += v
	}
	return sum / float64(len(window)-start)
}
