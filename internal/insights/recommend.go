package insights

import (
	"fmt"
	"math"
	"strings"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
)

// epsilon absorbs floating-point sign noise around an exactly balanced flow.
const epsilon = 1e-9

// RecKind distinguishes advisory severities.
type RecKind string

const (
	KindWarning RecKind = "warning"
	KindInfo    RecKind = "info"
)

// Recommendation is one user-facing advisory message. Values are produced
// fresh on every invocation and never mutated.
type Recommendation struct {
	Kind    RecKind `json:"kind"`
	Title   string  `json:"title"`
	Message string  `json:"message"`
}

// Recommend derives advisories from a summary. Exactly one of the three
// net-flow branches fires; the high-monthly-spending nudge can co-occur with
// any of them. Output order is evaluation order.
func Recommend(s Summary, cfg config.Config) []Recommendation {
	netFlow := sanitize(s.NetFlow)
	avgMonthly := sanitize(s.AvgMonthlySpending)
	sym := cfg.CurrencySymbol

	var recs []Recommendation
	switch {
	case netFlow < -epsilon:
		recs = append(recs, Recommendation{
			Kind:  KindWarning,
			Title: "High Spending Alert",
			Message: fmt.Sprintf("You're spending %s%s more than you're receiving. Consider cutting discretionary categories and setting a weekly cap.",
				sym, formatAmount(math.Abs(netFlow))),
		})
	case netFlow > epsilon:
		recs = append(recs, Recommendation{
			Kind:  KindInfo,
			Title: "Healthy Net Flow",
			Message: fmt.Sprintf("Great job! You have a surplus of %s%s. Consider allocating 20-30%% to savings/investments to compound your gains.",
				sym, formatAmount(netFlow)),
		})
	default:
		recs = append(recs, Recommendation{
			Kind:    KindInfo,
			Title:   "Balanced Cash Flow",
			Message: "Your income matches your spending. Set a small monthly savings target (e.g., 10%) to build a consistent surplus.",
		})
	}

	if avgMonthly > cfg.MonthlyBudget {
		recs = append(recs, Recommendation{
			Kind:  KindInfo,
			Title: "High Monthly Spending",
			Message: fmt.Sprintf("Your average monthly spending is %s%s. Consider a category-level budget and weekly checkpoints.",
				sym, formatAmount(avgMonthly)),
		})
	}

	return recs
}

// sanitize treats NaN and infinities as zero so a degenerate summary still
// produces a deterministic recommendation.
func sanitize(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// formatAmount renders an amount with two decimals and thousands separators,
// e.g. 1234567.5 -> "1,234,567.50".
func formatAmount(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	dot := strings.IndexByte(s, '.')
	whole, frac := s[:dot], s[dot:]

	var b strings.Builder
	for i, digit := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}
	return b.String() + frac
}
