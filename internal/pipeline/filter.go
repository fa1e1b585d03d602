package pipeline

import (
	"strings"
	"time"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// FilterOptions are the dashboard-forwarded filter parameters. Zero values
// leave the corresponding dimension unconstrained.
type FilterOptions struct {
	From time.Time // inclusive, day granularity
	To   time.Time // inclusive, day granularity

	Types      []domain.TxnType
	MinAmount  float64
	MaxAmount  float64 // 0 means unbounded
	Search     string  // case-insensitive description containment
	Categories []string
}

// ApplyFilter returns the subset of the dataset matching every constraint,
// in the original order.
func ApplyFilter(ds domain.Dataset, opts FilterOptions) domain.Dataset {
	search := strings.ToLower(opts.Search)

	var typeSet map[domain.TxnType]bool
	if len(opts.Types) > 0 {
		typeSet = make(map[domain.TxnType]bool, len(opts.Types))
		for _, t := range opts.Types {
			typeSet[t] = true
		}
	}
	var catSet map[string]bool
	if len(opts.Categories) > 0 {
		catSet = make(map[string]bool, len(opts.Categories))
		for _, c := range opts.Categories {
			catSet[c] = true
		}
	}

	out := make(domain.Dataset, 0, len(ds))
	for _, t := range ds {
		if !opts.From.IsZero() && dateOnly(t.Date).Before(dateOnly(opts.From)) {
			continue
		}
		if !opts.To.IsZero() && dateOnly(t.Date).After(dateOnly(opts.To)) {
			continue
		}
		if typeSet != nil && !typeSet[t.Type] {
			continue
		}
		if t.Amount < opts.MinAmount {
			continue
		}
		if opts.MaxAmount > 0 && t.Amount > opts.MaxAmount {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(t.Description), search) {
			continue
		}
		if catSet != nil && !catSet[t.Category] {
			continue
		}
		out = append(out, t)
	}
	return out
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
