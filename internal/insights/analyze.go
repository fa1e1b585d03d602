package insights

import (
	"sort"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// topCategoryCount caps the category breakdown in a summary.
const topCategoryCount = 5

// CategoryAmount is one category's total debit spend.
type CategoryAmount struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// Summary aggregates a dataset into the headline spending figures. All sums
// over an empty dataset are zero, never an error.
type Summary struct {
	TotalTransactions  int              `json:"total_transactions"`
	TotalSpent         float64          `json:"total_spent"`
	TotalReceived      float64          `json:"total_received"`
	NetFlow            float64          `json:"net_flow"`
	TopCategories      []CategoryAmount `json:"top_categories,omitempty"`
	AvgMonthlySpending float64          `json:"avg_monthly_spending"`
}

// Analyze computes the summary for a dataset, categorized or not. The
// category breakdown only appears when at least one record carries a
// category.
func Analyze(ds domain.Dataset) Summary {
	s := Summary{TotalTransactions: len(ds)}

	categorized := false
	byCategory := make(map[string]float64)
	var categoryOrder []string // first-seen order, for stable tie-breaks
	byMonth := make(map[string]float64)

	for _, t := range ds {
		switch t.Type {
		case domain.TxnDebit:
			s.TotalSpent += t.Amount
			if t.Category != "" {
				if _, seen := byCategory[t.Category]; !seen {
					categoryOrder = append(categoryOrder, t.Category)
				}
				byCategory[t.Category] += t.Amount
			}
			month := t.Date.Format("2006-01")
			byMonth[month] += t.Amount
		case domain.TxnCredit:
			s.TotalReceived += t.Amount
		}
		if t.Category != "" {
			categorized = true
		}
	}
	s.NetFlow = s.TotalReceived - s.TotalSpent

	if categorized && len(categoryOrder) > 0 {
		top := make([]CategoryAmount, 0, len(categoryOrder))
		for _, name := range categoryOrder {
			top = append(top, CategoryAmount{Name: name, Amount: byCategory[name]})
		}
		sort.SliceStable(top, func(i, j int) bool {
			return top[i].Amount > top[j].Amount
		})
		if len(top) > topCategoryCount {
			top = top[:topCategoryCount]
		}
		s.TopCategories = top
	}

	if len(byMonth) > 0 {
		total := 0.0
		for _, v := range byMonth {
			total += v
		}
		s.AvgMonthlySpending = total / float64(len(byMonth))
	}

	return s
}
