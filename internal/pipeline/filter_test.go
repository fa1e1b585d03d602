package pipeline

import (
	"testing"
	"time"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

func filterFixture() domain.Dataset {
	jan := func(day int) time.Time { return time.Date(2024, 1, day, 12, 0, 0, 0, time.UTC) }
	return domain.Dataset{
		{Date: jan(1), Amount: 100, Description: "Coffee at cafe", Type: domain.TxnDebit, Category: "Food & Dining"},
		{Date: jan(10), Amount: 5000, Description: "Salary received", Type: domain.TxnCredit, Category: "Other"},
		{Date: jan(20), Amount: 900, Description: "Uber ride", Type: domain.TxnDebit, Category: "Transportation"},
	}
}

func TestApplyFilter(t *testing.T) {
	ds := filterFixture()

	tests := []struct {
		name string
		opts FilterOptions
		want int
	}{
		{"no constraints", FilterOptions{}, 3},
		{"date window", FilterOptions{From: time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), To: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)}, 1},
		{"inclusive day bounds", FilterOptions{From: time.Date(2024, 1, 1, 23, 0, 0, 0, time.UTC), To: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}, 1},
		{"debits only", FilterOptions{Types: []domain.TxnType{domain.TxnDebit}}, 2},
		{"amount band", FilterOptions{MinAmount: 500, MaxAmount: 1000}, 1},
		{"search is case-insensitive", FilterOptions{Search: "uber"}, 1},
		{"category filter", FilterOptions{Categories: []string{"Food & Dining", "Transportation"}}, 2},
		{"combined", FilterOptions{Types: []domain.TxnType{domain.TxnDebit}, Search: "cafe"}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyFilter(ds, tt.opts)
			if len(got) != tt.want {
				t.Errorf("got %d rows, want %d", len(got), tt.want)
			}
		})
	}
}

func TestApplyFilter_PreservesOrder(t *testing.T) {
	ds := filterFixture()
	got := ApplyFilter(ds, FilterOptions{Types: []domain.TxnType{domain.TxnDebit}})
	if len(got) != 2 || got[0].Description != "Coffee at cafe" || got[1].Description != "Uber ride" {
		t.Errorf("order not preserved: %v", got)
	}
}
