package pipeline

import (
	"math"
	"testing"
	"time"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

func txn(date time.Time, amount float64, txnType domain.TxnType) domain.Transaction {
	return domain.Transaction{Date: date, Amount: amount, Description: "t", Type: txnType}
}

func TestEnrich_CalendarFeatures(t *testing.T) {
	// 2023-12-15 is a Friday in ISO week 50.
	date := time.Date(2023, 12, 15, 14, 30, 0, 0, time.UTC)
	ds := domain.Dataset{txn(date, 100, domain.TxnDebit)}

	out := Enrich(ds, config.Default())
	if len(out) != 1 {
		t.Fatalf("expected 1 row, got %d", len(out))
	}

	got := out[0]
	if got.Year != 2023 || got.Month != 12 || got.Day != 15 {
		t.Errorf("date parts = %d-%d-%d, want 2023-12-15", got.Year, got.Month, got.Day)
	}
	if got.DayOfWeek != "Friday" {
		t.Errorf("day of week = %q, want Friday", got.DayOfWeek)
	}
	if got.Hour != 14 {
		t.Errorf("hour = %d, want 14", got.Hour)
	}
	if got.Quarter != 4 {
		t.Errorf("quarter = %d, want 4", got.Quarter)
	}
	if got.WeekOfYear != 50 {
		t.Errorf("week of year = %d, want 50", got.WeekOfYear)
	}
	if !got.Enriched {
		t.Error("expected Enriched to be set")
	}
}

func TestEnrich_DoesNotMutateInput(t *testing.T) {
	ds := domain.Dataset{txn(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 100, domain.TxnDebit)}
	Enrich(ds, config.Default())
	if ds[0].Enriched {
		t.Error("Enrich mutated its input")
	}
}

func TestAmountBucket(t *testing.T) {
	breakpoints := config.Default().BucketBreakpoints

	tests := []struct {
		amount float64
		want   string
	}{
		{500, "Small"},
		{1000, "Small"}, // breakpoints are right-inclusive
		{1000.01, "Medium"},
		{5000, "Medium"},
		{7500, "Large"},
		{10000, "Large"},
		{50000, "Very Large"},
		{50000.01, "Huge"},
		{0, ""},
		{-10, ""},
	}

	for _, tt := range tests {
		if got := amountBucket(tt.amount, breakpoints); got != tt.want {
			t.Errorf("amountBucket(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestEnrich_DailySequence(t *testing.T) {
	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	ds := domain.Dataset{
		txn(day1, 10, domain.TxnDebit),
		txn(day1, 20, domain.TxnDebit),
		txn(day2, 30, domain.TxnDebit),
		txn(day1, 40, domain.TxnDebit), // arrival order, not date order
	}

	out := Enrich(ds, config.Default())
	want := []int{1, 2, 1, 3}
	for i, w := range want {
		if out[i].DailySeq != w {
			t.Errorf("row %d: daily seq = %d, want %d", i, out[i].DailySeq, w)
		}
	}
}

func TestEnrich_RollingAverages(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ds := domain.Dataset{
		txn(date, 100, domain.TxnDebit),
		txn(date, 1000, domain.TxnCredit), // separate partition
		txn(date, 200, domain.TxnDebit),
		txn(date, 300, domain.TxnDebit),
	}

	out := Enrich(ds, config.Default())

	// Debit partition means: 100, (100+200)/2, (100+200+300)/3.
	wantDebit := []float64{100, 150, 200}
	debitIdx := []int{0, 2, 3}
	for i, idx := range debitIdx {
		if math.Abs(out[idx].Rolling7-wantDebit[i]) > 1e-9 {
			t.Errorf("row %d: rolling7 = %v, want %v", idx, out[idx].Rolling7, wantDebit[i])
		}
		if math.Abs(out[idx].Rolling30-wantDebit[i]) > 1e-9 {
			t.Errorf("row %d: rolling30 = %v, want %v", idx, out[idx].Rolling30, wantDebit[i])
		}
	}

	// The lone credit averages itself.
	if out[1].Rolling7 != 1000 {
		t.Errorf("credit rolling7 = %v, want 1000", out[1].Rolling7)
	}
}

func TestEnrich_RollingWindowSlides(t *testing.T) {
	cfg := config.Default()
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	var ds domain.Dataset
	for i := 0; i < 10; i++ {
		ds = append(ds, txn(date, float64((i+1)*10), domain.TxnDebit))
	}

	out := Enrich(ds, cfg)

	// Row 9 (value 100): mean of the last 7 values 40..100 = 70.
	if math.Abs(out[9].Rolling7-70) > 1e-9 {
		t.Errorf("rolling7 at row 9 = %v, want 70", out[9].Rolling7)
	}
	// Window 30 still covers all 10 rows: mean of 10..100 = 55.
	if math.Abs(out[9].Rolling30-55) > 1e-9 {
		t.Errorf("rolling30 at row 9 = %v, want 55", out[9].Rolling30)
	}
}

func TestEnrich_EmptyDataset(t *testing.T) {
	out := Enrich(domain.Dataset{}, config.Default())
	if len(out) != 0 {
		t.Errorf("expected empty output, got %d rows", len(out))
	}
	out = Enrich(nil, config.Default())
	if len(out) != 0 {
		t.Errorf("expected empty output for nil input, got %d rows", len(out))
	}
}
