package domain

import (
	"strings"
	"time"
)

// TxnType is the direction of a transaction: money in (Credit) or money out (Debit).
type TxnType int

const (
	TxnUnknown TxnType = iota
	TxnCredit
	TxnDebit
)

func (t TxnType) String() string {
	switch t {
	case TxnCredit:
		return "Credit"
	case TxnDebit:
		return "Debit"
	default:
		return ""
	}
}

// TxnTypeFromString maps a free-form type column value onto the enum.
// Anything that is not recognizably a credit is treated as a debit, so a
// parsed dataset never carries unknown types downstream.
func TxnTypeFromString(s string) TxnType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "credit", "cr", "in":
		return TxnCredit
	default:
		return TxnDebit
	}
}

// Transaction is the canonical record every source format is coerced into.
// Parsers populate Date, Amount, Description and Type; the enrichment stage
// fills the derived fields; the categorizer fills Category.
type Transaction struct {
	Date        time.Time
	Amount      float64 // positive magnitude, currency-agnostic
	Description string
	Type        TxnType
	Category    string // empty until the categorizer runs

	// Derived fields, zero-valued until enrichment.
	Year         int
	Month        int // 1-12
	Day          int
	DayOfWeek    string
	Hour         int
	Quarter      int // 1-4
	WeekOfYear   int // ISO week
	AmountBucket string
	DailySeq     int // 1-based rank among same-day transactions, arrival order
	Rolling7     float64
	Rolling30    float64
	Enriched     bool
}

// Dataset is an ordered collection of transactions. Insertion order is parse
// order from the source file and every stage preserves it.
type Dataset []Transaction

// Clone returns a copy that can be mutated without touching the receiver.
func (d Dataset) Clone() Dataset {
	if d == nil {
		return nil
	}
	out := make(Dataset, len(d))
	copy(out, d)
	return out
}
