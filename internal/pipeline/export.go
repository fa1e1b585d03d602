package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// Export is a pass-through serialization of the canonical dataset table for
// the presentation layer; the core owns no file format beyond this.

var exportHeader = []string{
	"date", "amount", "description", "type", "category",
	"year", "month", "day", "day_of_week", "hour", "quarter", "week_of_year",
	"amount_bucket", "daily_seq", "rolling_avg_7", "rolling_avg_30",
}

type exportRow struct {
	Date         string  `json:"date"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Category     string  `json:"category,omitempty"`
	Year         int     `json:"year"`
	Month        int     `json:"month"`
	Day          int     `json:"day"`
	DayOfWeek    string  `json:"day_of_week"`
	Hour         int     `json:"hour"`
	Quarter      int     `json:"quarter"`
	WeekOfYear   int     `json:"week_of_year"`
	AmountBucket string  `json:"amount_bucket,omitempty"`
	DailySeq     int     `json:"daily_seq"`
	Rolling7     float64 `json:"rolling_avg_7"`
	Rolling30    float64 `json:"rolling_avg_30"`
}

func toExportRow(t domain.Transaction) exportRow {
	return exportRow{
		Date:         t.Date.Format("2006-01-02 15:04:05"),
		Amount:       t.Amount,
		Description:  t.Description,
		Type:         t.Type.String(),
		Category:     t.Category,
		Year:         t.Year,
		Month:        t.Month,
		Day:          t.Day,
		DayOfWeek:    t.DayOfWeek,
		Hour:         t.Hour,
		Quarter:      t.Quarter,
		WeekOfYear:   t.WeekOfYear,
		AmountBucket: t.AmountBucket,
		DailySeq:     t.DailySeq,
		Rolling7:     t.Rolling7,
		Rolling30:    t.Rolling30,
	}
}

// WriteCSV serializes the dataset with the canonical column set.
func WriteCSV(w io.Writer, ds domain.Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, t := range ds {
		row := toExportRow(t)
		rec := []string{
			row.Date,
			strconv.FormatFloat(row.Amount, 'f', 2, 64),
			row.Description,
			row.Type,
			row.Category,
			strconv.Itoa(row.Year),
			strconv.Itoa(row.Month),
			strconv.Itoa(row.Day),
			row.DayOfWeek,
			strconv.Itoa(row.Hour),
			strconv.Itoa(row.Quarter),
			strconv.Itoa(row.WeekOfYear),
			row.AmountBucket,
			strconv.Itoa(row.DailySeq),
			strconv.FormatFloat(row.Rolling7, 'f', 2, 64),
			strconv.FormatFloat(row.Rolling30, 'f', 2, 64),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteJSON serializes the dataset as a JSON array of row objects.
func WriteJSON(w io.Writer, ds domain.Dataset) error {
	rows := make([]exportRow, 0, len(ds))
	for _, t := range ds {
		rows = append(rows, toExportRow(t))
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(rows); err != nil {
		return fmt.Errorf("writing json: %w", err)
	}
	return nil
}
