package pipeline

import (
	"fmt"
	"strings"
	"time"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// Validate runs the data-quality checks and returns one human-readable line
// per class of issue found. It never mutates the dataset and never fails;
// issues are advisory and do not block downstream stages.
func Validate(ds domain.Dataset, cfg config.Config, now time.Time) []string {
	var issues []string

	missingDate := 0
	missingDesc := 0
	missingType := 0
	nonPositive := 0
	future := 0
	stale := 0
	cutoff := now.AddDate(0, 0, -cfg.StaleAfterDays)

	for _, t := range ds {
		if t.Date.IsZero() {
			missingDate++
		}
		if t.Description == "" {
			missingDesc++
		}
		if t.Type == domain.TxnUnknown {
			missingType++
		}
		if t.Amount <= 0 {
			nonPositive++
		}
		if !t.Date.IsZero() && t.Date.After(now) {
			future++
		}
		if !t.Date.IsZero() && t.Date.Before(cutoff) {
			stale++
		}
	}

	var missing []string
	if missingDate > 0 {
		missing = append(missing, fmt.Sprintf("date: %d", missingDate))
	}
	if missingDesc > 0 {
		missing = append(missing, fmt.Sprintf("description: %d", missingDesc))
	}
	if missingType > 0 {
		missing = append(missing, fmt.Sprintf("type: %d", missingType))
	}
	if len(missing) > 0 {
		issues = append(issues, fmt.Sprintf("Missing data found: %s", strings.Join(missing, ", ")))
	}
	if nonPositive > 0 {
		issues = append(issues, fmt.Sprintf("Found %d transactions with invalid amounts", nonPositive))
	}
	if future > 0 {
		issues = append(issues, fmt.Sprintf("Found %d transactions with future dates", future))
	}
	if stale > 0 {
		issues = append(issues, fmt.Sprintf("Found %d transactions older than 10 years", stale))
	}

	return issues
}
