package pipeline

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// Fingerprint computes the stable content hash used for duplicate detection:
// date, amount and the first truncLen description characters. Two records
// differing only beyond the truncation point intentionally collide. xxhash is
// explicit and process-independent, so duplicate detection reproduces across
// runs.
func Fingerprint(t domain.Transaction, truncLen int) uint64 {
	desc := t.Description
	if runes := []rune(desc); len(runes) > truncLen {
		desc = string(runes[:truncLen])
	}
	key := fmt.Sprintf("%s|%.2f|%s", t.Date.Format("2006-01-02 15:04:05"), t.Amount, desc)
	return xxhash.Sum64String(key)
}

// Dedupe partitions the dataset into kept records and duplicates. The first
// occurrence of a fingerprint is kept; later occurrences go to the duplicates
// set. Both sides preserve relative order and nothing is discarded:
// len(kept) + len(dups) == len(ds).
func Dedupe(ds domain.Dataset, truncLen int) (kept, dups domain.Dataset) {
	seen := make(map[uint64]bool, len(ds))
	for _, t := range ds {
		fp := Fingerprint(t, truncLen)
		if seen[fp] {
			dups = append(dups, t)
			continue
		}
		seen[fp] = true
		kept = append(kept, t)
	}
	return kept, dups
}
