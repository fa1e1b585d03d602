package pipeline

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
)

// ProcessResult is everything a caller gets back from one pipeline run: the
// enriched, de-duplicated dataset, the duplicates with the same schema, the
// advisory issue list and the file summary. RunID identifies the run so the
// presentation layer can cache results by input.
type ProcessResult struct {
	RunID      string
	Data       domain.Dataset
	Duplicates domain.Dataset
	Issues     []string
	Summary    Summary
}

// Process runs the full pipeline over one input stream. The reader is
// consumed exactly once; errors out of parsing keep their type, so callers
// can match *FormatError and *SchemaError with errors.As.
func Process(ctx context.Context, r io.Reader, format Format, cfg config.Config) (*ProcessResult, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}

	state := &State{Raw: raw, Format: format}
	if err := NewProcessingPipeline(cfg).Execute(ctx, state); err != nil {
		return nil, err
	}

	return &ProcessResult{
		RunID:      uuid.NewString(),
		Data:       state.Data,
		Duplicates: state.Duplicates,
		Issues:     state.Issues,
		Summary:    state.Summary,
	}, nil
}
