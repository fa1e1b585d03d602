package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"time"

	"github.com/shubhh2077/Ledger-Of-Legends/internal/config"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/domain"
	"github.com/shubhh2077/Ledger-Of-Legends/internal/logger"
)

// Format tags the declared source format of an input stream. The caller owns
// the decision; the core never sniffs file extensions.
type Format string

const (
	FormatHTML Format = "html"
	FormatCSV  Format = "csv"
)

// Step is a single stage of the processing pipeline.
type Step interface {
	Name() string
	Execute(ctx context.Context, state *State) error
}

// State is the shared state threaded through the pipeline steps.
type State struct {
	Raw    []byte
	Format Format

	Data       domain.Dataset
	Duplicates domain.Dataset
	Issues     []string
	Summary    Summary
}

// Summary is the compact description of a processed file handed to the
// presentation layer.
type Summary struct {
	TotalTransactions int     `json:"total_transactions"`
	DateRange         string  `json:"date_range"`
	TotalAmount       float64 `json:"total_amount"`
	DuplicateCount    int     `json:"duplicate_count"`
}

// ParseStep turns the raw bytes into a normalized dataset using the parser
// matching the declared format.
type ParseStep struct {
	cfg config.Config
}

func (s *ParseStep) Name() string { return "parse" }

func (s *ParseStep) Execute(ctx context.Context, state *State) error {
	switch state.Format {
	case FormatHTML:
		ds, err := NewActivityParser(s.cfg).Parse(bytes.NewReader(state.Raw))
		if err != nil {
			return err
		}
		state.Data = ds
	case FormatCSV:
		ds, err := NewCSVParser(s.cfg).Parse(bytes.NewReader(state.Raw))
		if err != nil {
			return err
		}
		state.Data = ds
	default:
		return fmt.Errorf("unsupported format %q", state.Format)
	}
	return nil
}

// EnrichStep populates the derived fields.
type EnrichStep struct {
	cfg config.Config
}

func (s *EnrichStep) Name() string { return "enrich" }

func (s *EnrichStep) Execute(ctx context.Context, state *State) error {
	state.Data = Enrich(state.Data, s.cfg)
	return nil
}

// DedupeStep partitions exact duplicates out of the dataset.
type DedupeStep struct {
	cfg config.Config
}

func (s *DedupeStep) Name() string { return "dedupe" }

func (s *DedupeStep) Execute(ctx context.Context, state *State) error {
	state.Data, state.Duplicates = Dedupe(state.Data, s.cfg.FingerprintLen)
	return nil
}

// ValidateStep records data-quality issues without touching the data.
type ValidateStep struct {
	cfg config.Config

	// Now is swappable for tests; nil means time.Now.
	Now func() time.Time
}

func (s *ValidateStep) Name() string { return "validate" }

func (s *ValidateStep) Execute(ctx context.Context, state *State) error {
	now := time.Now()
	if s.Now != nil {
		now = s.Now()
	}
	state.Issues = Validate(state.Data, s.cfg, now)
	return nil
}

// SummarizeStep computes the output summary over the kept dataset.
type SummarizeStep struct{}

func (s *SummarizeStep) Name() string { return "summarize" }

func (s *SummarizeStep) Execute(ctx context.Context, state *State) error {
	state.Summary = Summarize(state.Data, state.Duplicates)
	return nil
}

// Summarize builds the file-level summary. All fields degrade to zero or
// empty on an empty dataset.
func Summarize(ds, dups domain.Dataset) Summary {
	summary := Summary{
		TotalTransactions: len(ds),
		DuplicateCount:    len(dups),
	}
	if len(ds) == 0 {
		return summary
	}

	minDate, maxDate := ds[0].Date, ds[0].Date
	for _, t := range ds {
		summary.TotalAmount += t.Amount
		if t.Date.Before(minDate) {
			minDate = t.Date
		}
		if t.Date.After(maxDate) {
			maxDate = t.Date
		}
	}
	summary.DateRange = fmt.Sprintf("%s to %s", minDate.Format("2006-01-02"), maxDate.Format("2006-01-02"))
	return summary
}

// Pipeline executes a sequence of steps in order.
type Pipeline struct {
	steps []Step
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(steps ...Step) *Pipeline {
	return &Pipeline{steps: steps}
}

// Execute runs all steps sequentially, logging stage progress.
func (p *Pipeline) Execute(ctx context.Context, state *State) error {
	log := logger.FromContext(ctx)
	for i, step := range p.steps {
		if err := step.Execute(ctx, state); err != nil {
			return fmt.Errorf("pipeline step %d (%s) failed: %w", i+1, step.Name(), err)
		}
		log.Debug().
			Str("step", step.Name()).
			Int("rows", len(state.Data)).
			Int("duplicates", len(state.Duplicates)).
			Msg("pipeline step completed")
	}
	return nil
}

// NewProcessingPipeline wires the standard parse, enrich, dedupe, validate,
// summarize sequence.
func NewProcessingPipeline(cfg config.Config) *Pipeline {
	return NewPipeline(
		&ParseStep{cfg: cfg},
		&EnrichStep{cfg: cfg},
		&DedupeStep{cfg: cfg},
		&ValidateStep{cfg: cfg},
		&SummarizeStep{},
	)
}
