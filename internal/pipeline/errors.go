package pipeline

import "fmt"

// FormatError reports that a structured-markup document contained no
// extractable transactions. Callers should treat it as "no transactions
// found" rather than a hard parse failure.
type FormatError struct {
	Detail string
}

func (e *FormatError) Error() string {
	if e.Detail == "" {
		return "no recognizable transactions found in document"
	}
	return fmt.Sprintf("no recognizable transactions found: %s", e.Detail)
}

// SchemaError reports a delimited input missing a required column. It is
// fatal to the parse call because the rest of the pipeline needs the field.
type SchemaError struct {
	Field string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("required column %q not found in input", e.Field)
}
