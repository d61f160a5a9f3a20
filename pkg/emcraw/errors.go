package emcraw

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrEmptyDocument indicates the input document contains no tables at
// all. Extraction over a loaded document is otherwise best-effort and
// never fatal; a completely empty document is an input error the caller
// should surface instead of returning an empty result silently.
var ErrEmptyDocument = errors.New("document contains no tables")

// ExtractionError represents an error during extraction. The pipeline
// stages themselves are best-effort and total; the failures that remain
// are input failures, tagged with the source document they came from.
type ExtractionError struct {
	Source    string
	Component string // "load", "extract"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error for %q (%s): %v", e.Source, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(source, component string, err error) *ExtractionError {
	return &ExtractionError{
		Source:    source,
		Component: component,
		Err:       err,
	}
}
