package analysis

import (
	"errors"
	"fmt"
)

var (
	// ErrNoData indicates no file is loaded or it has no data rows.
	ErrNoData = errors.New("no data loaded")
	// ErrNoColumn indicates no column was selected.
	ErrNoColumn = errors.New("no column selected")
	// ErrColumnNotFound indicates the selected column is absent from the header.
	ErrColumnNotFound = errors.New("column not found")
	// ErrCaseColumnMissing indicates case numbers were requested but the case column is absent.
	ErrCaseColumnMissing = errors.New("case number column not found")
	// ErrInvalidCopyCount indicates a copy count below 1.
	ErrInvalidCopyCount = errors.New("copy count must be at least 1")
)

func columnNotFound(name string) error {
	return fmt.Errorf("%w: %q", ErrColumnNotFound, name)
}
