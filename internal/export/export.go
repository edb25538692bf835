// Package export samples a table column and places the result on the clipboard.
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/KaramelBytes/csvtally/internal/clipboard"
	"github.com/KaramelBytes/csvtally/internal/notify"
	"github.com/KaramelBytes/csvtally/internal/table"
)

// DefaultCaseColumn is the header holding case identifiers.
const DefaultCaseColumn = "Case Number"

const (
	msgNoSelection = "Please upload a CSV file and select a header first."
	msgNotFound    = "Selected header or Case Number not found in the CSV."
	msgCopyFailed  = "Failed to copy to clipboard. Please try again."
)

// Request describes one copy action.
type Request struct {
	Column            string
	CopyCount         int
	IncludeCaseNumber bool
	// CaseColumn defaults to DefaultCaseColumn.
	CaseColumn string
	// Seed drives filler selection; zero seeds from the clock.
	Seed uint64
}

// Exporter runs the sampler and reports outcomes through the injected notifier.
type Exporter struct {
	Clipboard clipboard.Writer
	Notifier  notify.Notifier
	Logger    *log.Logger
}

// New returns an Exporter. A nil logger discards output.
func New(w clipboard.Writer, n notify.Notifier, logger *log.Logger) *Exporter {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Exporter{Clipboard: w, Notifier: n, Logger: logger}
}

// Copy validates req against tbl, samples the column and writes the text to the clipboard.
// Every failure is reported to the notifier and returned; in-memory state is never touched.
func (e *Exporter) Copy(ctx context.Context, tbl *table.Table, req Request) (*analysis.Sample, error) {
	if tbl == nil || len(tbl.Rows) == 0 {
		return nil, e.fail(msgNoSelection, analysis.ErrNoData)
	}
	if req.Column == "" {
		return nil, e.fail(msgNoSelection, analysis.ErrNoColumn)
	}
	col := tbl.ColumnIndex(req.Column)
	if col < 0 {
		return nil, e.fail(msgNotFound, fmt.Errorf("%w: %q", analysis.ErrColumnNotFound, req.Column))
	}
	caseName := req.CaseColumn
	if caseName == "" {
		caseName = DefaultCaseColumn
	}
	caseCol := tbl.ColumnIndex(caseName)
	if req.IncludeCaseNumber && caseCol < 0 {
		return nil, e.fail(msgNotFound, fmt.Errorf("%w: %q", analysis.ErrCaseColumnMissing, caseName))
	}

	s, err := analysis.Draw(tbl.Rows, col, analysis.SampleOptions{
		CopyCount:         req.CopyCount,
		IncludeCaseNumber: req.IncludeCaseNumber,
		CaseColumn:        caseCol,
		Rand:              analysis.NewRand(req.Seed),
	})
	if err != nil {
		return nil, e.fail(err.Error(), err)
	}
	e.Logger.Printf("sampled %d/%d lines from %q (%d categories)", len(s.Lines), req.CopyCount, req.Column, len(s.Categories))

	if err := e.Clipboard.WriteText(ctx, s.Text()); err != nil {
		msg := err.Error()
		if msg == "" {
			msg = msgCopyFailed
		}
		return nil, e.fail(msg, fmt.Errorf("copy to clipboard: %w", err))
	}
	e.Notifier.Success("Success", fmt.Sprintf("%d entries copied to clipboard. Ready to paste in spreadsheet.", len(s.Lines)))
	return s, nil
}

func (e *Exporter) fail(msg string, err error) error {
	e.Logger.Printf("copy failed: %v", err)
	e.Notifier.Error("Error", msg)
	return err
}

// IsValidation reports whether err is an input validation failure rather than a clipboard error.
func IsValidation(err error) bool {
	return errors.Is(err, analysis.ErrNoData) ||
		errors.Is(err, analysis.ErrNoColumn) ||
		errors.Is(err, analysis.ErrColumnNotFound) ||
		errors.Is(err, analysis.ErrCaseColumnMissing) ||
		errors.Is(err, analysis.ErrInvalidCopyCount)
}
