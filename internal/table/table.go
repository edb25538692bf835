package table

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Options controls how a tabular file is read.
type Options struct {
	// MaxRows limits data rows kept; 0 means unlimited.
	MaxRows int
	// Delimiter for CSV. If 0, sniffed from the file name (',' or '\t').
	Delimiter rune
	// XLSX sheet selection. SheetName wins over SheetIndex (1-based).
	SheetName  string
	SheetIndex int
}

// DefaultOptions returns reasonable defaults for reading a dataset.
func DefaultOptions() Options {
	return Options{
		MaxRows:    100000,
		SheetIndex: 1,
	}
}

// Table is an in-memory dataset: the first record is the header, the rest are data rows.
// Rows may be shorter or longer than the header.
type Table struct {
	Name   string
	Header []string
	Rows   [][]string
	// TotalRows counts every data row seen, including rows dropped by MaxRows.
	TotalRows int
}

// ErrUnsupported indicates a file format with no registered reader.
var ErrUnsupported = errors.New("unsupported table format")

// Truncated reports whether MaxRows dropped rows.
func (t *Table) Truncated() bool { return t != nil && t.TotalRows > len(t.Rows) }

// ColumnIndex returns the index of the first header equal to name, or -1.
func (t *Table) ColumnIndex(name string) int {
	if t == nil {
		return -1
	}
	for i, h := range t.Header {
		if h == name {
			return i
		}
	}
	return -1
}

// ColumnLabel returns a display label for the header at i.
func (t *Table) ColumnLabel(i int) string {
	if t == nil || i < 0 || i >= len(t.Header) {
		return ""
	}
	return DisplayName(t.Header[i])
}

// DisplayName renders an empty header as "(unnamed)".
func DisplayName(s string) string {
	if strings.TrimSpace(s) == "" {
		return "(unnamed)"
	}
	return s
}

// Reader reads one file format into a Table.
type Reader interface {
	CanRead(filename string) bool
	Read(path string, opt Options) (*Table, error)
}

var registry []Reader

// Register adds a reader implementation to the registry.
func Register(r Reader) {
	registry = append(registry, r)
}

// Load selects a reader based on the file name and reads the table.
func Load(path string, opt Options) (*Table, error) {
	for _, r := range registry {
		if r.CanRead(path) {
			return r.Read(path, opt)
		}
	}
	return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrUnsupported)
}

func init() {
	Register(csvReader{})
	Register(xlsxReader{})
}

// appendRow applies the MaxRows cap and keeps a private copy of rec.
func (t *Table) appendRow(rec []string, maxRows int) {
	t.TotalRows++
	if maxRows > 0 && len(t.Rows) >= maxRows {
		return
	}
	row := make([]string, len(rec))
	copy(row, rec)
	t.Rows = append(t.Rows, row)
}
