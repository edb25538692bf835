package cmd

import (
	"fmt"
	"strings"

	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/spf13/cobra"
)

// inputFlags are the file-reading flags shared by every command that loads a table.
type inputFlags struct {
	delimiter  string
	maxRows    int
	sheetName  string
	sheetIndex int
}

func (f *inputFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.delimiter, "delimiter", "", "CSV delimiter: ',' | ';' | '|' | 'tab' (sniffed if omitted)")
	cmd.Flags().IntVar(&f.maxRows, "max-rows", 100000, "maximum rows to process (0 = unlimited)")
	cmd.Flags().StringVar(&f.sheetName, "sheet-name", "", "XLSX: sheet name to read")
	cmd.Flags().IntVar(&f.sheetIndex, "sheet-index", 1, "XLSX: 1-based sheet index (used if --sheet-name not provided)")
}

// options merges configuration with any flags set on cmd.
func (f *inputFlags) options(cmd *cobra.Command) (table.Options, error) {
	c := settings()
	opt := table.DefaultOptions()
	opt.MaxRows = c.MaxRows
	opt.SheetName = c.SheetName
	if c.SheetIndex > 0 {
		opt.SheetIndex = c.SheetIndex
	}
	delim := c.Delimiter

	fl := cmd.Flags()
	if fl.Changed("max-rows") {
		opt.MaxRows = f.maxRows
	}
	if fl.Changed("sheet-name") {
		opt.SheetName = f.sheetName
	}
	if fl.Changed("sheet-index") {
		opt.SheetIndex = f.sheetIndex
	}
	if fl.Changed("delimiter") {
		delim = f.delimiter
	}
	d, err := parseDelimiter(delim)
	if err != nil {
		return opt, err
	}
	opt.Delimiter = d
	return opt, nil
}

func (f *inputFlags) load(cmd *cobra.Command, path string) (*table.Table, error) {
	opt, err := f.options(cmd)
	if err != nil {
		return nil, err
	}
	tbl, err := table.Load(path, opt)
	if err != nil {
		return nil, err
	}
	logger.Printf("loaded %s: %d columns, %d/%d rows", path, len(tbl.Header), len(tbl.Rows), tbl.TotalRows)
	return tbl, nil
}

func parseDelimiter(s string) (rune, error) {
	switch strings.ToLower(s) {
	case "":
		return 0, nil
	case ",":
		return ',', nil
	case ";":
		return ';', nil
	case "|":
		return '|', nil
	case "\t", "tab":
		return '\t', nil
	default:
		return 0, fmt.Errorf("unsupported --delimiter: %s", s)
	}
}

// requireColumn checks that column names a header of tbl and lists the choices if not.
func requireColumn(tbl *table.Table, column string) error {
	if column == "" {
		return fmt.Errorf("no column selected; use --column (available: %s)", strings.Join(columnLabels(tbl), ", "))
	}
	if tbl.ColumnIndex(column) < 0 {
		return fmt.Errorf("column %q not found (available: %s)", column, strings.Join(columnLabels(tbl), ", "))
	}
	return nil
}

func columnLabels(tbl *table.Table) []string {
	out := make([]string, len(tbl.Header))
	for i := range tbl.Header {
		out[i] = tbl.ColumnLabel(i)
	}
	return out
}
