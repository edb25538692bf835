package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadCSV(t *testing.T) {
	p := writeFile(t, "cases.csv", "Case Number,Reason,Note\n"+
		"C-1,Late driver,first\n"+
		"C-2,Rude,\n"+
		"C-3\n")
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, "cases.csv", tbl.Name)
	assert.Equal(t, []string{"Case Number", "Reason", "Note"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, []string{"C-3"}, tbl.Rows[2], "short rows are kept as-is")
	assert.Equal(t, 1, tbl.ColumnIndex("Reason"))
	assert.Equal(t, -1, tbl.ColumnIndex("Missing"))
	assert.False(t, tbl.Truncated())
}

func TestLoadTSVSniffsDelimiter(t *testing.T) {
	p := writeFile(t, "cases.tsv", "a\tb\n1\t2\n")
	tbl, err := Load(p, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Header)
	assert.Equal(t, [][]string{{"1", "2"}}, tbl.Rows)
}

func TestReadCSVMaxRowsAndBOM(t *testing.T) {
	in := "\ufeffReason\nA\nB\nC\n"
	tbl, err := ReadCSV(strings.NewReader(in), "x.csv", ',', 2)
	require.NoError(t, err)
	assert.Equal(t, "Reason", tbl.Header[0])
	assert.Len(t, tbl.Rows, 2)
	assert.Equal(t, 3, tbl.TotalRows)
	assert.True(t, tbl.Truncated())
}

func TestReadCSVEmpty(t *testing.T) {
	tbl, err := ReadCSV(strings.NewReader(""), "empty.csv", ',', 0)
	require.NoError(t, err)
	assert.Empty(t, tbl.Header)
	assert.Empty(t, tbl.Rows)
}

func TestColumnIndexDuplicatesResolveToFirst(t *testing.T) {
	tbl := &Table{Header: []string{"x", "", "x"}}
	assert.Equal(t, 0, tbl.ColumnIndex("x"))
	assert.Equal(t, 1, tbl.ColumnIndex(""))
	assert.Equal(t, "(unnamed)", tbl.ColumnLabel(1))
	assert.Equal(t, "", tbl.ColumnLabel(7))
}

func TestLoadUnsupported(t *testing.T) {
	_, err := Load("report.pdf", DefaultOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupported))
}

func writeXLSX(t *testing.T) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"ignored"}))
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"Case Number", "Reason"},
		{"C-1", "Late"},
		{"C-2", "Late"},
		{"C-3", "Rude"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Data", cell, &r))
	}
	p := filepath.Join(t.TempDir(), "cases.xlsx")
	require.NoError(t, f.SaveAs(p))
	return p
}

func TestLoadXLSXSheetSelection(t *testing.T) {
	p := writeXLSX(t)

	opt := DefaultOptions()
	opt.SheetName = "data"
	tbl, err := Load(p, opt)
	require.NoError(t, err)
	assert.Equal(t, []string{"Case Number", "Reason"}, tbl.Header)
	require.Len(t, tbl.Rows, 3)
	assert.Equal(t, "Rude", tbl.Rows[2][1])

	opt = DefaultOptions()
	opt.SheetIndex = 2
	byIndex, err := Load(p, opt)
	require.NoError(t, err)
	assert.Equal(t, tbl.Rows, byIndex.Rows)

	opt = DefaultOptions()
	opt.SheetName = "Nope"
	_, err = Load(p, opt)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available sheets: Sheet1, Data")
}
