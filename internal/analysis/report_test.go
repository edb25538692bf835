package analysis

import (
	"encoding/json"
	"testing"

	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleTable() *table.Table {
	rows := [][]string{
		{"1", "A"}, {"2", "A"}, {"3", "A"}, {"4", "B"}, {"5", "B"}, {"6", "C"}, {"7", "D"}, {"8"},
	}
	return &table.Table{Name: "reasons.csv", Header: []string{"Case Number", "Reason"}, Rows: rows, TotalRows: 10}
}

func TestReportMarkdown(t *testing.T) {
	tbl := sampleTable()
	tab, err := TabulateTable(tbl, "Reason")
	require.NoError(t, err)
	rep := NewReport(tbl, tab)

	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, 4, rep.Distinct)
	assert.InDelta(t, 1.75, rep.Counts.Mean, 1e-9)
	assert.InDelta(t, 1.5, rep.Counts.Median, 1e-9)
	assert.InDelta(t, 3, rep.Counts.Max, 1e-9)

	md := rep.Markdown()
	assert.Contains(t, md, "[FREQUENCY SUMMARY]")
	assert.Contains(t, md, "File: reasons.csv")
	assert.Contains(t, md, "Column: Reason")
	assert.Contains(t, md, "Rows: 8 (non-empty 7, distinct 4)")
	assert.Contains(t, md, "- A: 3 (42.86%)")
	assert.Contains(t, md, "- Others: 14.29%")
	assert.Contains(t, md, "4. D: 14.29%")
	assert.Contains(t, md, "processed only 8/10 rows due to MaxRows")
	assert.Contains(t, md, "skipped 1 rows with an empty or missing value")
}

func TestReportEmpty(t *testing.T) {
	rep := NewReport(nil, Tabulate(nil, 0))
	md := rep.Markdown()
	assert.Contains(t, md, "Column: (unnamed)")
	assert.NotContains(t, md, "[TOP CATEGORIES]")
	assert.NotContains(t, md, "[NOTES]")
}

func TestReportJSONAndYAML(t *testing.T) {
	tbl := sampleTable()
	tab, err := TabulateTable(tbl, "Reason")
	require.NoError(t, err)
	rep := NewReport(tbl, tab)

	b, err := rep.JSON()
	require.NoError(t, err)
	var decoded struct {
		File       string `json:"file"`
		Tabulation struct {
			ChartData []struct {
				Name    string  `json:"name"`
				Value   float64 `json:"value"`
				IsOther bool    `json:"isOther"`
			} `json:"chartData"`
		} `json:"tabulation"`
	}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Equal(t, "reasons.csv", decoded.File)
	require.Len(t, decoded.Tabulation.ChartData, 4)
	assert.True(t, decoded.Tabulation.ChartData[3].IsOther)

	y, err := rep.YAML()
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, yaml.Unmarshal(y, &m))
	assert.Equal(t, "reasons.csv", m["file"])
	assert.Equal(t, 4, m["distinct"])
}
