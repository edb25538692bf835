package analysis

import (
	"strconv"

	"github.com/KaramelBytes/csvtally/internal/table"
)

const (
	// TopN is how many ranked categories are charted individually.
	TopN = 3
	// OthersLabel names the synthetic bucket for ranks beyond TopN.
	OthersLabel = "Others"
)

// Category is one distinct value with its count and two-decimal percentage.
type Category struct {
	Name       string `json:"name" yaml:"name"`
	Count      int    `json:"value" yaml:"value"`
	Percentage string `json:"percentage" yaml:"percentage"`
}

// ChartItem is a chart-ready entry. For the Others item, Value is the summed percentage
// of every category past TopN rather than a count.
type ChartItem struct {
	Name       string  `json:"name" yaml:"name"`
	Value      float64 `json:"value" yaml:"value"`
	Percentage string  `json:"percentage" yaml:"percentage"`
	IsOther    bool    `json:"isOther,omitempty" yaml:"is_other,omitempty"`
}

// Tabulation is the frequency table of one column.
type Tabulation struct {
	Column string `json:"column" yaml:"column"`
	// Rows is the number of rows scanned; Total the number of non-empty cells counted.
	Rows          int         `json:"rows" yaml:"rows"`
	Total         int         `json:"total" yaml:"total"`
	ChartData     []ChartItem `json:"chartData" yaml:"chart_data"`
	AllCategories []Category  `json:"allCategories" yaml:"all_categories"`
}

// Skipped returns how many rows had an empty or missing cell.
func (t Tabulation) Skipped() int { return t.Rows - t.Total }

// Tabulate counts the non-empty values of column col and splits them into the top
// categories plus an Others bucket. An empty dataset or col < 0 yields empty results.
func Tabulate(rows [][]string, col int) Tabulation {
	tab := Tabulation{Rows: len(rows), ChartData: []ChartItem{}, AllCategories: []Category{}}
	if len(rows) == 0 || col < 0 {
		return tab
	}
	buckets := Rank(rows, col, -1)
	for _, b := range buckets {
		tab.Total += b.Count
	}
	if tab.Total == 0 {
		return tab
	}
	tab.AllCategories = make([]Category, 0, len(buckets))
	for _, b := range buckets {
		tab.AllCategories = append(tab.AllCategories, Category{
			Name:       b.Value,
			Count:      b.Count,
			Percentage: formatPercent(100 * float64(b.Count) / float64(tab.Total)),
		})
	}
	for i, c := range tab.AllCategories {
		if i >= TopN {
			break
		}
		tab.ChartData = append(tab.ChartData, ChartItem{Name: c.Name, Value: float64(c.Count), Percentage: c.Percentage})
	}
	if len(tab.AllCategories) > TopN {
		var others float64
		for _, c := range tab.AllCategories[TopN:] {
			others += parsePercent(c.Percentage)
		}
		tab.ChartData = append(tab.ChartData, ChartItem{
			Name:       OthersLabel,
			Value:      others,
			Percentage: formatPercent(others),
			IsOther:    true,
		})
	}
	return tab
}

// TabulateTable tabulates the column named column. An empty column name or an empty
// table yields an empty tabulation; an unknown column is ErrColumnNotFound.
func TabulateTable(tbl *table.Table, column string) (Tabulation, error) {
	if tbl == nil || len(tbl.Rows) == 0 || column == "" {
		return Tabulation{Column: column, ChartData: []ChartItem{}, AllCategories: []Category{}}, nil
	}
	idx := tbl.ColumnIndex(column)
	if idx < 0 {
		return Tabulation{}, columnNotFound(column)
	}
	tab := Tabulate(tbl.Rows, idx)
	tab.Column = column
	return tab, nil
}

func formatPercent(x float64) string { return strconv.FormatFloat(x, 'f', 2, 64) }

func parsePercent(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
