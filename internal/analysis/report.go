package analysis

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"gopkg.in/yaml.v3"
)

// Report is a markdown-friendly frequency summary of one column.
type Report struct {
	ID         string     `json:"id" yaml:"id"`
	File       string     `json:"file" yaml:"file"`
	TotalRows  int        `json:"totalRows" yaml:"total_rows"`
	Distinct   int        `json:"distinct" yaml:"distinct"`
	Counts     CountStats `json:"counts" yaml:"counts"`
	Tabulation Tabulation `json:"tabulation" yaml:"tabulation"`
	Warnings   []string   `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

// CountStats summarizes how occurrences spread across categories.
type CountStats struct {
	Mean   float64 `json:"mean" yaml:"mean"`
	Median float64 `json:"median" yaml:"median"`
	Max    float64 `json:"max" yaml:"max"`
}

// NewReport wraps a tabulation of tbl with file-level context.
func NewReport(tbl *table.Table, tab Tabulation) *Report {
	r := &Report{ID: uuid.NewString(), Tabulation: tab, Distinct: len(tab.AllCategories)}
	if tbl != nil {
		r.File = tbl.Name
		r.TotalRows = tbl.TotalRows
		if tbl.Truncated() {
			r.Warnings = append(r.Warnings, fmt.Sprintf("processed only %d/%d rows due to MaxRows", len(tbl.Rows), tbl.TotalRows))
		}
	}
	if n := tab.Skipped(); n > 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("skipped %d rows with an empty or missing value", n))
	}
	if len(tab.AllCategories) > 0 {
		counts := make([]int, len(tab.AllCategories))
		for i, c := range tab.AllCategories {
			counts[i] = c.Count
		}
		data := stats.LoadRawData(counts)
		// Errors only occur on empty input, which is excluded above.
		r.Counts.Mean, _ = stats.Mean(data)
		r.Counts.Median, _ = stats.Median(data)
		r.Counts.Max, _ = stats.Max(data)
	}
	return r
}

// Markdown renders a compact report suitable for pasting into notes or tickets.
func (r *Report) Markdown() string {
	var b strings.Builder
	t := r.Tabulation
	b.WriteString("[FREQUENCY SUMMARY]\n")
	if r.File != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.File))
	}
	b.WriteString(fmt.Sprintf("Column: %s\n", table.DisplayName(t.Column)))
	b.WriteString(fmt.Sprintf("Rows: %d (non-empty %d, distinct %d)\n", t.Rows, t.Total, r.Distinct))
	if r.Distinct > 0 {
		b.WriteString(fmt.Sprintf("Counts: mean %.4g, median %.4g, max %.4g\n", r.Counts.Mean, r.Counts.Median, r.Counts.Max))
	}

	if len(t.ChartData) > 0 {
		b.WriteString("\n[TOP CATEGORIES]\n")
		for _, it := range t.ChartData {
			if it.IsOther {
				b.WriteString(fmt.Sprintf("- %s: %s%%\n", it.Name, it.Percentage))
				continue
			}
			b.WriteString(fmt.Sprintf("- %s: %d (%s%%)\n", safeVal(it.Name), int(it.Value), it.Percentage))
		}
	}
	if len(t.AllCategories) > 0 {
		b.WriteString("\n[CATEGORY BREAKDOWN]\n")
		for i, c := range t.AllCategories {
			b.WriteString(fmt.Sprintf("%d. %s: %s%%\n", i+1, safeVal(c.Name), c.Percentage))
		}
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// JSON renders the report as indented JSON.
func (r *Report) JSON() ([]byte, error) {
	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal json: %w", err)
	}
	return b, nil
}

// YAML renders the report as YAML.
func (r *Report) YAML() ([]byte, error) {
	b, err := yaml.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal yaml: %w", err)
	}
	return b, nil
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }
