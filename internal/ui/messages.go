package ui

import (
	"context"
	"time"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/KaramelBytes/csvtally/internal/export"
	"github.com/KaramelBytes/csvtally/internal/table"
	tea "github.com/charmbracelet/bubbletea"
)

// copyDoneMsg carries the outcome of an asynchronous copy.
type copyDoneMsg struct {
	sample *analysis.Sample
	err    error
}

// copiedResetMsg clears the copied indicator set by copy number seq.
type copiedResetMsg struct {
	seq int
}

// copyCommand runs the exporter off the update loop.
func copyCommand(exp *export.Exporter, tbl *table.Table, req export.Request) tea.Cmd {
	return func() tea.Msg {
		s, err := exp.Copy(context.Background(), tbl, req)
		return copyDoneMsg{sample: s, err: err}
	}
}

func resetCopied(after time.Duration, seq int) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}
