// Package ui is the interactive terminal view: pick a column, inspect its chart and
// breakdown, and copy a sample to the clipboard.
package ui

import (
	"fmt"
	"io"
	"log"
	"strings"
	"time"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/KaramelBytes/csvtally/internal/chart"
	"github.com/KaramelBytes/csvtally/internal/clipboard"
	"github.com/KaramelBytes/csvtally/internal/export"
	"github.com/KaramelBytes/csvtally/internal/notify"
	"github.com/KaramelBytes/csvtally/internal/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
)

// Options seeds the view state from configuration and flags.
type Options struct {
	Column            string
	Kind              chart.Kind
	Palette           chart.Palette
	Emphasis          bool
	Width             int
	CopyCount         int
	IncludeCaseNumber bool
	CaseColumn        string
	Seed              uint64
	// CopiedReset is how long the copied indicator stays on.
	CopiedReset time.Duration
	Logger      *log.Logger
}

// Model is the bubbletea model for one loaded table.
type Model struct {
	tbl      *table.Table
	exporter *export.Exporter
	notes    *notify.Recorder
	logger   *log.Logger
	session  string

	opt      Options
	cursor   int
	selected int
	tab      analysis.Tabulation
	focus    int

	copying bool
	copied  bool
	copySeq int

	width    int
	height   int
	quitting bool

	primaryColor  lipgloss.AdaptiveColor
	mutedColor    lipgloss.AdaptiveColor
	successColor  lipgloss.AdaptiveColor
	errorColor    lipgloss.AdaptiveColor
	selectedColor lipgloss.AdaptiveColor
}

// NewModel builds a model over tbl that copies through w.
func NewModel(tbl *table.Table, w clipboard.Writer, opt Options) *Model {
	if opt.Logger == nil {
		opt.Logger = log.New(io.Discard, "", 0)
	}
	if len(opt.Palette) == 0 {
		opt.Palette = chart.DefaultPalette
	}
	if opt.Kind == "" {
		opt.Kind = chart.Bar
	}
	if opt.Width <= 0 {
		opt.Width = 48
	}
	if opt.CopyCount < 1 {
		opt.CopyCount = 16
	}
	if opt.CopiedReset <= 0 {
		opt.CopiedReset = 2 * time.Second
	}
	notes := &notify.Recorder{}
	m := &Model{
		tbl:           tbl,
		exporter:      export.New(w, notes, opt.Logger),
		notes:         notes,
		logger:        opt.Logger,
		session:       uuid.NewString(),
		opt:           opt,
		selected:      -1,
		focus:         chart.NoFocus,
		primaryColor:  lipgloss.AdaptiveColor{Light: "#4E790B", Dark: "#C1F11D"},
		mutedColor:    lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"},
		successColor:  lipgloss.AdaptiveColor{Light: "#10B981", Dark: "#34D399"},
		errorColor:    lipgloss.AdaptiveColor{Light: "#EF4444", Dark: "#F87171"},
		selectedColor: lipgloss.AdaptiveColor{Light: "#DBEAFE", Dark: "#1E3A8A"},
	}
	if tbl != nil && opt.Column != "" {
		if i := tbl.ColumnIndex(opt.Column); i >= 0 {
			m.cursor = i
			m.selectColumn(i)
		}
	}
	m.logger.Printf("ui session %s opened", m.session)
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd { return nil }

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := msg.Width - 30; w > 20 {
			m.opt.Width = w
		}
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case copyDoneMsg:
		m.copying = false
		if msg.err != nil {
			return m, nil
		}
		m.copied = true
		m.copySeq++
		return m, resetCopied(m.opt.CopiedReset, m.copySeq)
	case copiedResetMsg:
		// A newer copy restarts the timer.
		if msg.seq == m.copySeq {
			m.copied = false
		}
	}
	return m, nil
}

func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		m.quitting = true
		m.logger.Printf("ui session %s closed", m.session)
		return m, tea.Quit
	case "up", "k":
		m.moveCursor(-1)
	case "down", "j":
		m.moveCursor(1)
	case "enter", " ":
		m.selectColumn(m.cursor)
	case "tab":
		m.opt.Kind = m.opt.Kind.Toggle()
	case "right", "l":
		if n := len(m.tab.ChartData); n > 0 {
			m.focus = min(m.focus+1, n-1)
		}
	case "left", "h":
		if m.focus > chart.NoFocus {
			m.focus--
		}
	case "esc":
		m.focus = chart.NoFocus
	case "e":
		m.opt.Emphasis = !m.opt.Emphasis
	case "+", "=":
		m.opt.CopyCount++
	case "-":
		if m.opt.CopyCount > 1 {
			m.opt.CopyCount--
		}
	case "c":
		m.opt.IncludeCaseNumber = !m.opt.IncludeCaseNumber
	case "y":
		return m, m.startCopy()
	}
	return m, nil
}

func (m *Model) moveCursor(delta int) {
	if m.tbl == nil || len(m.tbl.Header) == 0 {
		return
	}
	next := m.cursor + delta
	if next < 0 || next >= len(m.tbl.Header) {
		return
	}
	m.cursor = next
	m.selectColumn(next)
}

// selectColumn recomputes the tabulation. Input errors stay in the status line.
func (m *Model) selectColumn(i int) {
	m.selected = i
	m.focus = chart.NoFocus
	tab, err := analysis.TabulateTable(m.tbl, m.selectedName())
	if err != nil {
		m.notes.Error("Error", err.Error())
		m.tab = analysis.Tabulation{}
		return
	}
	m.tab = tab
}

func (m *Model) selectedName() string {
	if m.tbl == nil || m.selected < 0 || m.selected >= len(m.tbl.Header) {
		return ""
	}
	return m.tbl.Header[m.selected]
}

func (m *Model) startCopy() tea.Cmd {
	if m.copying {
		return nil
	}
	m.copying = true
	return copyCommand(m.exporter, m.tbl, export.Request{
		Column:            m.selectedName(),
		CopyCount:         m.opt.CopyCount,
		IncludeCaseNumber: m.opt.IncludeCaseNumber,
		CaseColumn:        m.opt.CaseColumn,
		Seed:              m.opt.Seed,
	})
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	title := lipgloss.NewStyle().Foreground(m.primaryColor).Bold(true).Render("csvtally")
	if m.tbl != nil {
		title += lipgloss.NewStyle().Foreground(m.mutedColor).Render(fmt.Sprintf("  %s · %d rows", m.tbl.Name, len(m.tbl.Rows)))
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderColumns(), "  ", m.renderChart())
	return strings.Join([]string{title, "", body, "", m.renderCopyBar(), m.renderStatus(), m.renderHelp()}, "\n")
}

func (m *Model) renderColumns() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Columns"))
	b.WriteString("\n")
	if m.tbl == nil || len(m.tbl.Header) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.mutedColor).Render("(no columns)"))
		return b.String()
	}
	for i := range m.tbl.Header {
		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
		}
		line := prefix + m.tbl.ColumnLabel(i)
		if i == m.selected {
			line = lipgloss.NewStyle().Background(m.selectedColor).Bold(true).Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m *Model) renderChart() string {
	if m.selected < 0 {
		return lipgloss.NewStyle().Foreground(m.mutedColor).Render("Select a column to see its chart.")
	}
	entries := chart.Adapt(m.tab.ChartData, m.opt.Palette, chart.Options{Emphasis: m.opt.Emphasis, Active: m.focus})
	head := fmt.Sprintf("%s · %s chart", table.DisplayName(m.selectedName()), m.opt.Kind)
	if m.opt.Emphasis {
		head += " · emphasis"
	}
	parts := []string{
		lipgloss.NewStyle().Bold(true).Render(head),
		chart.Render(m.opt.Kind, entries, m.opt.Width),
	}
	if len(m.tab.AllCategories) > 0 {
		parts = append(parts, "", lipgloss.NewStyle().Bold(true).Render("Category Breakdown"),
			chart.RenderBreakdown(chart.Breakdown(m.tab.AllCategories, m.opt.Palette)))
	}
	return strings.Join(parts, "\n")
}

func (m *Model) renderCopyBar() string {
	cases := "off"
	if m.opt.IncludeCaseNumber {
		cases = "on"
	}
	line := fmt.Sprintf("Copy count: %d · Case numbers: %s", m.opt.CopyCount, cases)
	switch {
	case m.copying:
		line += " · copying..."
	case m.copied:
		line += " · " + lipgloss.NewStyle().Foreground(m.successColor).Bold(true).Render("Copied!")
	}
	return line
}

func (m *Model) renderStatus() string {
	n, ok := m.notes.Last()
	if !ok {
		return ""
	}
	if n.Level == notify.LevelError {
		return lipgloss.NewStyle().Foreground(m.errorColor).Render("✗ " + n.Msg)
	}
	return lipgloss.NewStyle().Foreground(m.successColor).Render("✓ " + n.Msg)
}

func (m *Model) renderHelp() string {
	return lipgloss.NewStyle().Foreground(m.mutedColor).Render(
		"↑/↓ column · tab bar/pie · ←/→ focus · e emphasis · +/- count · c case numbers · y copy · q quit")
}

// Copied reports whether the copied indicator is on.
func (m *Model) Copied() bool { return m.copied }

// Tabulation returns the frequency table of the selected column.
func (m *Model) Tabulation() analysis.Tabulation { return m.tab }

// Notifications returns the messages shown in the status line so far.
func (m *Model) Notifications() []notify.Notification { return m.notes.All() }

// Run starts the interactive program.
func Run(tbl *table.Table, w clipboard.Writer, opt Options) error {
	p := tea.NewProgram(NewModel(tbl, w, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
