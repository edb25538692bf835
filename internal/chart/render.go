package chart

import (
	"fmt"
	"math"
	"strings"

	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/charmbracelet/lipgloss"
)

var (
	trackColor = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#3F3F46"}
	mutedColor = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	dimStyle   = lipgloss.NewStyle().Foreground(mutedColor)
)

const labelWidth = 18

// Render draws entries as the requested kind within roughly width columns.
func Render(kind Kind, entries []Entry, width int) string {
	if kind == Pie {
		return RenderPie(entries, width)
	}
	return RenderBar(entries, width)
}

// RenderBar draws one horizontal bar per entry, scaled to the largest Display value.
func RenderBar(entries []Entry, width int) string {
	if len(entries) == 0 {
		return dimStyle.Render("  No data available")
	}
	barW := max(width-labelWidth-24, 4)
	maxVal := 0.0
	for _, e := range entries {
		maxVal = math.Max(maxVal, e.Display)
	}
	if maxVal == 0 {
		maxVal = 1
	}
	var lines []string
	for _, e := range entries {
		color := lipgloss.Color(e.Color)
		barLen := int(e.Display / maxVal * float64(barW))
		if barLen < 1 && e.Display > 0 {
			barLen = 1
		}
		bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
		track := lipgloss.NewStyle().Foreground(trackColor).Render(strings.Repeat("░", barW-barLen))
		marker := "  "
		if e.Active {
			marker = "▶ "
		}
		label := lipgloss.NewStyle().Width(labelWidth).Render(truncate(table.DisplayName(e.Name), labelWidth-1))
		value := lipgloss.NewStyle().Foreground(color).Bold(true).Render(e.Percentage + "%")
		line := marker + label + " " + bar + track + "  " + value
		if !e.IsOther {
			line += "  " + dimStyle.Render(fmt.Sprintf("%d entries", int(math.Round(e.Value))))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderPie draws a proportional strip where each entry owns a share of the width, followed
// by a legend with each slice's share of the pie. The active slice also shows its true
// percentage and entry count.
func RenderPie(entries []Entry, width int) string {
	if len(entries) == 0 {
		return dimStyle.Render("  No data available")
	}
	stripW := max(width-4, 10)
	total := 0.0
	for _, e := range entries {
		total += e.Display
	}
	if total == 0 {
		total = 1
	}
	widths := sliceWidths(entries, total, stripW)

	var strip strings.Builder
	for i, e := range entries {
		glyph := "█"
		if e.Active {
			glyph = "▓"
		}
		strip.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render(strings.Repeat(glyph, widths[i])))
	}

	lines := []string{"  " + strip.String(), ""}
	for _, e := range entries {
		sq := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		share := e.Display / total * 100
		line := fmt.Sprintf("  %s %s: %.0f%%", sq, table.DisplayName(e.Name), share)
		if e.Active {
			detail := fmt.Sprintf("%s (%s%%)", table.DisplayName(e.Name), e.Percentage)
			if !e.IsOther {
				detail += fmt.Sprintf(" %d entries", int(math.Round(e.Value)))
			}
			line = fmt.Sprintf("▶ %s %s", sq, lipgloss.NewStyle().Bold(true).Render(detail))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// RenderBreakdown lists categories as "■ name: pct%" lines.
func RenderBreakdown(entries []Entry) string {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		sq := lipgloss.NewStyle().Foreground(lipgloss.Color(e.Color)).Render("■")
		lines = append(lines, fmt.Sprintf("%s %s: %s%%", sq, table.DisplayName(e.Name), e.Percentage))
	}
	return strings.Join(lines, "\n")
}

// sliceWidths splits w columns proportionally, giving every non-zero slice at least one.
func sliceWidths(entries []Entry, total float64, w int) []int {
	out := make([]int, len(entries))
	used := 0
	for i, e := range entries {
		n := int(math.Round(e.Display / total * float64(w)))
		if n == 0 && e.Display > 0 {
			n = 1
		}
		out[i] = n
		used += n
	}
	// Absorb rounding drift in the largest slice.
	if drift := w - used; drift != 0 {
		big := 0
		for i := range out {
			if out[i] > out[big] {
				big = i
			}
		}
		out[big] = max(out[big]+drift, 0)
	}
	return out
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}
