package chart

import (
	"strings"
	"testing"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func example() analysis.Tabulation {
	rows := [][]string{{"A"}, {"A"}, {"A"}, {"B"}, {"B"}, {"C"}, {"D"}}
	return analysis.Tabulate(rows, 0)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("PIE")
	require.NoError(t, err)
	assert.Equal(t, Pie, k)
	k, err = ParseKind("")
	require.NoError(t, err)
	assert.Equal(t, Bar, k)
	assert.Equal(t, Pie, Bar.Toggle())
	_, err = ParseKind("donut")
	assert.Error(t, err)
}

func TestAdaptColors(t *testing.T) {
	entries := Adapt(example().ChartData, DefaultPalette, DefaultOptions())
	require.Len(t, entries, 4)
	assert.Equal(t, []string{"#C1F11D", "#9BC915", "#75A110", "#E0E0E0"},
		[]string{entries[0].Color, entries[1].Color, entries[2].Color, entries[3].Color})
	for _, e := range entries {
		assert.Equal(t, e.Value, e.Display)
		assert.False(t, e.Active)
	}
}

func TestAdaptWrapsSmallPalette(t *testing.T) {
	items := []analysis.ChartItem{{Name: "a", Value: 3}, {Name: "b", Value: 2}, {Name: "c", Value: 1}}
	entries := Adapt(items, Palette{"#111111", "#222222", "#999999"}, DefaultOptions())
	assert.Equal(t, []int{0, 1, 0}, []int{entries[0].ColorIndex, entries[1].ColorIndex, entries[2].ColorIndex})
}

func TestAdaptEmphasis(t *testing.T) {
	tab := example()
	entries := Adapt(tab.ChartData, DefaultPalette, Options{Emphasis: true, Active: NoFocus})
	assert.InDelta(t, 6, entries[0].Display, 1e-9)
	assert.InDelta(t, 14.29*0.3, entries[3].Display, 1e-9)

	entries = Adapt(tab.ChartData, DefaultPalette, Options{Emphasis: true, Active: 3})
	assert.True(t, entries[3].Active)
	assert.InDelta(t, 14.29, entries[3].Display, 1e-9)

	entries = Adapt(tab.ChartData, DefaultPalette, Options{Emphasis: true, Active: 0})
	assert.InDelta(t, 42.86, entries[0].Display, 1e-9)

	// Presentation never mutates the tabulation.
	assert.Equal(t, example(), tab)
}

func TestBreakdownColors(t *testing.T) {
	entries := Breakdown(example().AllCategories, DefaultPalette)
	require.Len(t, entries, 4)
	assert.Equal(t, "#C1F11D", entries[0].Color)
	assert.Equal(t, "#75A110", entries[2].Color)
	assert.Equal(t, "#E0E0E0", entries[3].Color)
}

func TestRenderBar(t *testing.T) {
	out := RenderBar(Adapt(example().ChartData, DefaultPalette, DefaultOptions()), 60)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "42.86%")
	assert.Contains(t, lines[0], "3 entries")
	assert.Contains(t, lines[3], "Others")
	assert.NotContains(t, lines[3], "entries")
	assert.Greater(t, strings.Count(lines[0], "█"), strings.Count(lines[1], "█"))
	barWidth := lipgloss.Width(strings.Split(lines[0], "%")[0])
	assert.Equal(t, barWidth, lipgloss.Width(strings.Split(lines[1], "%")[0]), "bars share one column layout")

	assert.Contains(t, RenderBar(nil, 60), "No data available")
}

func TestRenderPie(t *testing.T) {
	opt := DefaultOptions()
	opt.Active = 1
	out := RenderPie(Adapt(example().ChartData, DefaultPalette, opt), 44)
	assert.Contains(t, out, "A: ")
	assert.Contains(t, out, "▶")
	assert.Contains(t, out, "B (28.57%) 2 entries")
	strip := strings.Split(out, "\n")[0]
	assert.Equal(t, 40, strings.Count(strip, "█")+strings.Count(strip, "▓"))
}

func TestRenderDispatchAndBreakdown(t *testing.T) {
	entries := Adapt(example().ChartData, DefaultPalette, DefaultOptions())
	assert.Equal(t, RenderPie(entries, 40), Render(Pie, entries, 40))
	assert.Equal(t, RenderBar(entries, 40), Render(Bar, entries, 40))

	b := RenderBreakdown(Breakdown(example().AllCategories, DefaultPalette))
	assert.Contains(t, b, "A: 42.86%")
	assert.Contains(t, b, "D: 14.29%")
}

func TestSliceWidthsSumToWidth(t *testing.T) {
	entries := []Entry{{Display: 1}, {Display: 1}, {Display: 1}}
	w := sliceWidths(entries, 3, 10)
	assert.Equal(t, 10, w[0]+w[1]+w[2])
}
