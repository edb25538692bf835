// Package chart maps tabulated categories to colored, terminal-renderable chart entries.
package chart

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/KaramelBytes/csvtally/internal/analysis"
)

// Kind selects the chart style.
type Kind string

const (
	Bar Kind = "bar"
	Pie Kind = "pie"
)

// ParseKind accepts "bar" or "pie", case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bar", "":
		return Bar, nil
	case "pie":
		return Pie, nil
	default:
		return "", fmt.Errorf("unsupported chart type: %s (use bar|pie)", s)
	}
}

// Toggle returns the other kind.
func (k Kind) Toggle() Kind {
	if k == Pie {
		return Bar
	}
	return Pie
}

// Palette is an ordered list of hex colors. The last entry is reserved for Others.
type Palette []string

// DefaultPalette holds four category colors and a light gray for Others.
var DefaultPalette = Palette{"#C1F11D", "#9BC915", "#75A110", "#4E790B", "#E0E0E0"}

// OthersColor returns the color reserved for the Others bucket.
func (p Palette) OthersColor() string {
	if len(p) == 0 {
		return ""
	}
	return p[len(p)-1]
}

// categoryIndex wraps i over the category colors, leaving the Others slot out.
func (p Palette) categoryIndex(i int) int {
	n := len(p) - 1
	if n <= 0 {
		return 0
	}
	return i % n
}

// NoFocus marks that no entry is hovered or focused.
const NoFocus = -1

// Options controls presentation-only rescaling.
type Options struct {
	// Emphasis enlarges the top entries and shrinks Others.
	Emphasis bool
	// Active is the focused entry index, or NoFocus.
	Active int
}

// DefaultOptions returns options with nothing focused and no emphasis.
func DefaultOptions() Options { return Options{Active: NoFocus} }

// Entry is one drawable chart element.
type Entry struct {
	Name       string
	Value      float64
	Display    float64
	Percentage string
	Color      string
	ColorIndex int
	IsOther    bool
	Active     bool
}

const (
	emphasisScale = 2.0
	othersScale   = 0.3
)

// Adapt assigns colors and display magnitudes to chart items. Display equals Value unless
// Emphasis is set, in which case regular entries are doubled, Others is scaled by 0.3, and
// the active entry shows its true percentage.
func Adapt(items []analysis.ChartItem, p Palette, opt Options) []Entry {
	if len(p) == 0 {
		p = DefaultPalette
	}
	out := make([]Entry, 0, len(items))
	for i, it := range items {
		e := Entry{
			Name:       it.Name,
			Value:      it.Value,
			Display:    it.Value,
			Percentage: it.Percentage,
			IsOther:    it.IsOther,
			Active:     i == opt.Active,
		}
		if it.IsOther {
			e.ColorIndex = len(p) - 1
		} else {
			e.ColorIndex = p.categoryIndex(i)
		}
		e.Color = p[e.ColorIndex]
		if opt.Emphasis {
			switch {
			case e.Active:
				e.Display = percent(it.Percentage)
			case it.IsOther:
				e.Display = it.Value * othersScale
			default:
				e.Display = it.Value * emphasisScale
			}
		}
		out = append(out, e)
	}
	return out
}

// Breakdown colors every ranked category: the top three by rank, the rest with the Others color.
func Breakdown(cats []analysis.Category, p Palette) []Entry {
	if len(p) == 0 {
		p = DefaultPalette
	}
	out := make([]Entry, 0, len(cats))
	for i, c := range cats {
		idx := len(p) - 1
		if i < analysis.TopN && i < len(p)-1 {
			idx = i
		}
		out = append(out, Entry{
			Name:       c.Name,
			Value:      float64(c.Count),
			Display:    float64(c.Count),
			Percentage: c.Percentage,
			Color:      p[idx],
			ColorIndex: idx,
		})
	}
	return out
}

func percent(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
