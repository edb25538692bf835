package cmd

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/KaramelBytes/csvtally/internal/chart"
	"github.com/KaramelBytes/csvtally/internal/table"
	"github.com/KaramelBytes/csvtally/internal/utils"
	"github.com/KaramelBytes/csvtally/internal/watch"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	anaColumn   string
	anaChart    string
	anaFormat   string
	anaOutput   string
	anaEmphasis bool
	anaFocus    int
	anaWidth    int
	anaWatch    bool
	anaInput    inputFlags
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Tabulate one column and draw its chart",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		format := strings.ToLower(strings.TrimSpace(anaFormat))
		switch format {
		case "text", "markdown", "md", "json", "yaml":
		default:
			return fmt.Errorf("unsupported --format: %s (use text|markdown|json|yaml)", anaFormat)
		}

		run := func() error {
			out, err := analyzeFile(cmd, path, format)
			if err != nil {
				return err
			}
			return writeAnalysis(cmd.OutOrStdout(), out)
		}
		if err := run(); err != nil {
			return err
		}
		if !anaWatch {
			return nil
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		fmt.Fprintf(cmd.ErrOrStderr(), "Watching %s (Ctrl+C to stop)...\n", path)
		return watch.File(ctx, path, watch.Options{Logger: logger}, func() error {
			if err := run(); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "⚠ Warning: %v\n", err)
				return err
			}
			return nil
		})
	},
}

// analyzeFile loads path and renders the selected column in format.
func analyzeFile(cmd *cobra.Command, path, format string) (string, error) {
	tbl, err := anaInput.load(cmd, path)
	if err != nil {
		return "", err
	}
	if err := requireColumn(tbl, anaColumn); err != nil {
		return "", err
	}
	tab, err := analysis.TabulateTable(tbl, anaColumn)
	if err != nil {
		return "", err
	}
	rep := analysis.NewReport(tbl, tab)
	logger.Printf("report %s: %d distinct values in %q", rep.ID, rep.Distinct, anaColumn)

	switch format {
	case "markdown", "md":
		return rep.Markdown(), nil
	case "json":
		b, err := rep.JSON()
		return string(b) + "\n", err
	case "yaml":
		b, err := rep.YAML()
		return string(b), err
	}
	return renderText(cmd, tbl, tab)
}

func renderText(cmd *cobra.Command, tbl *table.Table, tab analysis.Tabulation) (string, error) {
	c := settings()
	kindName := c.ChartType
	if cmd.Flags().Changed("chart") {
		kindName = anaChart
	}
	kind, err := chart.ParseKind(kindName)
	if err != nil {
		return "", err
	}
	emphasis := c.Emphasis
	if cmd.Flags().Changed("emphasis") {
		emphasis = anaEmphasis
	}
	width := c.ChartWidth
	if cmd.Flags().Changed("width") {
		width = anaWidth
	}
	palette := chart.Palette(c.Palette)
	opt := chart.Options{Emphasis: emphasis, Active: chart.NoFocus}
	if anaFocus > 0 {
		if anaFocus > len(tab.ChartData) {
			return "", fmt.Errorf("--focus %d out of range (chart has %d entries)", anaFocus, len(tab.ChartData))
		}
		opt.Active = anaFocus - 1
	}

	bold := lipgloss.NewStyle().Bold(true)
	var b strings.Builder
	b.WriteString(bold.Render(fmt.Sprintf("%s · %s", tbl.Name, table.DisplayName(tab.Column))))
	b.WriteString(fmt.Sprintf("  (%d rows, %d counted)\n\n", tab.Rows, tab.Total))
	b.WriteString(chart.Render(kind, chart.Adapt(tab.ChartData, palette, opt), width))
	b.WriteString("\n")
	if len(tab.AllCategories) > 0 {
		b.WriteString("\n")
		b.WriteString(bold.Render("Category Breakdown"))
		b.WriteString("\n")
		b.WriteString(chart.RenderBreakdown(chart.Breakdown(tab.AllCategories, palette)))
		b.WriteString("\n")
	}
	if tbl.Truncated() {
		b.WriteString(fmt.Sprintf("\n⚠ processed only %d/%d rows due to MaxRows\n", len(tbl.Rows), tbl.TotalRows))
	}
	return b.String(), nil
}

// writeAnalysis prints out, or writes it to --output when set.
func writeAnalysis(w io.Writer, out string) error {
	if anaOutput == "" {
		fmt.Fprint(w, out)
		return nil
	}
	if err := utils.SafeWriteFile(anaOutput, []byte(out)); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	fmt.Fprintf(w, "✓ Wrote analysis to %s\n", anaOutput)
	return nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
	analyzeCmd.Flags().StringVarP(&anaColumn, "column", "c", "", "column (header name) to tabulate")
	analyzeCmd.Flags().StringVar(&anaChart, "chart", "bar", "chart type: bar|pie (overrides config)")
	analyzeCmd.Flags().StringVarP(&anaFormat, "format", "f", "text", "output format: text|markdown|json|yaml")
	analyzeCmd.Flags().StringVarP(&anaOutput, "output", "o", "", "optional path to write the analysis")
	analyzeCmd.Flags().BoolVar(&anaEmphasis, "emphasis", false, "enlarge the top categories and shrink Others")
	analyzeCmd.Flags().IntVar(&anaFocus, "focus", 0, "1-based chart entry to highlight (0 = none)")
	analyzeCmd.Flags().IntVar(&anaWidth, "width", 48, "chart width in columns (overrides config)")
	analyzeCmd.Flags().BoolVarP(&anaWatch, "watch", "w", false, "re-run whenever the file changes")
	anaInput.register(analyzeCmd)
}
