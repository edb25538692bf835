package cmd

import (
	"fmt"
	"io"
	"log"
	"os"

	cfgpkg "github.com/KaramelBytes/csvtally/internal/config"
	"github.com/KaramelBytes/csvtally/internal/notify"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	cfgFile string
	debug   bool
	noColor bool

	// Loaded configuration
	cfg *cfgpkg.Global

	logger = log.New(io.Discard, "", 0)
)

var rootCmd = &cobra.Command{
	Use:   "csvtally",
	Short: "Tabulate a CSV column, chart it in the terminal, and copy a sample",
	Long: `csvtally counts how often each value appears in one column of a CSV, TSV or XLSX file,
draws the top categories as a bar or pie chart, and copies a weighted sample of the rows
to the clipboard for pasting into a spreadsheet.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the entry point called by main.main()
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(loadConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.csvtally/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func loadConfig() {
	if debug {
		logger = log.New(os.Stderr, "[csvtally] ", log.LstdFlags)
	} else {
		logger = log.New(io.Discard, "", 0)
	}
	if noColor {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		return
	}
	cfg = c
	logger.Printf("config loaded (copy_count=%d chart_type=%s clipboard=%s)", cfg.CopyCount, cfg.ChartType, cfg.Clipboard)
}

// settings returns the loaded configuration, or defaults when loading failed.
func settings() *cfgpkg.Global {
	if cfg != nil {
		return cfg
	}
	return &cfgpkg.Global{
		CopyCount:        16,
		CaseNumberColumn: "Case Number",
		ChartType:        "bar",
		ChartWidth:       48,
		Palette:          append([]string(nil), cfgpkg.DefaultPalette...),
		Clipboard:        "osc52",
		OSC52Mode:        "default",
		MaxRows:          100000,
		SheetIndex:       1,
		CopiedResetMs:    2000,
	}
}

func newNotifier(cmd *cobra.Command) notify.Notifier {
	return &notify.Terminal{Out: cmd.ErrOrStderr(), NoColor: noColor}
}
