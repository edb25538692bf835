package cmd

import (
	"fmt"

	"github.com/KaramelBytes/csvtally/internal/clipboard"
	"github.com/KaramelBytes/csvtally/internal/export"
	"github.com/spf13/cobra"
)

var (
	cpColumn        string
	cpCount         int
	cpCaseNumber    bool
	cpCaseColumn    string
	cpSeed          uint64
	cpClipboard     string
	cpClipboardFile string
	cpOSC52Mode     string
	cpInput         inputFlags
)

var copyCmd = &cobra.Command{
	Use:   "copy <file>",
	Short: "Copy a weighted sample of one column to the clipboard",
	Long: `Copy ranks the values of a column and places a sample on the clipboard: four lines for
the most frequent value, three for the second, two for the third, and one line each for a
random selection of the remaining values until --count is reached. With --case-number each
line also carries the row's case number, tab-separated, ready to paste into a spreadsheet.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := cpInput.load(cmd, args[0])
		if err != nil {
			return err
		}
		w, err := newClipboard(cmd)
		if err != nil {
			return err
		}
		req := copyRequest(cmd)
		exp := export.New(w, newNotifier(cmd), logger)
		s, err := exp.Copy(cmd.Context(), tbl, req)
		if err != nil {
			if export.IsValidation(err) {
				return fmt.Errorf("nothing copied: %w", err)
			}
			return err
		}
		logger.Printf("copied %d lines across %d categories", len(s.Lines), len(s.Categories))
		return nil
	},
}

// copyRequest merges configuration with copy flags.
func copyRequest(cmd *cobra.Command) export.Request {
	c := settings()
	req := export.Request{
		Column:            cpColumn,
		CopyCount:         c.CopyCount,
		IncludeCaseNumber: c.IncludeCaseNumber,
		CaseColumn:        c.CaseNumberColumn,
		Seed:              c.Seed,
	}
	fl := cmd.Flags()
	if fl.Changed("count") {
		req.CopyCount = cpCount
	}
	if fl.Changed("case-number") {
		req.IncludeCaseNumber = cpCaseNumber
	}
	if fl.Changed("case-column") {
		req.CaseColumn = cpCaseColumn
	}
	if fl.Changed("seed") {
		req.Seed = cpSeed
	}
	return req
}

func newClipboard(cmd *cobra.Command) (clipboard.Writer, error) {
	c := settings()
	opt := clipboard.Options{Mode: c.Clipboard, Path: c.ClipboardFile, Passthrough: c.OSC52Mode}
	fl := cmd.Flags()
	if fl.Changed("clipboard") {
		opt.Mode = cpClipboard
	}
	if fl.Changed("clipboard-file") {
		opt.Path = cpClipboardFile
		if !fl.Changed("clipboard") {
			opt.Mode = "file"
		}
	}
	if fl.Changed("osc52-mode") {
		opt.Passthrough = cpOSC52Mode
	}
	if opt.Mode == "stdout" {
		opt.Out = cmd.OutOrStdout()
	}
	return clipboard.New(opt)
}

func init() {
	rootCmd.AddCommand(copyCmd)
	copyCmd.Flags().StringVarP(&cpColumn, "column", "c", "", "column (header name) to sample")
	copyCmd.Flags().IntVarP(&cpCount, "count", "n", 16, "number of lines to copy (overrides config)")
	copyCmd.Flags().BoolVar(&cpCaseNumber, "case-number", false, "append the case number to each line")
	copyCmd.Flags().StringVar(&cpCaseColumn, "case-column", export.DefaultCaseColumn, "header holding case numbers")
	copyCmd.Flags().Uint64Var(&cpSeed, "seed", 0, "random seed for filler selection (0 = random)")
	copyCmd.Flags().StringVar(&cpClipboard, "clipboard", "osc52", "clipboard sink: osc52|stdout|file")
	copyCmd.Flags().StringVar(&cpClipboardFile, "clipboard-file", "", "write the sample to this file instead of the clipboard")
	copyCmd.Flags().StringVar(&cpOSC52Mode, "osc52-mode", "default", "OSC 52 passthrough: default|tmux|screen")
	cpInput.register(copyCmd)
}
