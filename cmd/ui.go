package cmd

import (
	"time"

	"github.com/KaramelBytes/csvtally/internal/chart"
	"github.com/KaramelBytes/csvtally/internal/ui"
	"github.com/spf13/cobra"
)

var (
	uiColumn string
	uiChart  string
	uiInput  inputFlags
)

var uiCmd = &cobra.Command{
	Use:   "ui <file>",
	Short: "Explore a file interactively in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := uiInput.load(cmd, args[0])
		if err != nil {
			return err
		}
		c := settings()
		kindName := c.ChartType
		if cmd.Flags().Changed("chart") {
			kindName = uiChart
		}
		kind, err := chart.ParseKind(kindName)
		if err != nil {
			return err
		}
		if uiColumn != "" {
			if err := requireColumn(tbl, uiColumn); err != nil {
				return err
			}
		}
		w, err := newClipboard(cmd)
		if err != nil {
			return err
		}
		return ui.Run(tbl, w, ui.Options{
			Column:            uiColumn,
			Kind:              kind,
			Palette:           chart.Palette(c.Palette),
			Emphasis:          c.Emphasis,
			Width:             c.ChartWidth,
			CopyCount:         c.CopyCount,
			IncludeCaseNumber: c.IncludeCaseNumber,
			CaseColumn:        c.CaseNumberColumn,
			Seed:              c.Seed,
			CopiedReset:       time.Duration(c.CopiedResetMs) * time.Millisecond,
			Logger:            logger,
		})
	},
}

func init() {
	rootCmd.AddCommand(uiCmd)
	uiCmd.Flags().StringVarP(&uiColumn, "column", "c", "", "column to select on start")
	uiCmd.Flags().StringVar(&uiChart, "chart", "bar", "initial chart type: bar|pie")
	uiCmd.Flags().StringVar(&cpClipboard, "clipboard", "osc52", "clipboard sink: osc52|stdout|file")
	uiCmd.Flags().StringVar(&cpClipboardFile, "clipboard-file", "", "write copies to this file instead of the clipboard")
	uiCmd.Flags().StringVar(&cpOSC52Mode, "osc52-mode", "default", "OSC 52 passthrough: default|tmux|screen")
	uiInput.register(uiCmd)
}
