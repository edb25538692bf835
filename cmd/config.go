package cmd

import (
	"fmt"
	"strings"

	cfgpkg "github.com/KaramelBytes/csvtally/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set csvtally configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "No config loaded")
			return nil
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "copy_count: %d\n", cfg.CopyCount)
		fmt.Fprintf(out, "include_case_number: %t\n", cfg.IncludeCaseNumber)
		fmt.Fprintf(out, "case_number_column: %s\n", cfg.CaseNumberColumn)
		fmt.Fprintf(out, "seed: %d\n", cfg.Seed)
		fmt.Fprintf(out, "chart_type: %s\n", cfg.ChartType)
		fmt.Fprintf(out, "chart_width: %d\n", cfg.ChartWidth)
		fmt.Fprintf(out, "emphasis: %t\n", cfg.Emphasis)
		fmt.Fprintf(out, "palette: %s\n", strings.Join(cfg.Palette, ","))
		fmt.Fprintf(out, "clipboard: %s\n", cfg.Clipboard)
		if cfg.ClipboardFile != "" {
			fmt.Fprintf(out, "clipboard_file: %s\n", cfg.ClipboardFile)
		}
		fmt.Fprintf(out, "osc52_mode: %s\n", cfg.OSC52Mode)
		fmt.Fprintf(out, "max_rows: %d\n", cfg.MaxRows)
		if cfg.Delimiter != "" {
			fmt.Fprintf(out, "delimiter: %q\n", cfg.Delimiter)
		}
		if cfg.SheetName != "" {
			fmt.Fprintf(out, "sheet_name: %s\n", cfg.SheetName)
		}
		fmt.Fprintf(out, "sheet_index: %d\n", cfg.SheetIndex)
		fmt.Fprintf(out, "copied_reset_ms: %d\n", cfg.CopiedResetMs)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		if err := cfg.Set(key, val); err != nil {
			return err
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Saved config")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
}
