package cmd

import (
	"fmt"

	"github.com/KaramelBytes/csvtally/internal/analysis"
	"github.com/spf13/cobra"
)

var colInput inputFlags

var columnsCmd = &cobra.Command{
	Use:   "columns <file>",
	Short: "List the columns of a file with their value counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tbl, err := colInput.load(cmd, args[0])
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if len(tbl.Header) == 0 {
			fmt.Fprintln(out, "No columns found")
			return nil
		}
		fmt.Fprintf(out, "%s (%d rows)\n", tbl.Name, len(tbl.Rows))
		for i := range tbl.Header {
			tab := analysis.Tabulate(tbl.Rows, i)
			fmt.Fprintf(out, "%3d. %s  (%d values, %d distinct)\n", i+1, tbl.ColumnLabel(i), tab.Total, len(tab.AllCategories))
		}
		if tbl.Truncated() {
			fmt.Fprintf(out, "⚠ processed only %d/%d rows due to MaxRows\n", len(tbl.Rows), tbl.TotalRows)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(columnsCmd)
	colInput.register(columnsCmd)
}
