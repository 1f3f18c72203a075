package cmd

import (
	"fmt"
	"io"

	"join-checker/internal/schema"

	"github.com/spf13/cobra"
)

var columnsCmd = &cobra.Command{
	Use:   "columns <table>",
	Short: "List a table's columns with their join type class",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cols, err := Catalog.TableColumns(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		printColumns(cmd.OutOrStdout(), args[0], cols)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(columnsCmd)
}

func printColumns(out io.Writer, table string, cols []*schema.Column) {
	fmt.Fprintf(out, "%s (%d columns)\n", table, len(cols))
	for _, c := range cols {
		fmt.Fprintf(out, "[%02d] %-24s %-28s %s\n", c.Position, c.Name, c.DataType, c.Class)
	}
}
