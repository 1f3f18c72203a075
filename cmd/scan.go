package cmd

import (
	"fmt"
	"io"
	"time"

	"join-checker/internal/joincheck"
	"join-checker/internal/schema"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
)

var noProgress bool

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Check every column of a DataTable against a layer column",
	RunE: func(cmd *cobra.Command, args []string) error {
		target := schema.ColumnRef{Table: targetTable, Column: targetColumn}
		start := time.Now()

		var bar *uiprogress.Bar
		onProgress := func(done, total int) {
			if noProgress {
				return
			}
			if bar == nil {
				uiprogress.Start()
				bar = uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
				bar.PrependFunc(func(b *uiprogress.Bar) string {
					return "Checking: "
				})
			}
			bar.Set(done)
		}

		results, err := joincheck.Scan(cmd.Context(), Catalog, target, dtTable, onProgress, joincheck.WithLogger(Logger))
		if bar != nil {
			uiprogress.Stop()
		}
		if err != nil {
			return err
		}

		printScanReport(cmd.OutOrStdout(), target, dtTable, results)
		Logger.Info("scan done", "table", dtTable, "columns", len(results), "elapsed", time.Since(start))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&targetTable, "target-table", "", "layer table")
	scanCmd.Flags().StringVar(&targetColumn, "target-column", "", "layer join column")
	scanCmd.Flags().StringVar(&dtTable, "dt-table", "", "DataTable table to scan")
	scanCmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")

	for _, name := range []string{"target-table", "target-column", "dt-table"} {
		_ = scanCmd.MarkFlagRequired(name)
	}
}

func printScanReport(out io.Writer, target schema.ColumnRef, dtTable string, results []joincheck.ScanResult) {
	fmt.Fprintf(out, "\n📊 Join candidates in %s for %s:\n", dtTable, target)
	joinable := 0
	for i, r := range results {
		icon := "✓"
		if !r.Verdict.OK() {
			icon = "✗"
		} else {
			joinable++
		}
		hint := ""
		if r.NameMatch {
			hint = " (name match)"
		}
		fmt.Fprintf(out, "[%s] [%02d/%02d] %-24s : %-20s %s%s\n",
			icon, i+1, len(results), r.Column.Name, r.Column.DataType, r.Verdict.Outcome, hint)
		if r.Verdict.Outcome == joincheck.LookupFailed {
			fmt.Fprintf(out, "    └ %s\n", r.Verdict.Message)
		}
	}
	fmt.Fprintln(out, "--------------------------------------------------")
	fmt.Fprintf(out, "Joinable columns: %d of %d\n", joinable, len(results))
}
