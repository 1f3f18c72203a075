package cmd

import (
	"fmt"
	"io"

	"join-checker/internal/joincheck"

	"github.com/spf13/cobra"
)

var (
	targetTable  string
	targetColumn string
	dtTable      string
	dtColumn     string
	printJoin    bool
	withCasting  bool
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Check one layer column against one DataTable column",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := joincheck.New(Catalog, targetTable, targetColumn, dtTable, dtColumn, joincheck.WithLogger(Logger))
		return runCheck(cmd, checker, printJoin, withCasting)
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVar(&targetTable, "target-table", "", "layer table")
	checkCmd.Flags().StringVar(&targetColumn, "target-column", "", "layer join column")
	checkCmd.Flags().StringVar(&dtTable, "dt-table", "", "DataTable table")
	checkCmd.Flags().StringVar(&dtColumn, "dt-column", "", "DataTable join column")
	checkCmd.Flags().BoolVar(&printJoin, "join", false, "print the join predicate instead of the verdict")
	checkCmd.Flags().BoolVar(&withCasting, "with-casting", true, "request casting a numeric DataTable column (experimental, currently inert)")

	for _, name := range []string{"target-table", "target-column", "dt-table", "dt-column"} {
		_ = checkCmd.MarkFlagRequired(name)
	}
}

func runCheck(cmd *cobra.Command, checker *joincheck.Checker, join, casting bool) error {
	out := cmd.OutOrStdout()

	if join {
		stmt, err := checker.ColumnJoinStatement(cmd.Context(), casting)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, stmt)
		return nil
	}

	v := checker.AreJoinColumnsCompatible(cmd.Context())
	printVerdict(out, checker, v)
	return v.Err()
}

func printVerdict(out io.Writer, checker *joincheck.Checker, v joincheck.Verdict) {
	target, candidate := checker.Target(), checker.Candidate()
	switch v.Outcome {
	case joincheck.Compatible:
		fmt.Fprintf(out, "✓ %s (%s) can be joined to %s (%s)\n", candidate, v.CandidateType, target, v.TargetType)
	case joincheck.Incompatible:
		fmt.Fprintf(out, "✗ %s (%s) cannot be joined to %s (%s)\n", candidate, v.CandidateType, target, v.TargetType)
	default:
		fmt.Fprintf(out, "! %s cannot be checked against %s\n", candidate, target)
	}
}
