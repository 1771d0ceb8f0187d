package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/sarif"
	"github.com/sqlskim/baseline/internal/adapters/outbound/tui"
	"github.com/sqlskim/baseline/internal/application"
)

func newDiffCmd() *cobra.Command {
	var (
		jsonOutput bool
		exitCode   bool
	)

	cmd := &cobra.Command{
		Use:   "diff <expected.log> <actual.log>",
		Short: "Compare two result logs",
		Long:  "Compare an actual result log against a baseline without running the analyzer.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := application.NewDiffService(sarif.New())

			outcome, err := svc.DiffFiles(args[0], args[1])
			if err != nil {
				return err
			}

			if jsonOutput {
				if err := renderJSON(cmd, outcome); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderDiff(outcome))
			}

			if exitCode && !outcome.Match() {
				return fmt.Errorf("%w: %d missing, %d unexpected",
					ErrBaselineMismatch, len(outcome.Missing), len(outcome.Unexpected))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the differences as JSON")
	cmd.Flags().BoolVar(&exitCode, "exit-code", false, "Exit 1 when the logs differ")

	return cmd
}
