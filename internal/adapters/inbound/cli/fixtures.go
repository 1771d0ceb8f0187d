package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/fixtures"
	"github.com/sqlskim/baseline/internal/application"
	"github.com/sqlskim/baseline/internal/domain"
)

func newFixturesCmd() *cobra.Command {
	var (
		flags      corpusFlags
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "fixtures",
		Short: "List the fixtures a run would execute",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, cfg, err := flags.load()
			if err != nil {
				return err
			}

			list, err := application.ListFixtures(fixtures.New(), cfg, cfg.FixtureRoot(absPath))
			if err != nil {
				return err
			}

			if jsonOutput {
				if list == nil {
					list = []domain.Fixture{}
				}
				return renderJSON(cmd, list)
			}

			out := cmd.OutOrStdout()
			for _, f := range list {
				fmt.Fprintf(out, "%s\t%s\n", f.Name, f.Input)
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output fixtures as JSON")

	return cmd
}
