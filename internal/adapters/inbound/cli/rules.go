package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/tui"
	"github.com/sqlskim/baseline/internal/domain/rules"
)

func newRulesCmd() *cobra.Command {
	var (
		jsonOutput   bool
		showReserved bool
	)

	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the analyzer rule catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := rules.Active()
			if showReserved {
				catalog = rules.All()
			}

			if jsonOutput {
				return renderJSON(cmd, catalog)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRules(catalog, showReserved))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output rules as JSON")
	cmd.Flags().BoolVar(&showReserved, "reserved", false, "Include reserved rule identifiers")

	return cmd
}
