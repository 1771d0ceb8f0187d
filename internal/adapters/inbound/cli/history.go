package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/config"
	"github.com/sqlskim/baseline/internal/adapters/outbound/tui"
	"github.com/sqlskim/baseline/internal/domain"
)

func newHistoryCmd() *cobra.Command {
	var (
		path       string
		jsonOutput bool
		limit      int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recorded batch runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := config.New().Load(absPath)
			if err != nil {
				return fmt.Errorf("loading config: %w", err)
			}

			hist := newHistory(cfg)
			if hist == nil {
				return fmt.Errorf("run history is disabled (history.backend: none)")
			}

			entries, err := hist.Load(absPath)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}
			if limit > 0 && len(entries) > limit {
				entries = entries[len(entries)-limit:]
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				return renderJSON(cmd, entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().StringVar(&path, "path", ".", "Project path holding .baseline.yaml")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N runs")

	return cmd
}
