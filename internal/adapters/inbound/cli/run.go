package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/gitinfo"
	"github.com/sqlskim/baseline/internal/adapters/outbound/tui"
	"github.com/sqlskim/baseline/internal/domain"
)

// ErrBaselineMismatch is returned by the run command when at least one
// fixture failed, so the process exits non-zero.
var ErrBaselineMismatch = errors.New("baseline mismatch")

func newRunCmd() *cobra.Command {
	var (
		flags      corpusFlags
		jsonOutput bool
		noHistory  bool
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run every fixture and verify it against its baseline",
		Long: "Run the analyzer once per fixture, compare each result log with its Expected " +
			"baseline, and print a report with diff commands for every failure.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			absPath, cfg, err := flags.load()
			if err != nil {
				return err
			}

			svc := newBaselineService(absPath, cfg)
			batch, err := svc.Run(cmd.Context())
			if err != nil {
				return err
			}

			if !noHistory {
				recordRun(absPath, cfg, batch)
			}

			if jsonOutput {
				if err := renderJSON(cmd, batch); err != nil {
					return err
				}
			} else {
				out := cmd.OutOrStdout()
				fmt.Fprint(out, tui.RenderBatch(batch))
				if batch.Text != "" {
					fmt.Fprintln(out)
					fmt.Fprint(out, batch.Text)
				}
			}

			if !batch.Passed() {
				return fmt.Errorf("%w: %d of %d fixtures failed",
					ErrBaselineMismatch, len(batch.Failures), len(batch.Fixtures))
			}
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the batch report as JSON")
	cmd.Flags().BoolVar(&noHistory, "no-history", false, "Do not record this run in the history")

	return cmd
}

// recordRun saves the batch summary. Failures are logged, never returned.
func recordRun(projectPath string, cfg domain.Config, batch *domain.BatchReport) {
	hist := newHistory(cfg)
	if hist == nil {
		return
	}

	var hash string
	if h, err := gitinfo.New().CommitHash(projectPath); err == nil {
		hash = h
	}

	if err := hist.Save(projectPath, domain.EntryFor(batch, hash)); err != nil {
		slog.Warn("saving run history", "error", err)
	}
}

func renderJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
