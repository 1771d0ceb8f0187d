package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/sqlskim/baseline/internal/adapters/outbound/config"
	"github.com/sqlskim/baseline/internal/domain"
)

const configHeader = "# sqlskim-baseline configuration\n" +
	"# engine.args placeholders: {target} {output} {config}\n\n"

func newInitCmd() *cobra.Command {
	var (
		command string
		root    string
		backend string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .baseline.yaml configuration file",
		Long:  "Create a .baseline.yaml with the default fixture layout and engine invocation.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)

			if !force {
				if _, err := os.Stat(dest); err == nil {
					return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
				}
			}

			cfg := domain.DefaultConfig()
			if command != "" {
				cfg.Engine.Command = command
			}
			if root != "" {
				cfg.Fixtures.Root = root
			}
			if backend != "" {
				cfg.History.Backend = backend
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			content, err := generateConfig(cfg)
			if err != nil {
				return err
			}

			if err := os.WriteFile(dest, content, 0644); err != nil {
				return fmt.Errorf("writing config: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", config.FileName)
			return nil
		},
	}

	cmd.Flags().StringVar(&command, "engine", "", "Analyzer executable")
	cmd.Flags().StringVar(&root, "dir", "", "Fixture directory")
	cmd.Flags().StringVar(&backend, "history", "", "History backend (json, sqlite, none)")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing .baseline.yaml")

	return cmd
}

func generateConfig(cfg domain.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("encoding config: %w", err)
	}
	return append([]byte(configHeader), data...), nil
}
