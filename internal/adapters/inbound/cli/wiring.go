package cli

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/sqlskim/baseline/internal/adapters/outbound/config"
	"github.com/sqlskim/baseline/internal/adapters/outbound/difftool"
	"github.com/sqlskim/baseline/internal/adapters/outbound/engine"
	"github.com/sqlskim/baseline/internal/adapters/outbound/fixtures"
	"github.com/sqlskim/baseline/internal/adapters/outbound/history"
	"github.com/sqlskim/baseline/internal/adapters/outbound/sarif"
	"github.com/sqlskim/baseline/internal/application"
	"github.com/sqlskim/baseline/internal/domain"
)

// corpusFlags are the flags shared by commands that operate on a corpus.
type corpusFlags struct {
	path    string
	dir     string
	filter  string
	timeout time.Duration
}

func (f *corpusFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.path, "path", ".", "Project path holding .baseline.yaml")
	cmd.Flags().StringVar(&f.dir, "dir", "", "Fixture directory (overrides fixtures.root)")
	cmd.Flags().StringVar(&f.filter, "filter", "", "Fixture name glob (overrides fixtures.filter)")
	cmd.Flags().DurationVar(&f.timeout, "timeout", 0, "Engine timeout per fixture (overrides engine.timeout)")
}

// load resolves the project path and returns the effective config.
func (f *corpusFlags) load() (string, domain.Config, error) {
	absPath, err := filepath.Abs(f.path)
	if err != nil {
		return "", domain.Config{}, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.New().Load(absPath)
	if err != nil {
		return "", domain.Config{}, fmt.Errorf("loading config: %w", err)
	}

	if f.dir != "" {
		cfg.Fixtures.Root = f.dir
	}
	if f.filter != "" {
		cfg.Fixtures.Filter = f.filter
	}
	if f.timeout > 0 {
		cfg.Engine.Timeout = f.timeout
	}
	if err := cfg.Validate(); err != nil {
		return "", domain.Config{}, fmt.Errorf("invalid flags: %w", err)
	}
	return absPath, cfg, nil
}

func newBaselineService(projectPath string, cfg domain.Config) *application.BaselineService {
	logger := slog.Default()
	return application.NewBaselineService(
		cfg,
		cfg.FixtureRoot(projectPath),
		fixtures.New(),
		engine.New(cfg.Engine, logger),
		sarif.New(),
		difftool.New(cfg.Report.DiffTools...),
		logger,
	)
}

// newHistory returns the configured history backend, or nil when disabled.
func newHistory(cfg domain.Config) domain.RunHistory {
	switch cfg.History.Backend {
	case domain.HistoryNone:
		return nil
	case domain.HistorySQLite:
		return history.NewSQLite(cfg.History.Path)
	default:
		return history.New(cfg.History.Path)
	}
}
