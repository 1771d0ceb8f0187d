package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/diff"
	"github.com/sqlskim/baseline/internal/domain/report"
)

// BaselineService orchestrates a baseline batch:
// enumerate fixtures -> per fixture {reset Actual -> analyze -> load logs -> diff} -> report.
// Fixtures run strictly one after another; each owns its Actual directory
// for the duration of its run.
type BaselineService struct {
	cfg       domain.Config
	root      string
	fixtures  domain.FixtureSource
	engine    domain.AnalysisEngine
	loader    domain.LogLoader
	commander domain.DiffCommander
	logger    *slog.Logger
	now       func() time.Time

	state domain.BatchState
}

// NewBaselineService creates the orchestrator for the corpus at root.
// A nil logger selects slog.Default().
func NewBaselineService(
	cfg domain.Config,
	root string,
	fixtures domain.FixtureSource,
	engine domain.AnalysisEngine,
	loader domain.LogLoader,
	commander domain.DiffCommander,
	logger *slog.Logger,
) *BaselineService {
	if logger == nil {
		logger = slog.Default()
	}
	return &BaselineService{
		cfg:       cfg,
		root:      root,
		fixtures:  fixtures,
		engine:    engine,
		loader:    loader,
		commander: commander,
		logger:    logger,
		now:       time.Now,
	}
}

// State returns the current step of the batch state machine.
func (s *BaselineService) State() domain.BatchState { return s.state }

func (s *BaselineService) transition(to domain.BatchState) {
	s.logger.Debug("batch state", "from", s.state, "to", to)
	s.state = to
}

// Run processes every fixture and returns the batch report. The only error
// returned is a missing fixture root or Expected directory, in which case no
// fixture was attempted. Every per-fixture failure is recorded in the report instead.
func (s *BaselineService) Run(ctx context.Context) (*domain.BatchReport, error) {
	s.state = domain.StateStart
	batch := &domain.BatchReport{
		ID:        uuid.NewString(),
		Root:      s.root,
		StartedAt: s.now(),
	}
	log := s.logger.With("batch", batch.ID)

	// 1. Enumerate fixtures
	s.transition(domain.StateEnumerating)
	inputs, err := s.fixtures.Enumerate(s.root, s.cfg.Fixtures.Filter)
	if err != nil {
		s.transition(domain.StateFailed)
		return nil, fmt.Errorf("enumerating fixtures: %w", err)
	}
	if err := requireDir(filepath.Join(s.root, domain.ExpectedDirName)); err != nil {
		s.transition(domain.StateFailed)
		return nil, fmt.Errorf("locating baselines: %w", err)
	}

	// 2. Run each fixture; failures never stop the batch
	rep := report.New(s.commander, s.cfg.Report.RebaselineHint)
	for input := range inputs {
		s.transition(domain.StateRunningFixture)
		f := domain.NewFixture(input, s.cfg.Fixtures.LogSuffix)
		batch.Fixtures = append(batch.Fixtures, f)

		if err := s.RunFixture(ctx, f); err != nil {
			failure := domain.FailureFromError(f, err)
			log.Info("fixture failed", "fixture", f.Name, "kind", failure.Kind)
			rep.Add(failure)
			continue
		}
		log.Debug("fixture matched", "fixture", f.Name)
	}

	// 3. Render the report and decide
	s.transition(domain.StateReporting)
	batch.Failures = rep.Failures()
	batch.Text = rep.Render(s.root)
	if batch.Text == "" {
		batch.Verdict = domain.VerdictPassed
		s.transition(domain.StatePassed)
	} else {
		batch.Verdict = domain.VerdictFailed
		s.transition(domain.StateFailed)
	}

	log.Info("batch finished",
		"fixtures", len(batch.Fixtures),
		"failed", len(batch.Failures),
		"verdict", batch.Verdict,
	)
	return batch, nil
}

// RunFixture runs one fixture and compares its output to the baseline. It
// returns nil on a match, otherwise one of the per-fixture domain errors.
func (s *BaselineService) RunFixture(ctx context.Context, f domain.Fixture) error {
	// 1. Reset the Actual directory before anything runs
	if err := resetDir(f.ActualDir()); err != nil {
		return &domain.ActualResetError{Dir: f.ActualDir(), Err: err}
	}

	// 2. Invoke the engine
	status, err := s.engine.Analyze(ctx, domain.AnalyzeOptions{
		TargetFileSpecifiers:  []string{f.Input},
		OutputFilePath:        f.Actual,
		Verbose:               true,
		Recurse:               false,
		ConfigurationFilePath: domain.DefaultConfiguration,
	})
	if err != nil {
		var timeout *domain.EngineTimeoutError
		if errors.As(err, &timeout) {
			return timeout
		}
		return &domain.EngineProcessFailure{Status: status, Err: err}
	}
	if status != 0 {
		return &domain.EngineProcessFailure{Status: status}
	}

	// 3. Load both logs through the same path
	if err := requireNonEmpty(f.Actual); err != nil {
		return &domain.LogParseError{Path: f.Actual, Err: err}
	}
	expected, err := s.loader.Load(f.Expected)
	if err != nil {
		return err
	}
	actual, err := s.loader.Load(f.Actual)
	if err != nil {
		return err
	}

	// 4. Compare
	outcome := diff.Compare(*expected, actual.PrimaryResults())
	if !outcome.Match() {
		return &domain.ContentMismatchError{Outcome: outcome}
	}
	return nil
}

// requireDir reports a FixtureDirectoryNotFoundError unless dir is a directory.
func requireDir(dir string) error {
	abs, err := filepath.Abs(dir)
	if err != nil {
		abs = dir
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &domain.FixtureDirectoryNotFoundError{Dir: abs}
		}
		return err
	}
	if !info.IsDir() {
		return &domain.FixtureDirectoryNotFoundError{Dir: abs}
	}
	return nil
}

// resetDir deletes and recreates dir, leaving it empty or failing.
func resetDir(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) != 0 {
		return fmt.Errorf("directory not empty after reset (%d entries)", len(entries))
	}
	return nil
}

func requireNonEmpty(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return errors.New("engine reported success but wrote no log")
		}
		return err
	}
	if info.Size() == 0 {
		return errors.New("engine reported success but wrote an empty log")
	}
	return nil
}
