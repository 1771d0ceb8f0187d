package application

import (
	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/diff"
)

// DiffService compares two result logs on disk without running the engine.
type DiffService struct {
	loader domain.LogLoader
}

func NewDiffService(loader domain.LogLoader) *DiffService {
	return &DiffService{loader: loader}
}

// DiffFiles loads both logs and compares every result of actual against the
// baseline at expectedPath.
func (s *DiffService) DiffFiles(expectedPath, actualPath string) (domain.DiffOutcome, error) {
	expected, err := s.loader.Load(expectedPath)
	if err != nil {
		return domain.DiffOutcome{}, err
	}
	actual, err := s.loader.Load(actualPath)
	if err != nil {
		return domain.DiffOutcome{}, err
	}
	return diff.CompareLogs(*expected, *actual), nil
}

// ListFixtures returns every fixture the batch would run, without running it.
func ListFixtures(source domain.FixtureSource, cfg domain.Config, root string) ([]domain.Fixture, error) {
	inputs, err := source.Enumerate(root, cfg.Fixtures.Filter)
	if err != nil {
		return nil, err
	}
	var out []domain.Fixture
	for input := range inputs {
		out = append(out, domain.NewFixture(input, cfg.Fixtures.LogSuffix))
	}
	return out, nil
}
