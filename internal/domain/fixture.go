package domain

import (
	"path/filepath"
)

const (
	ExpectedDirName = "Expected"
	ActualDirName   = "Actual"

	// DefaultLogSuffix is appended to the input file name to form baseline names.
	DefaultLogSuffix = ".log"
)

// Fixture is one input file plus its expected/actual log pair.
// Its identity is the input path.
type Fixture struct {
	Input    string `json:"input"`
	Name     string `json:"name"`
	Expected string `json:"expected"`
	Actual   string `json:"actual"`
}

// NewFixture derives the baseline paths for an input file:
// <dir>/Expected/<name><suffix> and <dir>/Actual/<name><suffix>.
func NewFixture(input, logSuffix string) Fixture {
	if logSuffix == "" {
		logSuffix = DefaultLogSuffix
	}
	dir := filepath.Dir(input)
	name := filepath.Base(input)
	return Fixture{
		Input:    input,
		Name:     name,
		Expected: filepath.Join(dir, ExpectedDirName, name+logSuffix),
		Actual:   filepath.Join(dir, ActualDirName, name+logSuffix),
	}
}

// ActualDir is the directory owned by this fixture's current run.
func (f Fixture) ActualDir() string {
	return filepath.Dir(f.Actual)
}

// ExpectedDir is the directory holding this fixture's baseline.
func (f Fixture) ExpectedDir() string {
	return filepath.Dir(f.Expected)
}
