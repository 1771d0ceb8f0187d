package domain

import (
	"context"
	"iter"
)

// DefaultConfiguration selects the engine's built-in rule configuration.
const DefaultConfiguration = "default"

// AnalyzeOptions configures one invocation of the analysis engine.
type AnalyzeOptions struct {
	TargetFileSpecifiers  []string `json:"target_file_specifiers"`
	OutputFilePath        string   `json:"output_file_path"`
	Verbose               bool     `json:"verbose"`
	Recurse               bool     `json:"recurse"`
	ConfigurationFilePath string   `json:"configuration_file_path"`
}

// AnalysisEngine runs the external analyzer. The returned status is 0 when
// the engine ran to completion. A non-nil error means the engine could not be
// run at all (not started, timed out).
type AnalysisEngine interface {
	Analyze(ctx context.Context, opts AnalyzeOptions) (int, error)
}

// FixtureSource discovers fixture input files under a root directory.
type FixtureSource interface {
	Enumerate(root, filter string) (iter.Seq[string], error)
}

// LogLoader reads a structured result log from disk.
type LogLoader interface {
	Load(path string) (*ResultLog, error)
}

// DiffCommander builds an advisory command line that opens two artifacts
// side by side.
type DiffCommander interface {
	Command(expected, actual string) string
}

// ConfigLoader loads harness configuration from a project directory.
type ConfigLoader interface {
	Load(projectPath string) (Config, error)
}

// RunHistory persists batch run summaries.
type RunHistory interface {
	Save(projectPath string, entry RunEntry) error
	Load(projectPath string) ([]RunEntry, error)
}

// GitInfo provides version-control metadata for a project.
type GitInfo interface {
	IsGitRepo(projectPath string) bool
	CommitHash(projectPath string) (string, error)
}
