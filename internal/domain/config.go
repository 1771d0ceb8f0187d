package domain

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// History backends.
const (
	HistoryJSON   = "json"
	HistorySQLite = "sqlite"
	HistoryNone   = "none"
)

// ValidHistoryBackends enumerates all recognized history backends.
var ValidHistoryBackends = []string{HistoryJSON, HistorySQLite, HistoryNone}

// DefaultRebaselineHint tells the reader how to accept new output.
const DefaultRebaselineHint = "If the actual output is expected, generate new baselines by copying " +
	"each Actual/<name>.log over Expected/<name>.log (or run your project's update-baselines script)."

// Config holds harness configuration loaded from .baseline.yaml.
type Config struct {
	Fixtures FixturesConfig `yaml:"fixtures" json:"fixtures"`
	Engine   EngineConfig   `yaml:"engine"   json:"engine"`
	Report   ReportConfig   `yaml:"report"   json:"report"`
	History  HistoryConfig  `yaml:"history"  json:"history"`
}

// FixturesConfig locates the fixture corpus. Root is resolved against the
// project path when relative.
type FixturesConfig struct {
	Root      string `yaml:"root"       json:"root"`
	Filter    string `yaml:"filter"     json:"filter"`
	LogSuffix string `yaml:"log_suffix" json:"log_suffix"`
}

// EngineConfig describes how to launch the external analysis engine.
// Args may contain the placeholders {target}, {output} and {config}.
type EngineConfig struct {
	Command     string        `yaml:"command"      json:"command"`
	Args        []string      `yaml:"args"         json:"args,omitempty"`
	VerboseFlag string        `yaml:"verbose_flag" json:"verbose_flag,omitempty"`
	RecurseFlag string        `yaml:"recurse_flag" json:"recurse_flag,omitempty"`
	Timeout     time.Duration `yaml:"timeout"      json:"timeout,omitempty"`
}

// ReportConfig tunes the mismatch report.
type ReportConfig struct {
	RebaselineHint string   `yaml:"rebaseline_hint" json:"rebaseline_hint,omitempty"`
	DiffTools      []string `yaml:"diff_tools"      json:"diff_tools,omitempty"`
}

// HistoryConfig selects where batch runs are recorded.
type HistoryConfig struct {
	Backend string `yaml:"backend" json:"backend"`
	Path    string `yaml:"path"    json:"path,omitempty"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Fixtures: FixturesConfig{
			Root:      filepath.Join("testdata", "rules"),
			Filter:    "*.sql",
			LogSuffix: DefaultLogSuffix,
		},
		Engine: EngineConfig{
			Command:     "sqlskim",
			Args:        []string{"analyze", "{target}", "--output", "{output}", "--config", "{config}"},
			VerboseFlag: "--verbose",
			RecurseFlag: "--recurse",
		},
		Report: ReportConfig{
			RebaselineHint: DefaultRebaselineHint,
		},
		History: HistoryConfig{
			Backend: HistoryJSON,
		},
	}
}

// FixtureRoot resolves the fixtures root against projectPath.
func (c Config) FixtureRoot(projectPath string) string {
	if filepath.IsAbs(c.Fixtures.Root) {
		return filepath.Clean(c.Fixtures.Root)
	}
	return filepath.Join(projectPath, c.Fixtures.Root)
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c Config) Validate() error {
	// 1. fixtures
	if c.Fixtures.Root == "" {
		return fmt.Errorf("fixtures.root must not be empty")
	}
	if c.Fixtures.Filter == "" {
		return fmt.Errorf("fixtures.filter must not be empty")
	}
	if !doublestar.ValidatePattern(c.Fixtures.Filter) {
		return fmt.Errorf("fixtures.filter %q is not a valid glob", c.Fixtures.Filter)
	}
	if c.Fixtures.LogSuffix != "" && !strings.HasPrefix(c.Fixtures.LogSuffix, ".") {
		return fmt.Errorf("fixtures.log_suffix %q must start with '.'", c.Fixtures.LogSuffix)
	}

	// 2. engine
	if strings.TrimSpace(c.Engine.Command) == "" {
		return fmt.Errorf("engine.command must not be empty")
	}
	if c.Engine.Timeout < 0 {
		return fmt.Errorf("engine.timeout must not be negative (got %s)", c.Engine.Timeout)
	}

	// 3. history
	if c.History.Backend != "" {
		valid := false
		for _, b := range ValidHistoryBackends {
			if c.History.Backend == b {
				valid = true
				break
			}
		}
		if !valid {
			return fmt.Errorf("unknown history.backend %q (valid: json, sqlite, none)", c.History.Backend)
		}
	}

	return nil
}
