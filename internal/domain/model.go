package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Level is the severity a result was reported with.
type Level string

const (
	LevelError   Level = "error"
	LevelWarning Level = "warning"
	LevelNote    Level = "note"
	LevelNone    Level = "none"
)

// DefaultLevel is the level assumed for results that do not carry one.
const DefaultLevel = LevelWarning

// ValidLevels enumerates all recognized result levels.
var ValidLevels = []Level{LevelError, LevelWarning, LevelNote, LevelNone}

// IsValid reports whether the level is one of ValidLevels.
func (l Level) IsValid() bool {
	for _, v := range ValidLevels {
		if l == v {
			return true
		}
	}
	return false
}

// Location identifies where in a target a result was reported.
// Line and Column are 1-based; zero means not given.
type Location struct {
	URI    string `json:"uri"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (l Location) String() string {
	switch {
	case l.Line > 0 && l.Column > 0:
		return fmt.Sprintf("%s:%d:%d", l.URI, l.Line, l.Column)
	case l.Line > 0:
		return fmt.Sprintf("%s:%d", l.URI, l.Line)
	default:
		return l.URI
	}
}

// Result is one finding emitted by the analysis engine. It is a comparable
// value: two results are the same finding only when every field is equal.
type Result struct {
	RuleID   string   `json:"rule_id"`
	Level    Level    `json:"level"`
	Location Location `json:"location"`
	Message  string   `json:"message"`
}

func (r Result) String() string {
	return fmt.Sprintf("%s %s %s: %s", r.RuleID, r.Level, r.Location, r.Message)
}

// Run is one analysis run inside a result log.
type Run struct {
	Tool    string   `json:"tool,omitempty"`
	Results []Result `json:"results"`
}

// ResultLog is the in-memory form of a structured result log.
type ResultLog struct {
	Version string `json:"version,omitempty"`
	Runs    []Run  `json:"runs"`
}

// Results returns the results of every run, in run order. The returned slice
// is a copy; the log itself is never modified after loading.
func (l ResultLog) Results() []Result {
	n := 0
	for _, r := range l.Runs {
		n += len(r.Results)
	}
	out := make([]Result, 0, n)
	for _, r := range l.Runs {
		out = append(out, r.Results...)
	}
	return out
}

// PrimaryResults returns a copy of the first run's results, or none when the
// log has no runs. Engine output is compared on its first run only.
func (l ResultLog) PrimaryResults() []Result {
	if len(l.Runs) == 0 {
		return []Result{}
	}
	return slices.Clone(l.Runs[0].Results)
}

// DiffOutcome is the verdict of comparing an expected log against actual
// results. The zero value is a match.
type DiffOutcome struct {
	Missing    []Result `json:"missing,omitempty"`
	Unexpected []Result `json:"unexpected,omitempty"`
}

// Match reports whether expected and actual results were equivalent.
func (o DiffOutcome) Match() bool {
	return len(o.Missing) == 0 && len(o.Unexpected) == 0
}

// Reasons lists one line per discrepancy, missing results first.
func (o DiffOutcome) Reasons() []string {
	reasons := make([]string, 0, len(o.Missing)+len(o.Unexpected))
	for _, r := range o.Missing {
		reasons = append(reasons, "missing: "+r.String())
	}
	for _, r := range o.Unexpected {
		reasons = append(reasons, "unexpected: "+r.String())
	}
	return reasons
}

func (o DiffOutcome) String() string {
	if o.Match() {
		return "match"
	}
	return strings.Join(o.Reasons(), "\n")
}
