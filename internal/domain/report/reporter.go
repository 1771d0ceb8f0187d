// Package report accumulates per-fixture failures into the text report a
// failed batch surfaces. The report is diagnostic only; no decision is made
// from its content other than whether it is empty.
package report

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sqlskim/baseline/internal/domain"
)

// Reporter collects failures across a whole batch.
type Reporter struct {
	commander      domain.DiffCommander
	rebaselineHint string
	failures       []domain.FixtureFailure
}

// New creates a Reporter. An empty hint selects domain.DefaultRebaselineHint.
func New(commander domain.DiffCommander, rebaselineHint string) *Reporter {
	if rebaselineHint == "" {
		rebaselineHint = domain.DefaultRebaselineHint
	}
	return &Reporter{
		commander:      commander,
		rebaselineHint: rebaselineHint,
	}
}

// Add records one failed fixture.
func (r *Reporter) Add(f domain.FixtureFailure) {
	r.failures = append(r.failures, f)
}

// Len returns the number of recorded failures.
func (r *Reporter) Len() int { return len(r.failures) }

// Failures returns a copy of the recorded failures in insertion order.
func (r *Reporter) Failures() []domain.FixtureFailure {
	return slices.Clone(r.failures)
}

// Render produces the final report: one block per failed fixture, with a
// diff command for its expected/actual pair on a content mismatch, then the rebaseline
// instructions and a diff command covering the whole corpus under root.
// It returns "" when nothing failed.
func (r *Reporter) Render(root string) string {
	if len(r.failures) == 0 {
		return ""
	}

	var b strings.Builder
	for _, f := range r.failures {
		writeFailure(&b, f)
		// Only a mismatch leaves both logs on disk to compare.
		if f.Kind == domain.FailureContentMismatch {
			b.WriteString("Check differences with:\n")
			fmt.Fprintf(&b, "  %s\n", r.diffCommand(f.Fixture.Expected, f.Fixture.Actual))
		}
		b.WriteString("\n")
	}

	b.WriteString(r.rebaselineHint)
	b.WriteString("\n\n")
	b.WriteString("Run the following to compare all test baselines vs. actual results:\n")
	fmt.Fprintf(&b, "  %s\n", r.diffCommand(
		filepath.Join(root, domain.ExpectedDirName),
		filepath.Join(root, domain.ActualDirName),
	))
	return b.String()
}

func writeFailure(b *strings.Builder, f domain.FixtureFailure) {
	fmt.Fprintf(b, "FAIL %s: %s", absPath(f.Fixture.Input), f.Kind.Label())
	if f.Kind == domain.FailureEngineProcess {
		fmt.Fprintf(b, " (status %d)", f.Status)
	}
	b.WriteString("\n")

	if f.Kind == domain.FailureContentMismatch {
		for _, reason := range f.Outcome.Reasons() {
			fmt.Fprintf(b, "  %s\n", reason)
		}
		return
	}
	if f.Detail != "" {
		fmt.Fprintf(b, "  %s\n", f.Detail)
	}
}

func (r *Reporter) diffCommand(expected, actual string) string {
	return r.commander.Command(absPath(expected), absPath(actual))
}

func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
