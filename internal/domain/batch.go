package domain

import (
	"errors"
	"time"
)

// FailureKind classifies why a fixture failed.
type FailureKind string

const (
	FailureEngineProcess   FailureKind = "engine_process_failure"
	FailureEngineTimeout   FailureKind = "engine_timeout"
	FailureLogParse        FailureKind = "log_parse_error"
	FailureContentMismatch FailureKind = "content_mismatch"
	FailureActualReset     FailureKind = "actual_reset_failed"
)

// Label is the human-readable name of the kind.
func (k FailureKind) Label() string {
	switch k {
	case FailureEngineProcess:
		return "engine process failure"
	case FailureEngineTimeout:
		return "engine timeout"
	case FailureLogParse:
		return "log parse error"
	case FailureContentMismatch:
		return "content mismatch"
	case FailureActualReset:
		return "actual directory reset failed"
	default:
		return string(k)
	}
}

// IsProcessFailure reports whether the fixture failed before its logs could
// be compared.
func (k FailureKind) IsProcessFailure() bool {
	return k != FailureContentMismatch
}

// FixtureFailure records one failed fixture.
type FixtureFailure struct {
	Fixture Fixture     `json:"fixture"`
	Kind    FailureKind `json:"kind"`
	Status  int         `json:"status,omitempty"`
	Detail  string      `json:"detail,omitempty"`
	Outcome DiffOutcome `json:"outcome,omitempty"`
}

// FailureFromError classifies a per-fixture error.
func FailureFromError(f Fixture, err error) FixtureFailure {
	failure := FixtureFailure{Fixture: f, Detail: err.Error()}

	var (
		mismatch *ContentMismatchError
		process  *EngineProcessFailure
		timeout  *EngineTimeoutError
		reset    *ActualResetError
	)
	switch {
	case errors.As(err, &mismatch):
		failure.Kind = FailureContentMismatch
		failure.Outcome = mismatch.Outcome
		failure.Detail = ""
	case errors.As(err, &timeout):
		failure.Kind = FailureEngineTimeout
	case errors.As(err, &process):
		failure.Kind = FailureEngineProcess
		failure.Status = process.Status
	case errors.As(err, &reset):
		failure.Kind = FailureActualReset
	default:
		failure.Kind = FailureLogParse
	}
	return failure
}

// BatchState is a step of the batch state machine:
// Start -> Enumerating -> RunningFixture* -> Reporting -> Passed | Failed.
type BatchState int

const (
	StateStart BatchState = iota
	StateEnumerating
	StateRunningFixture
	StateReporting
	StatePassed
	StateFailed
)

func (s BatchState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateEnumerating:
		return "enumerating"
	case StateRunningFixture:
		return "running_fixture"
	case StateReporting:
		return "reporting"
	case StatePassed:
		return "passed"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsTerminal reports whether the batch has reached a verdict.
func (s BatchState) IsTerminal() bool {
	return s == StatePassed || s == StateFailed
}

// Verdict is the single pass/fail outcome of a batch.
type Verdict string

const (
	VerdictPassed Verdict = "passed"
	VerdictFailed Verdict = "failed"
)

// BatchReport aggregates every fixture failure of one batch. Text is the
// rendered report; it is empty exactly when the batch passed.
type BatchReport struct {
	ID        string           `json:"id"`
	Root      string           `json:"root"`
	StartedAt time.Time        `json:"started_at"`
	Fixtures  []Fixture        `json:"fixtures"`
	Failures  []FixtureFailure `json:"failures,omitempty"`
	Text      string           `json:"text,omitempty"`
	Verdict   Verdict          `json:"verdict"`
}

// Passed reports whether every fixture matched its baseline.
func (r *BatchReport) Passed() bool {
	return r.Verdict == VerdictPassed
}

// RunEntry is one batch run recorded in the run history.
type RunEntry struct {
	ID         string  `json:"id"`
	Timestamp  string  `json:"timestamp"`
	CommitHash string  `json:"commit_hash,omitempty"`
	Root       string  `json:"root"`
	Fixtures   int     `json:"fixtures"`
	Failed     int     `json:"failed"`
	Verdict    Verdict `json:"verdict"`
}

// EntryFor summarizes a finished batch for the run history.
func EntryFor(r *BatchReport, commitHash string) RunEntry {
	return RunEntry{
		ID:         r.ID,
		Timestamp:  r.StartedAt.UTC().Format(time.RFC3339),
		CommitHash: commitHash,
		Root:       r.Root,
		Fixtures:   len(r.Fixtures),
		Failed:     len(r.Failures),
		Verdict:    r.Verdict,
	}
}
