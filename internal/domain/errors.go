package domain

import (
	"errors"
	"fmt"
	"time"
)

// ErrFixtureDirectoryNotFound is fatal to a batch: no fixture can be run.
var ErrFixtureDirectoryNotFound = errors.New("fixture directory not found")

// FixtureDirectoryNotFoundError names the missing fixtures root or its
// Expected directory.
type FixtureDirectoryNotFoundError struct {
	Dir string
}

func (e *FixtureDirectoryNotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrFixtureDirectoryNotFound, e.Dir)
}

func (e *FixtureDirectoryNotFoundError) Unwrap() error { return ErrFixtureDirectoryNotFound }

// EngineProcessFailure is a non-zero engine exit status. Status is -1 when
// the engine process could not be started at all.
type EngineProcessFailure struct {
	Status int
	Err    error
}

func (e *EngineProcessFailure) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("analysis engine failed with status %d: %v", e.Status, e.Err)
	}
	return fmt.Sprintf("analysis engine exited with status %d", e.Status)
}

func (e *EngineProcessFailure) Unwrap() error { return e.Err }

// EngineTimeoutError is returned when an engine invocation exceeds the
// configured timeout.
type EngineTimeoutError struct {
	Timeout time.Duration
}

func (e *EngineTimeoutError) Error() string {
	return fmt.Sprintf("analysis engine timed out after %s", e.Timeout)
}

// LogParseError is returned when a result log cannot be read or is not a
// structurally valid log.
type LogParseError struct {
	Path string
	Err  error
}

func (e *LogParseError) Error() string {
	return fmt.Sprintf("parsing result log %s: %v", e.Path, e.Err)
}

func (e *LogParseError) Unwrap() error { return e.Err }

// ActualResetError is returned when a fixture's Actual directory could not be
// emptied. The engine is never invoked in that case.
type ActualResetError struct {
	Dir string
	Err error
}

func (e *ActualResetError) Error() string {
	return fmt.Sprintf("resetting %s: %v", e.Dir, e.Err)
}

func (e *ActualResetError) Unwrap() error { return e.Err }

// ContentMismatchError carries the discrepancies found between a baseline and
// the freshly produced log.
type ContentMismatchError struct {
	Outcome DiffOutcome
}

func (e *ContentMismatchError) Error() string {
	return fmt.Sprintf("content mismatch: %d missing, %d unexpected",
		len(e.Outcome.Missing), len(e.Outcome.Unexpected))
}
