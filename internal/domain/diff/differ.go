// Package diff compares an expected result log against freshly produced
// results. Results are compared as multisets: order is not significant,
// duplicates are.
package diff

import (
	"cmp"
	"slices"

	"github.com/sqlskim/baseline/internal/domain"
)

// Compare decides whether actual is equivalent to the results of every run in
// expected. Missing holds expected results absent from actual, Unexpected holds
// actual results absent from expected. Both are sorted so the outcome does not
// depend on the order the engine emitted results in.
func Compare(expected domain.ResultLog, actual []domain.Result) domain.DiffOutcome {
	want := expected.Results()

	remaining := make(map[domain.Result]int, len(want))
	for _, r := range want {
		remaining[r]++
	}

	var outcome domain.DiffOutcome
	for _, r := range actual {
		if remaining[r] > 0 {
			remaining[r]--
			continue
		}
		outcome.Unexpected = append(outcome.Unexpected, r)
	}

	// Whatever count is left over per result is exactly how many expected
	// copies went unmatched.
	for _, r := range want {
		if remaining[r] > 0 {
			remaining[r]--
			outcome.Missing = append(outcome.Missing, r)
		}
	}

	slices.SortFunc(outcome.Missing, compareResults)
	slices.SortFunc(outcome.Unexpected, compareResults)
	return outcome
}

// CompareLogs compares the whole expected log against the first run of the
// actual log.
func CompareLogs(expected, actual domain.ResultLog) domain.DiffOutcome {
	return Compare(expected, actual.PrimaryResults())
}

func compareResults(a, b domain.Result) int {
	return cmp.Or(
		cmp.Compare(a.Location.URI, b.Location.URI),
		cmp.Compare(a.Location.Line, b.Location.Line),
		cmp.Compare(a.Location.Column, b.Location.Column),
		cmp.Compare(a.RuleID, b.RuleID),
		cmp.Compare(a.Level, b.Level),
		cmp.Compare(a.Message, b.Message),
	)
}
