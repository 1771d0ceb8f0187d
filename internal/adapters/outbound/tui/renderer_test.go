package tui_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlskim/baseline/internal/adapters/outbound/tui"
	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/rules"
)

func sampleBatch() *domain.BatchReport {
	pass := domain.NewFixture("/corpus/select_star.sql", "")
	drift := domain.NewFixture("/corpus/drift.sql", "")
	crash := domain.NewFixture("/corpus/crash.sql", "")

	return &domain.BatchReport{
		ID:       "batch-1",
		Root:     "/work/project/testdata/corpus",
		Fixtures: []domain.Fixture{pass, drift, crash},
		Failures: []domain.FixtureFailure{
			{
				Fixture: drift,
				Kind:    domain.FailureContentMismatch,
				Outcome: domain.DiffOutcome{
					Missing:    []domain.Result{{RuleID: "BA2010", Level: domain.LevelError, Location: domain.Location{URI: "drift.sql", Line: 2}, Message: "gone"}},
					Unexpected: []domain.Result{{RuleID: "BA2011", Level: domain.LevelNote, Location: domain.Location{URI: "drift.sql", Line: 1}, Message: "new"}},
				},
			},
			{
				Fixture: crash,
				Kind:    domain.FailureEngineProcess,
				Status:  3,
				Detail:  "analysis engine exited with status 3",
			},
		},
		Verdict: domain.VerdictFailed,
	}
}

func TestRenderBatch_Failed(t *testing.T) {
	out := tui.RenderBatch(sampleBatch())

	assert.Contains(t, out, "sqlskim-baseline")
	assert.Contains(t, out, "FAILED")
	assert.Contains(t, out, "3 fixtures  2 failed")
	assert.Contains(t, out, "select_star.sql")
	assert.Contains(t, out, "content mismatch")
	assert.Contains(t, out, "BA2010")
	assert.Contains(t, out, "BA2011")
	assert.Contains(t, out, "engine process failure")
	assert.Contains(t, out, "analysis engine exited with status 3")
	assert.Contains(t, out, "testdata/corpus", "root is shortened")
}

func TestRenderBatch_Passed(t *testing.T) {
	batch := &domain.BatchReport{
		Root:     "/corpus",
		Fixtures: []domain.Fixture{domain.NewFixture("/corpus/a.sql", "")},
		Verdict:  domain.VerdictPassed,
	}
	out := tui.RenderBatch(batch)

	assert.Contains(t, out, "PASSED")
	assert.Contains(t, out, "All fixtures match their baselines.")
	assert.NotContains(t, out, "FAILED")
}

func TestRenderDiff(t *testing.T) {
	assert.Contains(t, tui.RenderDiff(domain.DiffOutcome{}), "Logs match.")

	out := tui.RenderDiff(sampleBatch().Failures[0].Outcome)
	assert.Contains(t, out, "1 missing, 1 unexpected")
	assert.Contains(t, out, "drift.sql:2")
	assert.Contains(t, out, "drift.sql:1")
}

func TestRenderRules(t *testing.T) {
	out := tui.RenderRules(rules.All(), false)
	assert.Contains(t, out, "BA2001")
	assert.Contains(t, out, "Enable Safe SEH")
	assert.NotContains(t, out, "BA2003")

	out = tui.RenderRules(rules.All(), true)
	assert.Contains(t, out, "BA2003")
	assert.Contains(t, out, "reserved")
}

func TestRenderHistory(t *testing.T) {
	assert.Contains(t, tui.RenderHistory(nil), "No run history found.")

	out := tui.RenderHistory([]domain.RunEntry{
		{Timestamp: "2026-02-25T10:00:00Z", CommitHash: "abcdef1234567890", Fixtures: 10, Failed: 1, Verdict: domain.VerdictFailed},
		{Timestamp: "2026-02-26T10:00:00Z", Fixtures: 10, Failed: 4, Verdict: domain.VerdictFailed},
		{Timestamp: "2026-02-27T10:00:00Z", Fixtures: 10, Failed: 0, Verdict: domain.VerdictPassed},
	})

	assert.Contains(t, out, "2026-02-25")
	assert.Contains(t, out, "abcdef1")
	assert.NotContains(t, out, "abcdef12")
	assert.Contains(t, out, "1/10 failed")
	assert.Contains(t, out, "↑3")
	assert.Contains(t, out, "↓4")
}
