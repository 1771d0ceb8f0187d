package sarif_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlskim/baseline/internal/adapters/outbound/sarif"
	"github.com/sqlskim/baseline/internal/domain"
)

const singleResult = `{
  "$schema": "https://json.schemastore.org/sarif-2.1.0.json",
  "version": "2.1.0",
  "runs": [
    {
      "tool": { "driver": { "name": "sqlskim", "version": "1.4.0" } },
      "invocations": [ { "executionSuccessful": true } ],
      "results": [
        {
          "ruleId": "BA2001",
          "level": "error",
          "message": { "text": "dynamic SQL" },
          "locations": [
            { "physicalLocation": { "artifactLocation": { "uri": "injection.sql" }, "region": { "startLine": 3, "startColumn": 5 } } },
            { "physicalLocation": { "artifactLocation": { "uri": "ignored.sql" } } }
          ]
        }
      ]
    }
  ]
}`

func TestParse_SingleResult(t *testing.T) {
	log, err := sarif.Parse([]byte(singleResult))
	require.NoError(t, err)

	assert.Equal(t, "2.1.0", log.Version)
	require.Len(t, log.Runs, 1)
	assert.Equal(t, "sqlskim", log.Runs[0].Tool)
	assert.Equal(t, []domain.Result{{
		RuleID:   "BA2001",
		Level:    domain.LevelError,
		Location: domain.Location{URI: "injection.sql", Line: 3, Column: 5},
		Message:  "dynamic SQL",
	}}, log.Results())
}

func TestParse_MissingLevelDefaults(t *testing.T) {
	log, err := sarif.Parse([]byte(`{"version":"2.1.0","runs":[{"tool":{"driver":{"name":"x"}},"results":[{"ruleId":"BA2002","message":{"text":"m"}}]}]}`))
	require.NoError(t, err)
	require.Len(t, log.Results(), 1)
	assert.Equal(t, domain.DefaultLevel, log.Results()[0].Level)
	assert.Equal(t, domain.Location{}, log.Results()[0].Location)
}

func TestParse_NoRuns(t *testing.T) {
	log, err := sarif.Parse([]byte(`{"version":"2.1.0","runs":[]}`))
	require.NoError(t, err)
	assert.Empty(t, log.Results())
}

func TestParse_Rejects(t *testing.T) {
	tests := map[string]string{
		"empty":           "",
		"whitespace":      "  \n\t",
		"array":           `[{"ruleId":"BA2001"}]`,
		"truncated":       `{"version":"2.1.0","runs":[`,
		"missing ruleId":  `{"runs":[{"results":[{"level":"error","message":{"text":"m"}}]}]}`,
		"unknown level":   `{"runs":[{"results":[{"ruleId":"BA2001","level":"fatal","message":{"text":"m"}}]}]}`,
		"wrong type":      `{"runs":{"results":[]}}`,
		"not json at all": "FAIL",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := sarif.Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad_WrapsErrorsWithPath(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.sql.log")
	require.NoError(t, os.WriteFile(p, []byte("{"), 0644))

	_, err := sarif.New().Load(p)
	var parseErr *domain.LogParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, p, parseErr.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "absent.log")
	_, err := sarif.New().Load(p)

	var parseErr *domain.LogParseError
	require.ErrorAs(t, err, &parseErr)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteThenLoad(t *testing.T) {
	want := domain.ResultLog{
		Version: sarif.Version,
		Runs: []domain.Run{
			{Tool: "sqlskim", Results: []domain.Result{
				{RuleID: "BA2001", Level: domain.LevelError, Location: domain.Location{URI: "a.sql", Line: 3, Column: 1}, Message: "one"},
				{RuleID: "BA2002", Level: domain.LevelNote, Location: domain.Location{URI: "a.sql"}, Message: "two"},
				{RuleID: "BA0999", Level: domain.LevelNone, Message: "no location"},
			}},
			{Tool: "sqlskim", Results: []domain.Result{}},
		},
	}

	p := filepath.Join(t.TempDir(), "Expected", "a.sql.log")
	require.NoError(t, sarif.Write(p, want))

	got, err := sarif.New().Load(p)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestMarshal_DefaultsVersion(t *testing.T) {
	data, err := sarif.Marshal(domain.ResultLog{})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "2.1.0"`)
	assert.Contains(t, string(data), sarif.Schema)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}
