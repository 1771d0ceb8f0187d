package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sqlskim/baseline/internal/adapters/outbound/config"
	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/rules"
)

func testdata(t *testing.T, elem ...string) string {
	t.Helper()
	p, err := filepath.Abs(filepath.Join(append([]string{"..", "..", "..", "..", "testdata"}, elem...)...))
	require.NoError(t, err)
	return p
}

func project(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("the fake engine is a POSIX shell script")
	}

	dir := t.TempDir()
	require.NoError(t, os.CopyFS(filepath.Join(dir, "corpus"), os.DirFS(testdata(t, "corpus"))))
	cfg := fmt.Sprintf("fixtures:\n  root: corpus\nengine:\n  command: sh\n  args: [%q, \"{target}\", \"{output}\"]\nhistory:\n  backend: none\n",
		testdata(t, "engine", "fake-engine.sh"))
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(cfg), 0644))
	return dir
}

func call(t *testing.T, handler func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) (string, bool) {
	t.Helper()
	var req mcplib.CallToolRequest
	req.Params.Arguments = args

	res, err := handler(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, res.Content, 1)
	text, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return text.Text, res.IsError
}

func TestHandleRun(t *testing.T) {
	dir := project(t)

	out, isErr := call(t, handleRun(dir), map[string]any{"filter": "select_star.sql"})
	require.False(t, isErr, out)

	var batch domain.BatchReport
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, domain.VerdictPassed, batch.Verdict)

	out, isErr = call(t, handleRun(dir), nil)
	require.False(t, isErr, "a failed batch is still a successful tool call")
	require.NoError(t, json.Unmarshal([]byte(out), &batch))
	assert.Equal(t, domain.VerdictFailed, batch.Verdict)
	assert.Len(t, batch.Failures, 2)
}

func TestHandleRun_InvalidFilter(t *testing.T) {
	dir := project(t)
	out, isErr := call(t, handleRun(dir), map[string]any{"filter": "[a-"})
	assert.True(t, isErr)
	assert.Contains(t, out, "fixtures.filter")
}

func TestHandleDiff(t *testing.T) {
	dir := testdata(t, "corpus")

	out, isErr := call(t, handleDiff(dir), map[string]any{
		"expected": "Expected/drift.sql.log",
		"actual":   "Responses/drift.sql.log",
	})
	require.False(t, isErr, out)

	var got struct {
		Match      bool            `json:"match"`
		Missing    []domain.Result `json:"missing"`
		Unexpected []domain.Result `json:"unexpected"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.False(t, got.Match)
	require.Len(t, got.Missing, 1)
	assert.Equal(t, "BA2010", got.Missing[0].RuleID)
	require.Len(t, got.Unexpected, 1)
	assert.Equal(t, "BA2011", got.Unexpected[0].RuleID)
}

func TestHandleDiff_RequiresArguments(t *testing.T) {
	_, isErr := call(t, handleDiff(t.TempDir()), map[string]any{"expected": "a.log"})
	assert.True(t, isErr)
}

func TestHandleFixtures(t *testing.T) {
	dir := project(t)

	out, isErr := call(t, handleFixtures(dir), nil)
	require.False(t, isErr, out)

	var list []domain.Fixture
	require.NoError(t, json.Unmarshal([]byte(out), &list))
	assert.Len(t, list, 3)
}

func TestHandleFixtures_MissingRoot(t *testing.T) {
	out, isErr := call(t, handleFixtures(t.TempDir()), nil)
	assert.True(t, isErr)
	assert.Contains(t, out, "fixture directory not found")
}

func TestHandleRules(t *testing.T) {
	out, _ := call(t, handleRules, nil)
	var active []rules.Rule
	require.NoError(t, json.Unmarshal([]byte(out), &active))
	assert.Len(t, active, len(rules.Active()))

	out, _ = call(t, handleRules, map[string]any{"reserved": true})
	var all []rules.Rule
	require.NoError(t, json.Unmarshal([]byte(out), &all))
	assert.Len(t, all, len(rules.All()))
}

func TestHandleRulesResource(t *testing.T) {
	contents, err := handleRulesResource(context.Background(), mcplib.ReadResourceRequest{})
	require.NoError(t, err)
	require.Len(t, contents, 1)

	text, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Equal(t, rulesURI, text.URI)
	assert.Contains(t, text.Text, "BA2020")
}
