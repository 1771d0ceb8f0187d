package diff_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/diff"
)

func result(rule string, level domain.Level, line int, msg string) domain.Result {
	return domain.Result{
		RuleID:   rule,
		Level:    level,
		Location: domain.Location{URI: "injection.sql", Line: line},
		Message:  msg,
	}
}

func logOf(results ...domain.Result) domain.ResultLog {
	return domain.ResultLog{Runs: []domain.Run{{Tool: "sqlskim", Results: results}}}
}

func TestCompare_IdenticalLogsMatch(t *testing.T) {
	r := result("BA2001", domain.LevelError, 3, "dynamic SQL")
	outcome := diff.Compare(logOf(r), []domain.Result{r})
	assert.True(t, outcome.Match())
	assert.Empty(t, outcome.Missing)
	assert.Empty(t, outcome.Unexpected)
}

func TestCompare_LineMovedIsMissingPlusUnexpected(t *testing.T) {
	line3 := result("BA2001", domain.LevelError, 3, "dynamic SQL")
	line4 := result("BA2001", domain.LevelError, 4, "dynamic SQL")

	outcome := diff.Compare(logOf(line3), []domain.Result{line4})

	assert.False(t, outcome.Match())
	assert.Equal(t, []domain.Result{line3}, outcome.Missing)
	assert.Equal(t, []domain.Result{line4}, outcome.Unexpected)
}

func TestCompare_OrderIsNotSignificant(t *testing.T) {
	a := result("BA2001", domain.LevelError, 3, "a")
	b := result("BA2002", domain.LevelWarning, 7, "b")
	c := result("BA2005", domain.LevelNote, 1, "c")

	outcome := diff.Compare(logOf(a, b, c), []domain.Result{c, a, b})
	assert.True(t, outcome.Match())
}

func TestCompare_DuplicatesAreSignificant(t *testing.T) {
	r := result("BA2001", domain.LevelError, 3, "dup")

	outcome := diff.Compare(logOf(r, r), []domain.Result{r})
	assert.Equal(t, []domain.Result{r}, outcome.Missing)
	assert.Empty(t, outcome.Unexpected)

	outcome = diff.Compare(logOf(r), []domain.Result{r, r, r})
	assert.Empty(t, outcome.Missing)
	assert.Equal(t, []domain.Result{r, r}, outcome.Unexpected)
}

func TestCompare_EveryFieldIsCompared(t *testing.T) {
	base := result("BA2001", domain.LevelError, 3, "msg")

	variants := map[string]domain.Result{
		"rule":    result("BA2002", domain.LevelError, 3, "msg"),
		"level":   result("BA2001", domain.LevelWarning, 3, "msg"),
		"line":    result("BA2001", domain.LevelError, 4, "msg"),
		"message": result("BA2001", domain.LevelError, 3, "other"),
	}
	column := base
	column.Location.Column = 9
	variants["column"] = column
	uri := base
	uri.Location.URI = "other.sql"
	variants["uri"] = uri

	for name, v := range variants {
		t.Run(name, func(t *testing.T) {
			outcome := diff.Compare(logOf(base), []domain.Result{v})
			assert.Equal(t, []domain.Result{base}, outcome.Missing)
			assert.Equal(t, []domain.Result{v}, outcome.Unexpected)
		})
	}
}

func TestCompare_EmptyBoundaries(t *testing.T) {
	r := result("BA2001", domain.LevelError, 3, "x")

	assert.True(t, diff.Compare(domain.ResultLog{}, nil).Match(), "empty vs empty")

	outcome := diff.Compare(logOf(r), nil)
	assert.Equal(t, []domain.Result{r}, outcome.Missing)

	outcome = diff.Compare(domain.ResultLog{}, []domain.Result{r})
	assert.Equal(t, []domain.Result{r}, outcome.Unexpected)
}

func TestCompare_ExpectedRunsAreFlattened(t *testing.T) {
	a := result("BA2001", domain.LevelError, 3, "a")
	b := result("BA2002", domain.LevelWarning, 5, "b")
	expected := domain.ResultLog{Runs: []domain.Run{
		{Results: []domain.Result{a}},
		{Results: []domain.Result{b}},
	}}

	assert.True(t, diff.Compare(expected, []domain.Result{b, a}).Match())
}

func TestCompare_OutcomeIsSorted(t *testing.T) {
	l9 := result("BA2001", domain.LevelError, 9, "x")
	l2 := result("BA2001", domain.LevelError, 2, "x")
	l5 := result("BA2001", domain.LevelError, 5, "x")

	outcome := diff.Compare(domain.ResultLog{}, []domain.Result{l9, l2, l5})
	assert.Equal(t, []domain.Result{l2, l5, l9}, outcome.Unexpected)
}

func TestCompareLogs(t *testing.T) {
	a := result("BA2001", domain.LevelError, 3, "a")
	b := result("BA2002", domain.LevelWarning, 5, "b")

	outcome := diff.CompareLogs(logOf(a), logOf(a, b))
	assert.Empty(t, outcome.Missing)
	assert.Equal(t, []domain.Result{b}, outcome.Unexpected)
}

func TestCompareLogs_ActualSecondRunIgnored(t *testing.T) {
	a := result("BA2001", domain.LevelError, 3, "a")
	b := result("BA2002", domain.LevelWarning, 5, "b")

	actual := logOf(a)
	actual.Runs = append(actual.Runs, domain.Run{Tool: "sqlskim", Results: []domain.Result{b}})

	assert.True(t, diff.CompareLogs(logOf(a), actual).Match())
}
