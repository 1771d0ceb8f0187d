package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlskim/baseline/internal/domain"
)

func TestNewFixture_DerivesBaselinePaths(t *testing.T) {
	dir := filepath.Join(string(filepath.Separator)+"corpus", "BA2001")
	input := filepath.Join(dir, "injection.sql")

	f := domain.NewFixture(input, "")

	assert.Equal(t, input, f.Input)
	assert.Equal(t, "injection.sql", f.Name)
	assert.Equal(t, filepath.Join(dir, "Expected", "injection.sql.log"), f.Expected)
	assert.Equal(t, filepath.Join(dir, "Actual", "injection.sql.log"), f.Actual)
	assert.Equal(t, filepath.Join(dir, "Actual"), f.ActualDir())
	assert.Equal(t, filepath.Join(dir, "Expected"), f.ExpectedDir())
}

func TestNewFixture_CustomSuffix(t *testing.T) {
	f := domain.NewFixture(filepath.Join("corpus", "a.sql"), ".sarif")
	assert.Equal(t, filepath.Join("corpus", "Expected", "a.sql.sarif"), f.Expected)
	assert.Equal(t, filepath.Join("corpus", "Actual", "a.sql.sarif"), f.Actual)
}

func TestNewFixture_Deterministic(t *testing.T) {
	input := filepath.Join("corpus", "a.sql")
	assert.Equal(t, domain.NewFixture(input, ".log"), domain.NewFixture(input, ".log"))
}
