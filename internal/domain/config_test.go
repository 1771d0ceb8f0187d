package domain_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sqlskim/baseline/internal/domain"
)

func TestDefaultConfig_IsValid(t *testing.T) {
	cfg := domain.DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, "*.sql", cfg.Fixtures.Filter)
	assert.Equal(t, domain.DefaultLogSuffix, cfg.Fixtures.LogSuffix)
	assert.Equal(t, domain.HistoryJSON, cfg.History.Backend)
	assert.Zero(t, cfg.Engine.Timeout, "no timeout unless configured")
}

func TestConfig_FixtureRoot(t *testing.T) {
	cfg := domain.DefaultConfig()
	project := filepath.Join(string(filepath.Separator)+"work", "proj")
	assert.Equal(t, filepath.Join(project, "testdata", "rules"), cfg.FixtureRoot(project))

	abs := filepath.Join(string(filepath.Separator)+"elsewhere", "corpus")
	cfg.Fixtures.Root = abs
	assert.Equal(t, abs, cfg.FixtureRoot(project))
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*domain.Config)
		wantErr string
	}{
		{"empty root", func(c *domain.Config) { c.Fixtures.Root = "" }, "fixtures.root"},
		{"empty filter", func(c *domain.Config) { c.Fixtures.Filter = "" }, "fixtures.filter"},
		{"bad glob", func(c *domain.Config) { c.Fixtures.Filter = "[a-" }, "not a valid glob"},
		{"suffix without dot", func(c *domain.Config) { c.Fixtures.LogSuffix = "log" }, "log_suffix"},
		{"empty command", func(c *domain.Config) { c.Engine.Command = "  " }, "engine.command"},
		{"negative timeout", func(c *domain.Config) { c.Engine.Timeout = -time.Second }, "engine.timeout"},
		{"unknown backend", func(c *domain.Config) { c.History.Backend = "postgres" }, "history.backend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if assert.Error(t, err) {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestConfig_Validate_AcceptsEveryBackend(t *testing.T) {
	for _, b := range domain.ValidHistoryBackends {
		cfg := domain.DefaultConfig()
		cfg.History.Backend = b
		assert.NoError(t, cfg.Validate(), "backend %q", b)
	}
}
