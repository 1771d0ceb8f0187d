package logger_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sqlskim/baseline/internal/logger"
)

func TestNew_PlainTextWithoutTime(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New(&buf, false)

	l.Info("batch finished", "fixtures", 3, "verdict", "passed")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, `msg="batch finished"`)
	assert.Contains(t, out, "fixtures=3")
	assert.NotContains(t, out, "time=")
}

func TestNew_DebugOnlyWhenVerbose(t *testing.T) {
	var quiet, loud bytes.Buffer

	logger.New(&quiet, false).Debug("invoking analysis engine")
	logger.New(&loud, true).Debug("invoking analysis engine")

	assert.Empty(t, quiet.String())
	assert.Contains(t, loud.String(), "level=DEBUG")
}

func TestSetup_InstallsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	l := logger.Setup(true)
	assert.Same(t, l, slog.Default())
}
