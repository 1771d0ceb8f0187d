package engine

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/sqlskim/baseline/internal/domain"
)

const (
	placeholderTarget = "{target}"
	placeholderOutput = "{output}"
	placeholderConfig = "{config}"
)

// maxStderrLog caps how much engine stderr is copied into log records.
const maxStderrLog = 4 * 1024

// waitDelay bounds how long a killed engine's children may hold its output
// pipes open.
const waitDelay = 2 * time.Second

// Command implements domain.AnalysisEngine by launching an external analyzer
// process. The invocation blocks until the process exits or, when a timeout
// is configured, until it is killed.
type Command struct {
	cfg    domain.EngineConfig
	logger *slog.Logger
}

// New creates a Command engine. A nil logger selects slog.Default().
func New(cfg domain.EngineConfig, logger *slog.Logger) *Command {
	if logger == nil {
		logger = slog.Default()
	}
	return &Command{cfg: cfg, logger: logger}
}

// Analyze runs the engine once and returns its exit status.
func (c *Command) Analyze(ctx context.Context, opts domain.AnalyzeOptions) (int, error) {
	if c.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.cfg.Timeout)
		defer cancel()
	}

	args := c.Args(opts)
	cmd := exec.CommandContext(ctx, c.cfg.Command, args...)
	cmd.WaitDelay = waitDelay

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("invoking analysis engine", "command", c.cfg.Command, "args", args)
	err := cmd.Run()

	if c.cfg.Timeout > 0 && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return -1, &domain.EngineTimeoutError{Timeout: c.cfg.Timeout}
	}
	if ctx.Err() != nil {
		return -1, fmt.Errorf("running %s: %w", c.cfg.Command, ctx.Err())
	}

	if err == nil {
		c.logger.Debug("analysis engine finished", "stdout_bytes", stdout.Len())
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		c.logger.Warn("analysis engine exited with non-zero status",
			"status", exitErr.ExitCode(),
			"stderr", tail(stderr.String(), maxStderrLog),
		)
		return exitErr.ExitCode(), nil
	}
	return -1, fmt.Errorf("starting %s: %w", c.cfg.Command, err)
}

// Args expands the configured argument template for opts. An argument that
// is exactly {target} expands to every target; otherwise placeholders are
// substituted in place. Verbose and recurse flags are appended when set.
func (c *Command) Args(opts domain.AnalyzeOptions) []string {
	targets := strings.Join(opts.TargetFileSpecifiers, " ")
	replacer := strings.NewReplacer(
		placeholderTarget, targets,
		placeholderOutput, opts.OutputFilePath,
		placeholderConfig, opts.ConfigurationFilePath,
	)

	args := make([]string, 0, len(c.cfg.Args)+len(opts.TargetFileSpecifiers)+2)
	for _, a := range c.cfg.Args {
		if a == placeholderTarget {
			args = append(args, opts.TargetFileSpecifiers...)
			continue
		}
		args = append(args, replacer.Replace(a))
	}

	if opts.Verbose && c.cfg.VerboseFlag != "" {
		args = append(args, c.cfg.VerboseFlag)
	}
	if opts.Recurse && c.cfg.RecurseFlag != "" {
		args = append(args, c.cfg.RecurseFlag)
	}
	return args
}

func tail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return "..." + s[len(s)-n:]
}
