package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sqlskim/baseline/internal/adapters/outbound/config"
	"github.com/sqlskim/baseline/internal/adapters/outbound/difftool"
	"github.com/sqlskim/baseline/internal/adapters/outbound/engine"
	"github.com/sqlskim/baseline/internal/adapters/outbound/fixtures"
	"github.com/sqlskim/baseline/internal/adapters/outbound/sarif"
	"github.com/sqlskim/baseline/internal/application"
	"github.com/sqlskim/baseline/internal/domain"
	"github.com/sqlskim/baseline/internal/domain/rules"
)

// registerTools registers all baseline MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	// 1. baseline_run
	s.AddTool(
		mcplib.NewTool("baseline_run",
			mcplib.WithDescription("Runs every fixture and returns the batch report as JSON"),
			mcplib.WithString("filter",
				mcplib.Description("Fixture name glob overriding fixtures.filter"),
			),
		),
		handleRun(projectPath),
	)

	// 2. baseline_diff
	s.AddTool(
		mcplib.NewTool("baseline_diff",
			mcplib.WithDescription("Compares an actual result log against a baseline log"),
			mcplib.WithString("expected",
				mcplib.Required(),
				mcplib.Description("Path of the baseline log, relative to the project"),
			),
			mcplib.WithString("actual",
				mcplib.Required(),
				mcplib.Description("Path of the actual log, relative to the project"),
			),
		),
		handleDiff(projectPath),
	)

	// 3. baseline_fixtures
	s.AddTool(
		mcplib.NewTool("baseline_fixtures",
			mcplib.WithDescription("Lists the fixtures a run would execute"),
		),
		handleFixtures(projectPath),
	)

	// 4. baseline_rules
	s.AddTool(
		mcplib.NewTool("baseline_rules",
			mcplib.WithDescription("Returns the analyzer rule catalog"),
			mcplib.WithBoolean("reserved",
				mcplib.Description("Include reserved rule identifiers"),
			),
		),
		handleRules,
	)
}

func handleRun(projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if filter, _ := request.GetArguments()["filter"].(string); filter != "" {
			cfg.Fixtures.Filter = filter
			if err := cfg.Validate(); err != nil {
				return errorResult(err.Error()), nil
			}
		}

		logger := slog.Default()
		svc := application.NewBaselineService(
			cfg,
			cfg.FixtureRoot(projectPath),
			fixtures.New(),
			engine.New(cfg.Engine, logger),
			sarif.New(),
			difftool.New(cfg.Report.DiffTools...),
			logger,
		)

		batch, err := svc.Run(ctx)
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(batch)
	}
}

func handleDiff(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		expected, err := request.RequireString("expected")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		actual, err := request.RequireString("actual")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		svc := application.NewDiffService(sarif.New())
		outcome, err := svc.DiffFiles(resolve(projectPath, expected), resolve(projectPath, actual))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return jsonResult(struct {
			Match bool `json:"match"`
			domain.DiffOutcome
		}{outcome.Match(), outcome})
	}
}

func handleFixtures(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return errorResult(err.Error()), nil
		}

		list, err := application.ListFixtures(fixtures.New(), cfg, cfg.FixtureRoot(projectPath))
		if err != nil {
			return errorResult(err.Error()), nil
		}
		if list == nil {
			list = []domain.Fixture{}
		}
		return jsonResult(list)
	}
}

func handleRules(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
	if reserved, _ := request.GetArguments()["reserved"].(bool); reserved {
		return jsonResult(rules.All())
	}
	return jsonResult(rules.Active())
}

func resolve(projectPath, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(projectPath, p)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
