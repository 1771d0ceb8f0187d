package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/sqlskim/baseline/internal/domain/rules"
)

const rulesURI = "baseline://rules"

// registerResources registers all baseline MCP resources on the given server.
func registerResources(s *server.MCPServer) {
	s.AddResource(
		mcplib.NewResource(
			rulesURI,
			"Rule Catalog",
			mcplib.WithResourceDescription("Every analyzer rule identifier, including reserved ones"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource,
	)
}

func handleRulesResource(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(rules.All(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling rules: %w", err)
	}

	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      rulesURI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
