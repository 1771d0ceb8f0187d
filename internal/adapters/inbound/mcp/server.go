package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewBaselineMCPServer creates a new MCP server with all baseline tools and
// resources registered. The projectPath is the directory holding
// .baseline.yaml.
func NewBaselineMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"sqlskim-baseline",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s)

	return s
}
