package mcp

import (
	"github.com/mark3labs/mcp-go/server"
)

// NewCCDMCPServer creates a new MCP server with all ccd tools and resources
// registered. The projectPath is the root directory of the project to score.
func NewCCDMCPServer(projectPath string) *server.MCPServer {
	s := server.NewMCPServer(
		"ccd",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath)
	registerResources(s, projectPath)

	return s
}
