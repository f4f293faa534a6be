package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/history"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
)

// registerResources registers all ccd MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string) {
	// ccd://health - current project health
	s.AddResource(
		mcplib.NewResource(
			"ccd://health",
			"Project Health",
			mcplib.WithResourceDescription("Current context documentation health for the project"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHealthResource(projectPath),
	)

	// ccd://codemap - declared module map
	s.AddResource(
		mcplib.NewResource(
			"ccd://codemap",
			"Codemap",
			mcplib.WithResourceDescription("The project's declared module map (docs/CODEMAP.yaml)"),
			mcplib.WithMIMEType("application/json"),
		),
		handleCodemapResource(projectPath),
	)

	// ccd://history - recorded health entries
	s.AddResource(
		mcplib.NewResource(
			"ccd://history",
			"Health History",
			mcplib.WithResourceDescription("Recorded project health entries over time"),
			mcplib.WithMIMEType("application/json"),
		),
		handleHistoryResource(projectPath),
	)
}

func handleHealthResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		health, err := newHealthService().ProjectHealth(projectPath)
		if err != nil {
			return nil, fmt.Errorf("health failed: %w", err)
		}
		return jsonResource("ccd://health", health)
	}
}

func handleCodemapResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}

		scan, err := scanner.New().Scan(projectPath, cfg)
		if err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if scan.Codemap == nil {
			return nil, fmt.Errorf("no codemap found (run `ccd init` to create one)")
		}

		return jsonResource("ccd://codemap", scan.Codemap)
	}
}

func handleHistoryResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, _ mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		entries, err := history.New().Load(projectPath)
		if err != nil {
			return nil, fmt.Errorf("loading history: %w", err)
		}
		return jsonResource("ccd://history", entries)
	}
}

func jsonResource(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling resource: %w", err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
