package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/ccdocs/ccd/internal/adapters/outbound/config"
	"github.com/ccdocs/ccd/internal/adapters/outbound/docsource"
	"github.com/ccdocs/ccd/internal/adapters/outbound/gitinfo"
	"github.com/ccdocs/ccd/internal/adapters/outbound/history"
	"github.com/ccdocs/ccd/internal/adapters/outbound/markdown"
	"github.com/ccdocs/ccd/internal/adapters/outbound/scanner"
	"github.com/ccdocs/ccd/internal/application"
)

// registerTools registers all ccd MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string) {
	s.AddTool(
		mcplib.NewTool("ccd_health",
			mcplib.WithDescription("Returns the composite context documentation health report for the project as JSON"),
		),
		handleHealth(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("ccd_doc_health",
			mcplib.WithDescription("Score the structural health of a single context card"),
			mcplib.WithString("file",
				mcplib.Required(),
				mcplib.Description("Path to the context card, relative to the project root"),
			),
		),
		handleDocHealth(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("ccd_freshness",
			mcplib.WithDescription("Classify every context card as fresh, stale or outdated"),
			mcplib.WithNumber("threshold_hours",
				mcplib.Description("Freshness threshold in hours (overrides config)"),
			),
		),
		handleFreshness(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("ccd_coverage",
			mcplib.WithDescription("Report context coverage and list undocumented source files"),
		),
		handleCoverage(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("ccd_drift",
			mcplib.WithDescription("Detect drift between context cards and the source files they document"),
		),
		handleDrift(projectPath),
	)

	s.AddTool(
		mcplib.NewTool("ccd_gates",
			mcplib.WithDescription("Run the coverage, freshness and health quality gates"),
		),
		handleGates(projectPath),
	)
}

func systemClock() time.Time { return time.Now() }

func newHealthService() *application.HealthService {
	return application.NewHealthService(
		config.New(), scanner.New(), docsource.New(), gitinfo.New(), history.New(), systemClock)
}

func handleHealth(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		health, err := newHealthService().ProjectHealth(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("health failed: %v", err)), nil
		}
		return jsonResult(health)
	}
}

func handleDocHealth(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		file, err := request.RequireString("file")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		report, err := newHealthService().DocumentHealth(projectPath, file)
		if err != nil {
			return errorResult(fmt.Sprintf("doc-health failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleFreshness(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		threshold := 0
		if v, ok := request.GetArguments()["threshold_hours"].(float64); ok {
			threshold = int(v)
		}

		svc := application.NewFreshnessService(
			config.New(), scanner.New(), docsource.New(), systemClock)
		summary, err := svc.CheckProject(projectPath, threshold)
		if err != nil {
			return errorResult(fmt.Sprintf("freshness failed: %v", err)), nil
		}
		return jsonResult(summary)
	}
}

func handleCoverage(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewCoverageService(config.New(), scanner.New())
		report, err := svc.Report(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("coverage failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleDrift(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewDriftService(
			config.New(), scanner.New(), docsource.New(), markdown.New())
		report, err := svc.Report(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("drift failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

func handleGates(projectPath string) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		svc := application.NewGatesService(
			config.New(), scanner.New(), docsource.New(), systemClock)
		report, err := svc.Report(projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("gates failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
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
