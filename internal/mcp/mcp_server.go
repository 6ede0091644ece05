// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/strideworks/stridemap/internal/contract"
)

// NewMCPServer initializes and configures the stridemap MCP server without
// starting it. This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.ActivityStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Stridemap Activity Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_summary ---
	s.AddTool(mcp.NewTool("get_summary",
		mcp.WithDescription("Summarize the activity history: totals, weekly and monthly distance, per-sport counts."),
		mcp.WithString("csv_path", mcp.Description("Path to the activities CSV export (defaults to the configured path).")),
		mcp.WithString("sport", mcp.Description("Restrict to one sport (e.g. Running). Defaults to all sports.")),
		mcp.WithString("since", mcp.Description("Lower date bound (YYYY-MM-DD or 'N months ago').")),
		mcp.WithString("until", mcp.Description("Upper date bound (YYYY-MM-DD or 'N months ago').")),
	), h.handleGetSummary)

	// --- 2. Tool: get_weekly_heatmap ---
	s.AddTool(mcp.NewTool("get_weekly_heatmap",
		mcp.WithDescription("Return the dense 7x24 weekday-by-hour grid of activity counts or mean distance."),
		mcp.WithString("csv_path", mcp.Description("Path to the activities CSV export.")),
		mcp.WithString("metric", mcp.Description("Cell value: counts or distance. Defaults to counts."), mcp.Enum("counts", "distance")),
		mcp.WithString("sport", mcp.Description("Restrict to one sport.")),
	), h.handleGetWeeklyHeatmap)

	// --- 3. Tool: list_activities ---
	s.AddTool(mcp.NewTool("list_activities",
		mcp.WithDescription("List filtered activities with parsed fields."),
		mcp.WithString("csv_path", mcp.Description("Path to the activities CSV export.")),
		mcp.WithString("sport", mcp.Description("Restrict to one sport.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of activities returned.")),
	), h.handleListActivities)

	return s
}

// StartMCPServer starts the stridemap MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.ActivityStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
