package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/strideworks/stridemap/core"
	"github.com/strideworks/stridemap/internal/contract"
	"github.com/strideworks/stridemap/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.ActivityStore
}

// requestConfig clones the base config with per-request overrides applied.
func (h *toolHandler) requestConfig(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("csv_path", ""); p != "" {
		cfg.CSVPath = p
		cfg.FromStore = false
	}
	if s := request.GetString("sport", ""); s != "" {
		cfg.Sport = schema.SportKind(s)
	}
	if m := request.GetString("metric", ""); m != "" {
		cfg.Metric = schema.Metric(m)
	}
	now := time.Now()
	if since := request.GetString("since", ""); since != "" {
		t, err := contract.ParseDatePoint(since, now)
		if err != nil {
			return nil, fmt.Errorf("invalid since: %w", err)
		}
		cfg.Since = t
	}
	if until := request.GetString("until", ""); until != "" {
		t, err := contract.ParseDatePoint(until, now)
		if err != nil {
			return nil, fmt.Errorf("invalid until: %w", err)
		}
		cfg.Until = t
	}
	return cfg, nil
}

func (h *toolHandler) handleGetSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	report, err := core.GetSummaryResults(ctx, cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("summary failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(report, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetWeeklyHeatmap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	cells, err := core.GetWeeklyHeatmapResults(ctx, cfg, h.store, cfg.Metric)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("heatmap failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(cells, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleListActivities(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.requestConfig(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	acts, err := core.LoadActivities(ctx, cfg, h.store)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	if l := request.GetInt("limit", 0); l > 0 && l < len(acts) {
		acts = acts[:l]
	}

	jsonData, _ := json.MarshalIndent(acts, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
