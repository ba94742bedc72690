package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// ToolVideoPerformance is the name of the performance tool.
const ToolVideoPerformance = "get_video_performance"

// PerformanceInput is the input schema for the performance tool.
type PerformanceInput struct {
	TimePeriod string `json:"time_period,omitempty" jsonschema:"optional inclusive range as start,end; either side may be empty, e.g. 2024-01-01,2024-02-01"`
}

// PerformanceOutput is the output schema for the performance tool.
type PerformanceOutput struct {
	Records []domain.EnrichedRecord `json:"records"`
	Count   int                     `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        ToolVideoPerformance,
		Description: "Views, likes and comments per video snapshot, joined with YouTube titles and thumbnails",
	}, s.handlePerformance)
}

// handlePerformance handles the performance tool invocation.
func (s *Server) handlePerformance(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PerformanceInput,
) (*mcp.CallToolResult, PerformanceOutput, error) {
	rng, err := domain.ParseTimeRange(input.TimePeriod)
	if err != nil {
		return nil, PerformanceOutput{}, err
	}

	records, err := s.ports.Performance.Performance(ctx, domain.PerformanceQuery{Range: rng})
	if err != nil {
		return nil, PerformanceOutput{}, err
	}
	if records == nil {
		records = []domain.EnrichedRecord{}
	}

	return nil, PerformanceOutput{Records: records, Count: len(records)}, nil
}
