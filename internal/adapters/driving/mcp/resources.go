package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

const (
	// uriScheme is the custom URI scheme for ytstats resources.
	uriScheme = "ytstats://"

	mimeJSON = "application/json"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	// Static resource for the full data set.
	s.server.AddResource(&mcp.Resource{
		URI:         uriScheme + "performance",
		Name:        "performance",
		Description: "All enriched performance records",
		MIMEType:    mimeJSON,
	}, s.handlePerformanceResource)

	// Template for one video's snapshots.
	s.server.AddResourceTemplate(&mcp.ResourceTemplate{
		URITemplate: uriScheme + "videos/{videoId}",
		Name:        "video-performance",
		Description: "Performance snapshots of a single video",
		MIMEType:    mimeJSON,
	}, s.handleVideoResource)
}

// handlePerformanceResource returns every record, unfiltered.
func (s *Server) handlePerformanceResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	records, err := s.ports.Performance.Performance(ctx, domain.PerformanceQuery{})
	if err != nil {
		return nil, fmt.Errorf("loading performance: %w", err)
	}
	return jsonResource(req.Params.URI, records)
}

// handleVideoResource returns the records of the video named in the URI.
func (s *Server) handleVideoResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	videoID := extractVideoID(req.Params.URI)
	if videoID == "" {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	records, err := s.ports.Performance.Performance(ctx, domain.PerformanceQuery{})
	if err != nil {
		return nil, fmt.Errorf("loading performance: %w", err)
	}

	matched := make([]domain.EnrichedRecord, 0)
	for i := range records {
		if records[i].VideoID == videoID {
			matched = append(matched, records[i])
		}
	}
	if len(matched) == 0 {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}

	return jsonResource(req.Params.URI, matched)
}

func jsonResource(uri string, records []domain.EnrichedRecord) (*mcp.ReadResourceResult, error) {
	if records == nil {
		records = []domain.EnrichedRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling records: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: mimeJSON,
			Text:     string(data),
		}},
	}, nil
}

// extractVideoID extracts the video ID from a URI like ytstats://videos/{videoId}.
func extractVideoID(uri string) string {
	const prefix = uriScheme + "videos/"

	if !strings.HasPrefix(uri, prefix) {
		return ""
	}

	id := strings.TrimPrefix(uri, prefix)
	if strings.Contains(id, "/") {
		return ""
	}
	return id
}
