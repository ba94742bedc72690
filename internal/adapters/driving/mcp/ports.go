package mcp

import (
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Performance serves enriched video records.
	Performance driving.PerformanceService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Performance == nil {
		return ErrMissingPerformanceService
	}
	return nil
}
