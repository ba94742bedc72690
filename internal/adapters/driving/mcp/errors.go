// Package mcp provides an MCP (Model Context Protocol) server adapter for ytstats.
// It lets AI assistants query enriched video performance data.
package mcp

import "errors"

// ErrMissingPerformanceService is returned when the performance service is not provided.
var ErrMissingPerformanceService = errors.New("mcp: performance service is required")
