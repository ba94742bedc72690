// Package domain defines the core business entities for ytstats.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Record: One video's performance snapshot read from the file store
//   - VideoMetadata: Display metadata fetched from the video platform
//   - EnrichedRecord: A Record joined with its metadata (the response unit)
//   - TimeRange: An optional inclusive timestamp window
//   - FileResult: The outcome of retrieving one source file
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, github.com/araddon/dateparse
//   - Cannot Import: Any internal/ package
package domain
