// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - RecordSource: Retrieves performance records from the file store (GitHub)
//   - MetadataProvider: Fetches display metadata for a batch of videos (YouTube)
//   - TokenProvider: Supplies credentials to connectors
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or connector package
package driven
