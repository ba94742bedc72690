// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The performance pipeline is:
//
//	RecordSource.Fetch → Aggregate → FilterByTime → UniqueVideoIDs
//	  → Enricher.Enrich → Join
package services
