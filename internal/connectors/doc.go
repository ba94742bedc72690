// Package connectors holds the upstream integrations behind the driven ports.
//
//   - github: a RecordSource reading performance files from a repository
//   - youtube: a MetadataProvider backed by the YouTube Data API
package connectors
