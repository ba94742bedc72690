// Package github implements a record source backed by JSON files in a
// GitHub repository.
//
// # Locating files
//
// Files are resolved in one of two ways:
//
//   - an explicit list of paths, fetched in the given order
//   - a directory listing filtered by a file name regexp
//     (default ^mostliked\d*\.json$), kept in listing order
//
// Each file is fetched through the contents API with the raw media type,
// so payloads arrive as bytes rather than base64 JSON.
//
// # File format
//
// A file holds a JSON array of positional tuples:
//
//	[[views, likes, comments, "timestamp", "videoId"], ...]
//
// [DecodeRecords] turns each tuple into a [domain.Record]. Malformed tuples
// are skipped; a payload that is not an array of arrays fails the file.
//
// # Authentication
//
// A personal access token is sent as a bearer token through an oauth2
// static token source. Without a token requests are anonymous, which only
// reaches public repositories and is limited to 60 requests per hour.
//
// # Rate Limiting
//
// The client combines a token bucket with the X-RateLimit-* headers.
// When the remaining quota drops below [MinBuffer], calls fail with a
// [RateLimitError] until the reset time passes.
package github
