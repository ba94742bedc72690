// Package youtube implements the video metadata provider on the
// YouTube Data API v3.
//
// Metadata is read with videos.list (part=snippet), at most 50 ids per
// call, authenticated by an API key. Calls pass through a token bucket
// and a circuit breaker. Nothing is retried: a 429 starts a backoff
// window during which calls fail immediately, and an open breaker
// rejects calls until its timeout elapses.
package youtube
