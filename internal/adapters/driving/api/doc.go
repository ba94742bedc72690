// Package api exposes the performance pipeline over HTTP.
//
// Routes:
//
//	GET /api/data?timePeriod=<start>,<end>   enriched records as a JSON array
//	GET /healthz                             liveness probe
//	GET /metrics                             Prometheus metrics
//
// Failures are reported as {"error": "<message>"}: 400 for a malformed
// timePeriod, 500 for any pipeline error. Partial results are never sent.
package api
