// Package metrics exposes Prometheus instrumentation for ytstats.
//
// HTTP metrics:
//   - http_requests_total{method,route,status}
//   - http_request_duration_seconds{method,route}
//
// Upstream metrics:
//   - upstream_requests_total{upstream,outcome}
//   - upstream_request_duration_seconds{upstream}
//
// Pipeline metrics:
//   - source_files_total{outcome}
//   - records_served
//   - circuit_breaker_state{name}
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Upstream names used as label values.
const (
	UpstreamGitHub  = "github"
	UpstreamYouTube = "youtube"
)

// Outcome label values.
const (
	OutcomeSuccess = "success"
	OutcomeFailure = "failure"
)

var (
	// HTTPRequestsTotal counts served HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration tracks HTTP request latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency in seconds",
			Buckets: []float64{.01, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "route"},
	)

	// UpstreamRequestsTotal counts calls to GitHub and YouTube.
	UpstreamRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_requests_total",
			Help: "Total number of upstream API calls",
		},
		[]string{"upstream", "outcome"},
	)

	// UpstreamRequestDuration tracks upstream call latency.
	UpstreamRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_request_duration_seconds",
			Help:    "Upstream API call latency in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"upstream"},
	)

	// SourceFilesTotal counts retrieved source files by outcome.
	SourceFilesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "source_files_total",
			Help: "Source files retrieved, by outcome",
		},
		[]string{"outcome"},
	)

	// RecordsServed tracks how many enriched records each request returned.
	RecordsServed = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "records_served",
			Help:    "Enriched records returned per request",
			Buckets: prometheus.ExponentialBuckets(1, 4, 8),
		},
	)

	// CircuitBreakerState is 0=closed, 1=half-open, 2=open.
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)
)

// ObserveUpstream records one upstream call.
func ObserveUpstream(upstream string, seconds float64, err error) {
	outcome := OutcomeSuccess
	if err != nil {
		outcome = OutcomeFailure
	}
	UpstreamRequestsTotal.WithLabelValues(upstream, outcome).Inc()
	UpstreamRequestDuration.WithLabelValues(upstream).Observe(seconds)
}
