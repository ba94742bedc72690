package youtube

import (
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/ytstats/internal/logger"
	"github.com/custodia-labs/ytstats/internal/metrics"
)

// BreakerName labels the circuit breaker in logs and metrics.
const BreakerName = "youtube-api"

// Breaker defaults.
const (
	DefaultBreakerFailures = 5
	DefaultBreakerTimeout  = 30 * time.Second
)

// newBreaker creates the circuit breaker guarding videos.list.
// It opens after failures consecutive failures and probes again after timeout.
func newBreaker(failures uint32, timeout time.Duration) *gobreaker.CircuitBreaker[*youtube.VideoListResponse] {
	if failures == 0 {
		failures = DefaultBreakerFailures
	}
	if timeout <= 0 {
		timeout = DefaultBreakerTimeout
	}

	metrics.CircuitBreakerState.WithLabelValues(BreakerName).Set(0)

	return gobreaker.NewCircuitBreaker[*youtube.VideoListResponse](gobreaker.Settings{
		Name:        BreakerName,
		MaxRequests: 1,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= failures
		},
		IsSuccessful: func(err error) bool {
			return !countsAsFailure(err)
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state change")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
	})
}

func stateToFloat(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
