package driving

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// PerformanceService provides enriched video performance data to external actors.
type PerformanceService interface {
	// Performance fetches, filters and enriches records for one request.
	// The result is never nil on success.
	Performance(ctx context.Context, query domain.PerformanceQuery) ([]domain.EnrichedRecord, error)
}
