package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
	"github.com/custodia-labs/ytstats/internal/logger"
	"github.com/custodia-labs/ytstats/internal/metrics"
)

// Ensure PerformanceService implements the interface.
var _ driving.PerformanceService = (*PerformanceService)(nil)

// PerformanceService runs the fetch, filter and enrich pipeline.
type PerformanceService struct {
	source   driven.RecordSource
	enricher *Enricher
	policy   domain.FailurePolicy
}

// NewPerformanceService creates a new performance service.
func NewPerformanceService(
	source driven.RecordSource,
	provider driven.MetadataProvider,
	policy domain.FailurePolicy,
) *PerformanceService {
	if policy == "" {
		policy = domain.FailureLenient
	}
	return &PerformanceService{
		source:   source,
		enricher: NewEnricher(provider),
		policy:   policy,
	}
}

// Performance fetches all records, filters them by query.Range, and joins
// them with video metadata. Any stage failure fails the whole request.
func (s *PerformanceService) Performance(
	ctx context.Context, query domain.PerformanceQuery,
) ([]domain.EnrichedRecord, error) {
	start := time.Now()
	log := logger.Ctx(ctx)

	results, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch records: %w", err)
	}

	records, err := Aggregate(ctx, results, s.policy)
	if err != nil {
		return nil, err
	}
	fetched := len(records)

	records = FilterByTime(records, query.Range)

	ids := UniqueVideoIDs(records)
	meta, err := s.enricher.Enrich(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := Join(records, meta)
	metrics.RecordsServed.Observe(float64(len(out)))

	log.Info().
		Int("files", len(results)).
		Int("fetched", fetched).
		Int("filtered", len(records)).
		Int("videos", len(ids)).
		Int("enriched", len(meta)).
		Dur("duration", time.Since(start)).
		Msg("performance request served")

	return out, nil
}
