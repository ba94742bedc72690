package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
	"github.com/custodia-labs/ytstats/internal/logger"
)

// MaxEnrichedIDs caps how many unique videos are enriched per request.
// Records for later ids keep the default title and thumbnail.
const MaxEnrichedIDs = 150

// UniqueVideoIDs returns the distinct video ids in first-seen order.
func UniqueVideoIDs(records []domain.Record) []string {
	seen := make(map[string]struct{}, len(records))
	ids := make([]string, 0, len(records))
	for _, r := range records {
		if _, ok := seen[r.VideoID]; ok {
			continue
		}
		seen[r.VideoID] = struct{}{}
		ids = append(ids, r.VideoID)
	}
	return ids
}

// Enricher fetches metadata in bounded batches.
type Enricher struct {
	provider  driven.MetadataProvider
	maxIDs    int
	batchSize int
}

// NewEnricher creates an enricher over provider.
func NewEnricher(provider driven.MetadataProvider) *Enricher {
	return &Enricher{
		provider:  provider,
		maxIDs:    MaxEnrichedIDs,
		batchSize: driven.MaxMetadataBatch,
	}
}

// Enrich fetches metadata for the first MaxEnrichedIDs ids, one provider
// call per batch, with batches running concurrently. Any failed batch
// fails the enrichment and cancels the others.
func (e *Enricher) Enrich(ctx context.Context, ids []string) (map[string]domain.VideoMetadata, error) {
	if len(ids) > e.maxIDs {
		logger.Ctx(ctx).Debug().
			Int("ids", len(ids)).
			Int("cap", e.maxIDs).
			Msg("enrichment cap reached")
		ids = ids[:e.maxIDs]
	}

	batches := chunk(ids, e.batchSize)
	found := make([][]domain.VideoMetadata, len(batches))

	g, gctx := errgroup.WithContext(ctx)
	for i, batch := range batches {
		g.Go(func() error {
			meta, err := e.provider.VideoMetadata(gctx, batch)
			if err != nil {
				return fmt.Errorf("enrich batch %d/%d: %w", i+1, len(batches), err)
			}
			found[i] = meta
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	byID := make(map[string]domain.VideoMetadata, len(ids))
	for _, batch := range found {
		for _, m := range batch {
			if _, dup := byID[m.VideoID]; !dup {
				byID[m.VideoID] = m
			}
		}
	}
	return byID, nil
}

// chunk splits ids into consecutive slices of at most size elements.
func chunk(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	out := make([][]string, 0, (len(ids)+size-1)/size)
	for start := 0; start < len(ids); start += size {
		end := min(start+size, len(ids))
		out = append(out, ids[start:end:end])
	}
	return out
}

// Join pairs every record with its metadata. The result has exactly one
// entry per record and is never nil.
func Join(records []domain.Record, meta map[string]domain.VideoMetadata) []domain.EnrichedRecord {
	out := make([]domain.EnrichedRecord, 0, len(records))
	for _, r := range records {
		if m, ok := meta[r.VideoID]; ok {
			out = append(out, r.Enrich(&m))
			continue
		}
		out = append(out, r.Enrich(nil))
	}
	return out
}
