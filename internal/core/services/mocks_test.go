package services

import (
	"context"
	"sync"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
)

// --- Mock implementations ---

// mockRecordSource implements driven.RecordSource for testing.
type mockRecordSource struct {
	results []domain.FileResult
	err     error
}

func (m *mockRecordSource) Fetch(_ context.Context) ([]domain.FileResult, error) {
	return m.results, m.err
}

// mockMetadataProvider implements driven.MetadataProvider for testing.
// It answers from catalogue and records every batch it receives.
type mockMetadataProvider struct {
	catalogue map[string]domain.VideoMetadata
	failOn    string
	err       error

	mu      sync.Mutex
	batches [][]string
}

func (m *mockMetadataProvider) VideoMetadata(ctx context.Context, ids []string) ([]domain.VideoMetadata, error) {
	m.mu.Lock()
	m.batches = append(m.batches, append([]string(nil), ids...))
	m.mu.Unlock()

	for _, id := range ids {
		if m.err != nil && (m.failOn == "" || id == m.failOn) {
			return nil, m.err
		}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var out []domain.VideoMetadata
	for _, id := range ids {
		if meta, ok := m.catalogue[id]; ok {
			out = append(out, meta)
		}
	}
	return out, nil
}

func (m *mockMetadataProvider) calls() [][]string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.batches
}

var (
	_ driven.RecordSource     = (*mockRecordSource)(nil)
	_ driven.MetadataProvider = (*mockMetadataProvider)(nil)
)

// fileOK builds a successful FileResult.
func fileOK(path string, records ...domain.Record) domain.FileResult {
	return domain.FileResult{Path: path, Records: records}
}

// fileErr builds a failed FileResult.
func fileErr(path string, err error) domain.FileResult {
	return domain.FileResult{Path: path, Err: err}
}

func rec(videoID, ts string) domain.Record {
	return domain.Record{Views: 1, Likes: 1, Comments: 1, Timestamp: ts, VideoID: videoID}
}
