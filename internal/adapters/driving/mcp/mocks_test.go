package mcp

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// mockPerformanceService is a mock implementation of driving.PerformanceService.
type mockPerformanceService struct {
	records   []domain.EnrichedRecord
	err       error
	lastQuery domain.PerformanceQuery
	calls     int
}

func (m *mockPerformanceService) Performance(
	_ context.Context,
	query domain.PerformanceQuery,
) ([]domain.EnrichedRecord, error) {
	m.calls++
	m.lastQuery = query
	return m.records, m.err
}

func sampleRecords() []domain.EnrichedRecord {
	return []domain.EnrichedRecord{
		{Views: 100, Likes: 10, Comments: 2, Timestamp: "2024-01-01T00:00:00Z", VideoID: "vid1", Title: "T1", Thumbnail: "u1"},
		{Views: 50, Likes: 5, Comments: 1, Timestamp: "2024-01-01T00:00:00Z", VideoID: "vid2", Title: domain.UnknownTitle},
		{Views: 120, Likes: 12, Comments: 3, Timestamp: "2024-01-02T00:00:00Z", VideoID: "vid1", Title: "T1", Thumbnail: "u1"},
	}
}
