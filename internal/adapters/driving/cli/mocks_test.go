package cli

import (
	"context"
	"testing"

	"github.com/custodia-labs/ytstats/internal/config"
	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// mockPerformanceService records the query it was called with.
type mockPerformanceService struct {
	records []domain.EnrichedRecord
	err     error
	calls   int
	query   domain.PerformanceQuery
}

func (m *mockPerformanceService) Performance(
	_ context.Context, query domain.PerformanceQuery,
) ([]domain.EnrichedRecord, error) {
	m.calls++
	m.query = query
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func testConfig() *config.Config {
	c := config.Default()
	c.GitHub.Repo = "acme/stats"
	c.YouTube.APIKey = "test-key"
	return c
}

// useService installs svc and a static config for the duration of the test.
func useService(t *testing.T, svc *mockPerformanceService) {
	t.Helper()

	oldService, oldCfg, oldLoad := performanceService, cfg, loadConfig
	performanceService = svc
	loadConfig = func(string) (*config.Config, error) { return testConfig(), nil }
	t.Cleanup(func() {
		performanceService, cfg, loadConfig = oldService, oldCfg, oldLoad
		rootCmd.SetArgs(nil)
	})
}

func sampleRecords() []domain.EnrichedRecord {
	return []domain.EnrichedRecord{
		{Views: 100, Likes: 10, Comments: 1, Timestamp: "2024-01-05T00:00:00Z", VideoID: "vid1", Title: "First", Thumbnail: "h1"},
		{Views: 50, Likes: 5, Comments: 0, Timestamp: "2024-01-06T00:00:00Z", VideoID: "vid2", Title: domain.UnknownTitle},
	}
}
