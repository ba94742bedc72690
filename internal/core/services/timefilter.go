package services

import (
	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// FilterByTime returns the records whose timestamp lies within r, bounds
// included. Records with unparseable timestamps are dropped. A nil or
// unbounded range returns records unchanged.
func FilterByTime(records []domain.Record, r *domain.TimeRange) []domain.Record {
	if r == nil || r.IsUnbounded() {
		return records
	}

	out := make([]domain.Record, 0, len(records))
	for _, rec := range records {
		t, err := domain.ParseTimestamp(rec.Timestamp)
		if err != nil {
			continue
		}
		if r.Contains(t) {
			out = append(out, rec)
		}
	}
	return out
}
