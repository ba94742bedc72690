package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/logger"
)

// Aggregate flattens per-file results into one record sequence, in
// resolution order and then file order, applying the failure policy.
//
// Under FailureLenient failed files are logged and skipped. If files were
// resolved but every one failed, the result is ErrNoRecordsRetrieved so a
// total outage is not reported as an empty data set. Under FailureStrict
// the first failed file aborts the aggregation.
func Aggregate(ctx context.Context, results []domain.FileResult, policy domain.FailurePolicy) ([]domain.Record, error) {
	total := 0
	for _, r := range results {
		total += len(r.Records)
	}
	records := make([]domain.Record, 0, total)

	var failures []error
	for _, r := range results {
		if r.OK() {
			records = append(records, r.Records...)
			continue
		}

		if policy == domain.FailureStrict {
			return nil, fmt.Errorf("aggregate %s: %w", r.Path, r.Err)
		}

		logger.Ctx(ctx).Warn().
			Err(r.Err).
			Str("path", r.Path).
			Msg("skipping source file")
		failures = append(failures, r.Err)
	}

	if len(results) > 0 && len(failures) == len(results) {
		return nil, fmt.Errorf("%w: all %d files failed: %w",
			domain.ErrNoRecordsRetrieved, len(results), errors.Join(failures...))
	}

	return records, nil
}
