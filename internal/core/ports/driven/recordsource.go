package driven

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// RecordSource retrieves raw performance records from an external file store.
type RecordSource interface {
	// Fetch resolves the configured locations and retrieves every file.
	// It returns one FileResult per resolved file, in resolution order.
	// Per-file failures are reported in FileResult.Err; the returned error
	// is reserved for failures that prevent resolution itself.
	Fetch(ctx context.Context) ([]domain.FileResult, error)
}
