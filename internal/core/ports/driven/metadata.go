package driven

import (
	"context"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// MaxMetadataBatch is the most ids a MetadataProvider accepts per call.
const MaxMetadataBatch = 50

// MetadataProvider fetches display metadata from the video platform.
type MetadataProvider interface {
	// VideoMetadata returns metadata for up to MaxMetadataBatch ids.
	// Unknown ids are omitted from the result; order is not significant.
	VideoMetadata(ctx context.Context, ids []string) ([]domain.VideoMetadata, error)
}
