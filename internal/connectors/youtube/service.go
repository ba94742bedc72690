package youtube

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
)

// NewService creates a YouTube Data API service authenticated by the API key
// that keys supplies. A non-empty baseURL replaces the API endpoint.
func NewService(ctx context.Context, keys driven.TokenProvider, baseURL string) (*youtube.Service, error) {
	key, err := keys.GetToken(ctx)
	if err != nil {
		return nil, fmt.Errorf("get api key: %w", err)
	}

	opts := []option.ClientOption{option.WithAPIKey(key)}
	if baseURL != "" {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		opts = append(opts, option.WithEndpoint(baseURL))
	}

	svc, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("create youtube service: %w", err)
	}
	return svc, nil
}
