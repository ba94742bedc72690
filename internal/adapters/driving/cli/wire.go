package cli

import (
	"context"
	"fmt"

	"github.com/custodia-labs/ytstats/internal/adapters/driven/auth"
	"github.com/custodia-labs/ytstats/internal/config"
	"github.com/custodia-labs/ytstats/internal/connectors/github"
	"github.com/custodia-labs/ytstats/internal/connectors/youtube"
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
	"github.com/custodia-labs/ytstats/internal/core/services"
)

// newPerformanceService wires the GitHub record source and the YouTube
// metadata provider into the performance pipeline.
func newPerformanceService(ctx context.Context, c *config.Config) (driving.PerformanceService, error) {
	pattern, err := c.GitHub.Pattern()
	if err != nil {
		return nil, fmt.Errorf("compiling file pattern: %w", err)
	}

	client := github.NewClient(auth.NewTokenProvider(c.GitHub.Token), github.ClientOptions{
		BaseURL: c.GitHub.BaseURL,
	})
	source, err := github.NewSource(client, github.Config{
		Owner:          c.GitHub.Owner(),
		Repo:           c.GitHub.Name(),
		Ref:            c.GitHub.Ref,
		Files:          c.GitHub.Files,
		Directory:      c.GitHub.Directory,
		Pattern:        pattern,
		MaxConcurrency: c.GitHub.MaxConcurrency,
		Timeout:        c.Pipeline.UpstreamTimeout,
	})
	if err != nil {
		return nil, err
	}

	svc, err := youtube.NewService(ctx, auth.NewAPIKeyProvider(c.YouTube.APIKey), c.YouTube.BaseURL)
	if err != nil {
		return nil, err
	}
	provider := youtube.NewProvider(svc, youtube.Options{
		RateLimit: youtube.RateLimitConfig{
			RequestsPerSecond: c.YouTube.RequestsPerSecond,
			BurstSize:         c.YouTube.Burst,
		},
		BreakerFailures: c.YouTube.BreakerFailures,
		BreakerTimeout:  c.YouTube.BreakerTimeout,
		Timeout:         c.Pipeline.UpstreamTimeout,
	})

	return services.NewPerformanceService(source, provider, c.Pipeline.Policy()), nil
}
