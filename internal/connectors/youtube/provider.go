package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"
	"google.golang.org/api/youtube/v3"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
	"github.com/custodia-labs/ytstats/internal/logger"
	"github.com/custodia-labs/ytstats/internal/metrics"
)

// Verify interface compliance.
var _ driven.MetadataProvider = (*Provider)(nil)

// DefaultCallTimeout bounds one videos.list call.
const DefaultCallTimeout = 10 * time.Second

// snippetPart is the only resource part requested; it carries title and thumbnails.
var snippetPart = []string{"snippet"}

// Options tunes a Provider. Zero values take package defaults.
type Options struct {
	RateLimit       RateLimitConfig
	BreakerFailures uint32
	BreakerTimeout  time.Duration
	Timeout         time.Duration
}

// Provider fetches video metadata from the YouTube Data API.
// It is safe for concurrent use.
type Provider struct {
	svc     *youtube.Service
	limiter *RateLimiter
	breaker *gobreaker.CircuitBreaker[*youtube.VideoListResponse]
	timeout time.Duration
}

// NewProvider creates a metadata provider on top of svc.
func NewProvider(svc *youtube.Service, opts Options) *Provider {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return &Provider{
		svc:     svc,
		limiter: NewRateLimiter(opts.RateLimit),
		breaker: newBreaker(opts.BreakerFailures, opts.BreakerTimeout),
		timeout: timeout,
	}
}

// VideoMetadata fetches title and thumbnail for up to driven.MaxMetadataBatch ids
// in one call. Ids the API does not know are absent from the result.
func (p *Provider) VideoMetadata(ctx context.Context, ids []string) ([]domain.VideoMetadata, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	if len(ids) > driven.MaxMetadataBatch {
		return nil, fmt.Errorf("%w: %w: %d > %d", domain.ErrInvalidInput, ErrTooManyIDs, len(ids), driven.MaxMetadataBatch)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limit wait: %w", domain.ErrUpstreamFetch, err)
	}

	resp, err := p.breaker.Execute(func() (*youtube.VideoListResponse, error) {
		return p.list(ctx, ids)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			logger.Ctx(ctx).Warn().Err(err).Msg("youtube request rejected by circuit breaker")
			return nil, fmt.Errorf("%w: youtube: %w", domain.ErrUpstreamFetch, err)
		}
		return nil, err
	}

	out := make([]domain.VideoMetadata, 0, len(resp.Items))
	for _, item := range resp.Items {
		if item == nil || item.Id == "" {
			continue
		}
		out = append(out, toMetadata(item))
	}

	logger.Ctx(ctx).Debug().
		Int("requested", len(ids)).
		Int("found", len(out)).
		Msg("fetched video metadata")

	return out, nil
}

// list issues one videos.list call under the per-call timeout.
func (p *Provider) list(ctx context.Context, ids []string) (*youtube.VideoListResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	start := time.Now()
	resp, err := p.svc.Videos.List(snippetPart).
		Id(ids...).
		MaxResults(int64(driven.MaxMetadataBatch)).
		Context(callCtx).
		Do()
	metrics.ObserveUpstream(metrics.UpstreamYouTube, time.Since(start).Seconds(), err)
	if err != nil {
		if IsRateLimited(err) {
			p.limiter.RecordRateLimitError(retryAfter(err))
		}
		return nil, WrapError(err)
	}
	return resp, nil
}

func toMetadata(v *youtube.Video) domain.VideoMetadata {
	meta := domain.VideoMetadata{VideoID: v.Id}
	if v.Snippet == nil {
		return meta
	}
	meta.Title = v.Snippet.Title
	meta.Thumbnail = bestThumbnail(v.Snippet.Thumbnails)
	return meta
}

// bestThumbnail prefers high, then medium, then default resolution.
func bestThumbnail(t *youtube.ThumbnailDetails) string {
	if t == nil {
		return ""
	}
	for _, th := range []*youtube.Thumbnail{t.High, t.Medium, t.Default} {
		if th != nil && th.Url != "" {
			return th.Url
		}
	}
	return ""
}
