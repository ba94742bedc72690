package github

import (
	"context"
	"fmt"
	"path"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
	"github.com/custodia-labs/ytstats/internal/logger"
	"github.com/custodia-labs/ytstats/internal/metrics"
)

// Verify interface compliance.
var _ driven.RecordSource = (*Source)(nil)

// contentFetcher is the subset of Client used by Source.
type contentFetcher interface {
	GetRawContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error)
	ListDirectory(ctx context.Context, owner, repo, path, ref string) ([]string, error)
}

// Source reads performance files from a GitHub repository.
type Source struct {
	client contentFetcher
	cfg    Config
}

// NewSource creates a record source backed by client.
func NewSource(client *Client, cfg Config) (*Source, error) {
	return newSource(&listingAdapter{client: client}, cfg)
}

func newSource(client contentFetcher, cfg Config) (*Source, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Source{client: client, cfg: cfg}, nil
}

// Fetch resolves the configured files and retrieves them in parallel.
// Per-file failures are reported in the results; only a failed directory
// listing is returned as an error. Results keep resolution order.
func (s *Source) Fetch(ctx context.Context) ([]domain.FileResult, error) {
	paths, err := s.resolve(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]domain.FileResult, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.MaxConcurrency)

	for i, p := range paths {
		g.Go(func() error {
			results[i] = s.fetchFile(gctx, p)
			return nil
		})
	}
	// Workers never return errors; per-file failures live in results.
	_ = g.Wait()

	return results, nil
}

// resolve returns the file paths to retrieve.
func (s *Source) resolve(ctx context.Context) ([]string, error) {
	if !s.cfg.UsesDirectory() {
		return s.cfg.Files, nil
	}

	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	names, err := s.client.ListDirectory(callCtx, s.cfg.Owner, s.cfg.Repo, s.cfg.Directory, s.cfg.Ref)
	if err != nil {
		return nil, fmt.Errorf("list %s/%s/%s: %w", s.cfg.Owner, s.cfg.Repo, s.cfg.Directory, err)
	}

	paths := make([]string, 0, len(names))
	for _, name := range names {
		if s.cfg.Pattern.MatchString(name) {
			paths = append(paths, path.Join(s.cfg.Directory, name))
		}
	}

	logger.Ctx(ctx).Debug().
		Str("directory", s.cfg.Directory).
		Int("entries", len(names)).
		Int("matched", len(paths)).
		Msg("resolved source files")

	return paths, nil
}

func (s *Source) fetchFile(ctx context.Context, p string) domain.FileResult {
	callCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	result := domain.FileResult{Path: p}

	data, err := s.client.GetRawContent(callCtx, s.cfg.Owner, s.cfg.Repo, p, s.cfg.Ref)
	if err != nil {
		result.Err = fmt.Errorf("fetch %s: %w", p, err)
		metrics.SourceFilesTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return result
	}

	records, skipped, err := DecodeRecords(data)
	if err != nil {
		result.Err = fmt.Errorf("decode %s: %w", p, err)
		metrics.SourceFilesTotal.WithLabelValues(metrics.OutcomeFailure).Inc()
		return result
	}

	if skipped > 0 {
		logger.Ctx(ctx).Warn().
			Str("path", p).
			Int("skipped", skipped).
			Msg("dropped malformed records")
	}

	result.Records = records
	result.Skipped = skipped
	metrics.SourceFilesTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	return result
}

// listingAdapter narrows directory listings to file names.
type listingAdapter struct {
	client *Client
}

func (a *listingAdapter) GetRawContent(ctx context.Context, owner, repo, p, ref string) ([]byte, error) {
	return a.client.GetRawContent(ctx, owner, repo, p, ref)
}

// ListDirectory returns the names of regular files, in listing order.
func (a *listingAdapter) ListDirectory(ctx context.Context, owner, repo, p, ref string) ([]string, error) {
	entries, err := a.client.ListDirectory(ctx, owner, repo, p, ref)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.GetType() != "file" {
			continue
		}
		names = append(names, e.GetName())
	}
	return names, nil
}
