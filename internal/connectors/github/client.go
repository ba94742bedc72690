package github

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	gh "github.com/google/go-github/v80/github"
	"golang.org/x/oauth2"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driven"
	"github.com/custodia-labs/ytstats/internal/metrics"
)

const (
	// DefaultTimeout bounds every HTTP exchange made by the client.
	DefaultTimeout = 30 * time.Second

	// MediaTypeRaw asks the contents API for the file bytes instead of JSON.
	MediaTypeRaw = "application/vnd.github.v3.raw"
)

// ClientOptions tunes a Client.
type ClientOptions struct {
	// BaseURL overrides the API root, e.g. for GitHub Enterprise or tests.
	BaseURL string

	// RequestsPerSecond is the proactive throttle rate. Zero uses the default.
	RequestsPerSecond float64
}

// Client wraps the go-github client with helper methods.
type Client struct {
	mu            sync.Mutex
	gh            *gh.Client
	tokenProvider driven.TokenProvider
	rateLimiter   *RateLimiter
	baseURL       string
}

// NewClient creates a new GitHub API client with a token provider.
// The underlying HTTP client is built lazily on first use.
func NewClient(tokenProvider driven.TokenProvider, opts ClientOptions) *Client {
	return &Client{
		tokenProvider: tokenProvider,
		rateLimiter:   NewRateLimiter(opts.RequestsPerSecond),
		baseURL:       opts.BaseURL,
	}
}

// ensureClient initializes the go-github client if not already done.
// This is called lazily so we can get the token when needed.
func (c *Client) ensureClient(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.gh != nil {
		return nil
	}

	token, err := c.tokenProvider.GetToken(ctx)
	if err != nil {
		return fmt.Errorf("get token: %w", err)
	}

	var hc *http.Client
	if token == "" {
		hc = &http.Client{Timeout: DefaultTimeout}
	} else {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), ts)
		hc.Timeout = DefaultTimeout
	}

	client := gh.NewClient(hc)
	if c.baseURL != "" {
		base := c.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return fmt.Errorf("parse base url: %w", err)
		}
		client.BaseURL = u
	}
	c.gh = client

	return nil
}

// GetRawContent fetches a file's bytes through the contents API.
// The raw media type skips base64 encoding and the 1MB JSON limit.
func (c *Client) GetRawContent(ctx context.Context, owner, repo, path, ref string) ([]byte, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	u := fmt.Sprintf("repos/%s/%s/contents/%s", owner, repo, escapePath(path))
	if ref != "" {
		u += "?ref=" + url.QueryEscape(ref)
	}

	req, err := c.gh.NewRequest(http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", MediaTypeRaw)

	var buf bytes.Buffer
	start := time.Now()
	resp, err := c.gh.Do(ctx, req, &buf)
	metrics.ObserveUpstream(metrics.UpstreamGitHub, time.Since(start).Seconds(), err)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "get raw contents")
	}

	return buf.Bytes(), nil
}

// ListDirectory lists the entries of a repository directory.
// An empty path lists the repository root.
func (c *Client) ListDirectory(
	ctx context.Context, owner, repo, path, ref string,
) ([]*gh.RepositoryContent, error) {
	if err := c.ensureClient(ctx); err != nil {
		return nil, err
	}

	if err := c.rateLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	opts := &gh.RepositoryContentGetOptions{Ref: ref}
	start := time.Now()
	file, dir, resp, err := c.gh.Repositories.GetContents(ctx, owner, repo, path, opts)
	metrics.ObserveUpstream(metrics.UpstreamGitHub, time.Since(start).Seconds(), err)
	c.updateRateLimitFromResponse(resp)
	if err != nil {
		return nil, c.wrapError(err, "list directory")
	}

	if dir == nil && file != nil {
		return nil, fmt.Errorf("%w: %q is a file, not a directory", domain.ErrValidation, path)
	}

	return dir, nil
}

// RateLimiter returns the rate limiter for external access.
func (c *Client) RateLimiter() *RateLimiter {
	return c.rateLimiter
}

// updateRateLimitFromResponse updates the rate limiter from GitHub response headers.
func (c *Client) updateRateLimitFromResponse(resp *gh.Response) {
	if resp == nil || resp.Response == nil {
		return
	}
	c.rateLimiter.UpdateFromResponse(resp.Response)
}

// wrapError converts go-github errors to our error types.
func (c *Client) wrapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	var rateLimitErr *gh.RateLimitError
	if errors.As(err, &rateLimitErr) {
		return &RateLimitError{
			ResetAt:   rateLimitErr.Rate.Reset.Time,
			Remaining: rateLimitErr.Rate.Remaining,
			Limit:     rateLimitErr.Rate.Limit,
		}
	}

	var ghErr *gh.ErrorResponse
	if errors.As(err, &ghErr) && ghErr.Response != nil {
		apiErr := &APIError{
			StatusCode: ghErr.Response.StatusCode,
			Message:    ghErr.Message,
		}
		if ghErr.Response.Request != nil {
			apiErr.URL = ghErr.Response.Request.URL.String()
		}
		return apiErr
	}

	return fmt.Errorf("%w: %s: %w", domain.ErrUpstreamFetch, operation, err)
}

// escapePath percent-encodes each segment of a repository path.
func escapePath(path string) string {
	return (&url.URL{Path: strings.Trim(path, "/")}).EscapedPath()
}
