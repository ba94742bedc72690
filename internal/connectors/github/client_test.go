package github

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ytstats/internal/adapters/driven/auth"
	"github.com/custodia-labs/ytstats/internal/core/domain"
)

func newTestClient(t *testing.T, token string, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(auth.NewTokenProvider(token), ClientOptions{
		BaseURL:           srv.URL,
		RequestsPerSecond: 1000,
	})
}

func TestClient_GetRawContent(t *testing.T) {
	t.Run("requests raw media type with ref", func(t *testing.T) {
		var gotPath, gotAccept, gotAuth, gotRef string
		client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			gotAccept = r.Header.Get("Accept")
			gotAuth = r.Header.Get("Authorization")
			gotRef = r.URL.Query().Get("ref")
			_, _ = w.Write([]byte(`[[1,2,3,"t","v"]]`))
		})

		data, err := client.GetRawContent(context.Background(), "acme", "stats", "data/mostliked.json", "main")

		require.NoError(t, err)
		assert.Equal(t, `[[1,2,3,"t","v"]]`, string(data))
		assert.Equal(t, "/repos/acme/stats/contents/data/mostliked.json", gotPath)
		assert.Equal(t, MediaTypeRaw, gotAccept)
		assert.Equal(t, "Bearer secret", gotAuth)
		assert.Equal(t, "main", gotRef)
	})

	t.Run("anonymous without token", func(t *testing.T) {
		var gotAuth string
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.GetRawContent(context.Background(), "acme", "stats", "mostliked.json", "")

		require.NoError(t, err)
		assert.Empty(t, gotAuth)
	})

	t.Run("not found maps to APIError", func(t *testing.T) {
		client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message":"Not Found"}`))
		})

		_, err := client.GetRawContent(context.Background(), "acme", "stats", "missing.json", "")

		require.Error(t, err)
		assert.True(t, IsNotFound(err))
		assert.False(t, IsUnauthorized(err))
		assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
	})

	t.Run("bad credentials map to unauthorized", func(t *testing.T) {
		client := newTestClient(t, "wrong", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
		})

		_, err := client.GetRawContent(context.Background(), "acme", "stats", "mostliked.json", "")

		require.Error(t, err)
		assert.True(t, IsUnauthorized(err))
	})

	t.Run("rate limit response maps to RateLimitError", func(t *testing.T) {
		reset := time.Now().Add(time.Hour).Unix()
		client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set(HeaderRateLimit, "5000")
			w.Header().Set(HeaderRateRemaining, "0")
			w.Header().Set(HeaderRateReset, strconv.FormatInt(reset, 10))
			w.WriteHeader(http.StatusForbidden)
			_, _ = w.Write([]byte(`{"message":"API rate limit exceeded for user ID 1."}`))
		})

		_, err := client.GetRawContent(context.Background(), "acme", "stats", "mostliked.json", "")

		require.Error(t, err)
		assert.True(t, IsRateLimited(err))
		assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
		assert.Equal(t, 0, client.RateLimiter().Remaining())
	})

	t.Run("escapes path segments", func(t *testing.T) {
		var gotPath string
		client := newTestClient(t, "", func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			_, _ = w.Write([]byte(`[]`))
		})

		_, err := client.GetRawContent(context.Background(), "acme", "stats", "/my stats/mostliked.json", "")

		require.NoError(t, err)
		assert.Equal(t, "/repos/acme/stats/contents/my stats/mostliked.json", gotPath)
	})
}

func TestClient_ListDirectory(t *testing.T) {
	t.Run("returns directory entries", func(t *testing.T) {
		client := newTestClient(t, "secret", func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/repos/acme/stats/contents/data", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"type":"file","name":"mostliked.json","path":"data/mostliked.json"},
				{"type":"dir","name":"archive","path":"data/archive"}
			]`))
		})

		entries, err := client.ListDirectory(context.Background(), "acme", "stats", "data", "")

		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "mostliked.json", entries[0].GetName())
		assert.Equal(t, "dir", entries[1].GetType())
	})

	t.Run("file instead of directory is a validation error", func(t *testing.T) {
		client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"type":"file","name":"data","path":"data"}`))
		})

		_, err := client.ListDirectory(context.Background(), "acme", "stats", "data", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("server error is an upstream failure", func(t *testing.T) {
		client := newTestClient(t, "secret", func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		})

		_, err := client.ListDirectory(context.Background(), "acme", "stats", "data", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrUpstreamFetch)
	})
}
