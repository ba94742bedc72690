package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/ytstats/internal/core/domain"
)

// mockPerformanceService implements driving.PerformanceService for testing.
type mockPerformanceService struct {
	records []domain.EnrichedRecord
	err     error
	panics  bool

	calls     int
	lastQuery domain.PerformanceQuery
}

func (m *mockPerformanceService) Performance(
	_ context.Context, query domain.PerformanceQuery,
) ([]domain.EnrichedRecord, error) {
	m.calls++
	m.lastQuery = query
	if m.panics {
		panic("boom")
	}
	return m.records, m.err
}

func newTestServer(svc *mockPerformanceService, opts Options) http.Handler {
	if opts.CORSOrigins == nil {
		opts.CORSOrigins = []string{"*"}
	}
	return NewServer(svc, opts).Handler()
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, http.NoBody)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestData_Success(t *testing.T) {
	svc := &mockPerformanceService{records: []domain.EnrichedRecord{{
		Views: 100, Likes: 10, Comments: 2,
		Timestamp: "2024-01-01T00:00:00Z", VideoID: "vid1",
		Title: "T1", Thumbnail: "u1",
	}}}
	h := newTestServer(svc, Options{})

	rec := do(t, h, http.MethodGet, "/api/data")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `[{
		"views":100,"likes":10,"comments":2,
		"timestamp":"2024-01-01T00:00:00Z","videoId":"vid1",
		"title":"T1","thumbnail":"u1"
	}]`, rec.Body.String())
	assert.Nil(t, svc.lastQuery.Range)
	assert.NotEmpty(t, rec.Header().Get(HeaderRequestID))
}

func TestData_EmptyResultIsArray(t *testing.T) {
	for name, records := range map[string][]domain.EnrichedRecord{
		"nil":   nil,
		"empty": {},
	} {
		t.Run(name, func(t *testing.T) {
			h := newTestServer(&mockPerformanceService{records: records}, Options{})

			rec := do(t, h, http.MethodGet, "/api/data")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
		})
	}
}

func TestData_TimePeriod(t *testing.T) {
	t.Run("passes parsed range", func(t *testing.T) {
		svc := &mockPerformanceService{}
		h := newTestServer(svc, Options{})

		rec := do(t, h, http.MethodGet, "/api/data?timePeriod=2024-02-01,2024-03-01")

		require.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, svc.lastQuery.Range)
		assert.Equal(t, time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), *svc.lastQuery.Range.Start)
		assert.Equal(t, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), *svc.lastQuery.Range.End)
	})

	t.Run("empty bounds mean no filter", func(t *testing.T) {
		svc := &mockPerformanceService{}
		h := newTestServer(svc, Options{})

		rec := do(t, h, http.MethodGet, "/api/data?timePeriod=,")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Nil(t, svc.lastQuery.Range)
	})

	t.Run("malformed bound is a bad request", func(t *testing.T) {
		svc := &mockPerformanceService{}
		h := newTestServer(svc, Options{})

		rec := do(t, h, http.MethodGet, "/api/data?timePeriod=soon,")

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Zero(t, svc.calls)
		var body errorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Contains(t, body.Error, "invalid input")
	})
}

func TestData_PipelineError(t *testing.T) {
	err := fmt.Errorf("%w: all 2 files failed", domain.ErrNoRecordsRetrieved)
	h := newTestServer(&mockPerformanceService{err: err}, Options{})

	rec := do(t, h, http.MethodGet, "/api/data")

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"no source files could be retrieved: all 2 files failed"}`, rec.Body.String())
}

func TestData_PanicRecovered(t *testing.T) {
	h := newTestServer(&mockPerformanceService{panics: true}, Options{})

	rec := do(t, h, http.MethodGet, "/api/data")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRouting(t *testing.T) {
	h := newTestServer(&mockPerformanceService{}, Options{})

	t.Run("health", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/healthz")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
	})

	t.Run("metrics", func(t *testing.T) {
		_ = do(t, h, http.MethodGet, "/api/data")
		rec := do(t, h, http.MethodGet, "/metrics")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `http_requests_total{method="GET",route="/api/data",status="200"}`)
	})

	t.Run("unknown path", func(t *testing.T) {
		rec := do(t, h, http.MethodGet, "/api/nope")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.JSONEq(t, `{"error":"not found"}`, rec.Body.String())
	})

	t.Run("wrong method", func(t *testing.T) {
		rec := do(t, h, http.MethodPost, "/api/data")

		assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	})

	t.Run("request id is echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/healthz", http.NoBody)
		req.Header.Set(HeaderRequestID, "abc-123")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, "abc-123", rec.Header().Get(HeaderRequestID))
	})
}

func TestCORS(t *testing.T) {
	h := newTestServer(&mockPerformanceService{}, Options{CORSOrigins: []string{"https://dash.example.com"}})

	req := httptest.NewRequest(http.MethodGet, "/api/data", http.NoBody)
	req.Header.Set("Origin", "https://dash.example.com")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, "https://dash.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/api/data", http.NoBody)
	req.Header.Set("Origin", "https://evil.example.com")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestRateLimit(t *testing.T) {
	svc := &mockPerformanceService{}
	h := newTestServer(svc, Options{RateLimitRequests: 2, RateLimitWindow: time.Minute})

	for i := 0; i < 2; i++ {
		rec := do(t, h, http.MethodGet, "/api/data")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	rec := do(t, h, http.MethodGet, "/api/data")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.JSONEq(t, `{"error":"rate limit exceeded"}`, rec.Body.String())
	assert.Equal(t, 2, svc.calls)

	t.Run("health is not limited", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/healthz").Code)
	})
}

func TestServer_Serve(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	srv := NewServer(&mockPerformanceService{}, Options{ShutdownTimeout: time.Second})
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/healthz")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, string(body))

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestServer_RunBadAddr(t *testing.T) {
	srv := NewServer(&mockPerformanceService{}, Options{Addr: "256.0.0.1:-1"})

	err := srv.Run(context.Background())

	require.Error(t, err)
	assert.False(t, errors.Is(err, http.ErrServerClosed))
}
