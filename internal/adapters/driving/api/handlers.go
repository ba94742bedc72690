package api

import (
	"net/http"

	"github.com/goccy/go-json"

	"github.com/custodia-labs/ytstats/internal/core/domain"
	"github.com/custodia-labs/ytstats/internal/core/ports/driving"
	"github.com/custodia-labs/ytstats/internal/logger"
)

// QueryTimePeriod is the query parameter holding the "start,end" range.
const QueryTimePeriod = "timePeriod"

type handler struct {
	svc driving.PerformanceService
}

// errorResponse is the body of every failed request.
type errorResponse struct {
	Error string `json:"error"`
}

func (h *handler) data(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	rng, err := domain.ParseTimeRange(r.URL.Query().Get(QueryTimePeriod))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	records, err := h.svc.Performance(ctx, domain.PerformanceQuery{Range: rng})
	if err != nil {
		logger.Ctx(ctx).Error().Err(err).Msg("performance request failed")
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if records == nil {
		records = []domain.EnrichedRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusNotFound, "not found")
}

func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeError(w, http.StatusMethodNotAllowed, "method not allowed")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Error().Err(err).Msg("encode response")
		status = http.StatusInternalServerError
		body = []byte(`{"error":"failed to encode response"}`)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
