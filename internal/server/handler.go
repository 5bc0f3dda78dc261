package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pkostin/fieldsync/internal/logger"
	"github.com/pkostin/fieldsync/internal/service"
)

type handler struct {
	service service.BatchService
	logger  *logger.Logger
}

func newHandler(svc service.BatchService, log *logger.Logger) *handler {
	return &handler{service: svc, logger: log}
}

func (h *handler) routes() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Get("/debug/sync/stats", h.getSyncStats)
	router.Post("/debug/sync/retry", h.retryFailed)

	return router
}

func (h *handler) getSyncStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.GetSyncStats(r.Context())
	if err != nil {
		h.logger.Err(err).Str("func", "handler.getSyncStats").Msg("failed to read sync stats")
		http.Error(w, "failed to read sync stats", http.StatusInternalServerError)
		return
	}

	writeJSON(w, stats, http.StatusOK)
}

func (h *handler) retryFailed(w http.ResponseWriter, r *http.Request) {
	reset, err := h.service.RetryFailed(r.Context())
	if err != nil {
		h.logger.Err(err).Str("func", "handler.retryFailed").Msg("failed to reschedule failed items")
		http.Error(w, "failed to reschedule failed items", http.StatusInternalServerError)
		return
	}

	writeJSON(w, retryResponse{Reset: reset}, http.StatusOK)
}

type retryResponse struct {
	Reset int64 `json:"reset"`
}

func writeJSON(w http.ResponseWriter, v any, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
