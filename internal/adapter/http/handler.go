package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"alba-sim/internal/core/port"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP serving report queries over a persisted run. It holds a
// ReportUseCase to execute business logic and a logger for structured
// logging. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc    port.ReportUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. It accepts a
// ReportUseCase implementation and a logger. The returned Handler registers
// handlers for each endpoint on a new chi.Router.
func NewHandler(svc port.ReportUseCase, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, logger: logger}
	r := chi.NewRouter()

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/stats/funnel", h.handleFunnelStats)
		r.Get("/stats/experiment", h.handleExperimentStats)
		r.Get("/experiment/sample-size", h.handleSampleSize)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
