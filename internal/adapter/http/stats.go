package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"alba-sim/internal/core/port"
)

// handleFunnelStats returns per-stage event counts and stepwise conversion
// ratios over a specified period. It accepts optional `from`, `to`
// (RFC3339 timestamps) query parameters; with neither given the whole run
// is covered. Invalid parameters result in HTTP 400. Internal errors
// produce HTTP 500. On success it writes a JSON representation of the
// stats.
func (h *Handler) handleFunnelStats(w http.ResponseWriter, r *http.Request) {
	var (
		q       = r.URL.Query()
		fromStr = q.Get("from")
		toStr   = q.Get("to")
		req     port.StatsReq
		err     error
	)

	if fromStr != "" {
		req.From, err = time.Parse(time.RFC3339, fromStr)
		if err != nil {
			http.Error(w, "invalid 'from' timestamp", http.StatusBadRequest)
			return
		}
	}

	if toStr != "" {
		req.To, err = time.Parse(time.RFC3339, toStr)
		if err != nil {
			http.Error(w, "invalid 'to' timestamp", http.StatusBadRequest)
			return
		}
	} else {
		req.To = time.Now()
	}

	stats, err := h.svc.GetFunnelStats(r.Context(), req)
	if err != nil {
		h.logger.Error("funnel stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// handleExperimentStats returns per-arm campaign send and application
// counts for the generated experiment.
func (h *Handler) handleExperimentStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetExperimentStats(r.Context())
	if err != nil {
		h.logger.Error("experiment stats error", slog.Any("error", err))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(stats); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
