package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"alba-sim/internal/core/port"
)

// handleSampleSize computes the per-group sample size required to detect a
// lift of `mde` over `baseline` with the given `alpha` and `power`.
// Baseline and mde are required; alpha defaults to 0.05 and power to 0.8.
// Parameter violations produce HTTP 400 with the validation message.
func (h *Handler) handleSampleSize(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := port.SampleSizeReq{Alpha: 0.05, Power: 0.8}

	var err error
	if req.Baseline, err = strconv.ParseFloat(q.Get("baseline"), 64); err != nil {
		http.Error(w, "invalid 'baseline' rate", http.StatusBadRequest)
		return
	}
	if req.MDE, err = strconv.ParseFloat(q.Get("mde"), 64); err != nil {
		http.Error(w, "invalid 'mde' lift", http.StatusBadRequest)
		return
	}
	if s := q.Get("alpha"); s != "" {
		if req.Alpha, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, "invalid 'alpha' level", http.StatusBadRequest)
			return
		}
	}
	if s := q.Get("power"); s != "" {
		if req.Power, err = strconv.ParseFloat(s, 64); err != nil {
			http.Error(w, "invalid 'power' level", http.StatusBadRequest)
			return
		}
	}

	resp, err := h.svc.SampleSize(req)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
