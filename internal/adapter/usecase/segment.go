package usecase

import (
	"math"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"alba-sim/internal/core/domain"
)

// segmentCohort aggregates the event stream over the trailing window and
// selects the target audience. It returns the per-user cohort records of
// every user with at least one view in the window, and the subset selected
// by the threshold and percentile filters. Pure and idempotent: identical
// events and configuration always yield the same audience.
func (p *Pipeline) segmentCohort(events []domain.Event) ([]domain.CohortRecord, []domain.CohortRecord) {
	if len(events) == 0 {
		return nil, nil
	}

	// Window anchored at the maximum event timestamp present.
	maxTS := events[0].Timestamp
	for _, e := range events[1:] {
		if e.Timestamp.After(maxTS) {
			maxTS = e.Timestamp
		}
	}
	windowStart := maxTS.Add(-time.Duration(p.seg.WindowDays) * 24 * time.Hour)

	type agg struct {
		views     int
		dwells    []float64
		submitted bool
	}
	byUser := make(map[string]*agg)
	var order []string

	for _, e := range events {
		if e.Timestamp.Before(windowStart) || e.Timestamp.After(maxTS) {
			continue
		}
		a := byUser[e.UserID]
		if a == nil {
			a = &agg{}
			byUser[e.UserID] = a
			order = append(order, e.UserID)
		}
		switch e.Kind {
		case domain.EventView:
			a.views++
			if e.DwellSeconds != nil {
				a.dwells = append(a.dwells, float64(*e.DwellSeconds))
			}
		case domain.EventSubmit:
			a.submitted = true
		}
	}

	// Records cover every user with views in the window, in first-seen
	// order so downstream output is reproducible.
	var records []domain.CohortRecord
	var candidates []domain.CohortRecord
	for _, id := range order {
		a := byUser[id]
		if a.views == 0 {
			continue
		}
		rec := domain.CohortRecord{
			UserID:     id,
			ViewCount:  a.views,
			TotalDwell: floatSum(a.dwells),
			AvgDwell:   stat.Mean(a.dwells, nil),
		}
		records = append(records, rec)

		// Filter 1: minimum engagement. Filter 2: already-converted users
		// are not re-targeted. Order matters, it changes the percentile
		// population below.
		if a.views >= p.seg.MinViews && !a.submitted {
			candidates = append(candidates, rec)
		}
	}

	// Filter 3+4: percentile cut over the surviving candidates only. An
	// empty candidate set has no defined percentile and yields an empty
	// audience rather than an error.
	if len(candidates) == 0 {
		return records, nil
	}
	metrics := make([]float64, len(candidates))
	for i, rec := range candidates {
		metrics[i] = p.dwellMetric(rec)
	}
	sorted := append([]float64(nil), metrics...)
	sort.Float64s(sorted)
	threshold := quantileLinear(sorted, p.seg.Percentile)

	var audience []domain.CohortRecord
	for i, rec := range candidates {
		if metrics[i] >= threshold {
			audience = append(audience, rec)
		}
	}
	return records, audience
}

func (p *Pipeline) dwellMetric(rec domain.CohortRecord) float64 {
	if p.seg.Metric == "total" {
		return rec.TotalDwell
	}
	return rec.AvgDwell
}

func floatSum(xs []float64) float64 {
	s := 0.0
	for _, x := range xs {
		s += x
	}
	return s
}

// quantileLinear computes the p-quantile of an ascending-sorted slice with
// linear interpolation between order statistics. Zero-length input returns
// NaN and a single element is its own quantile; callers guard the empty
// case explicitly.
func quantileLinear(sorted []float64, p float64) float64 {
	n := len(sorted)
	switch n {
	case 0:
		return math.NaN()
	case 1:
		return sorted[0]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	if lo >= n-1 {
		return sorted[n-1]
	}
	frac := h - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}
