package domain

// CohortRecord holds per-user engagement aggregates over the trailing
// segmentation window. Records are derived from the event stream and
// recomputed on every run.
type CohortRecord struct {
	UserID     string
	ViewCount  int
	TotalDwell float64
	AvgDwell   float64
}
