package configs

// Segment configures the cohort segmentation engine. The filters are
// applied in a fixed order: minimum view count, then exclusion of recent
// applicants, then the percentile cut over the surviving users.
type Segment struct {
	// WindowDays is the trailing window length, anchored at the maximum
	// event timestamp in the run.
	WindowDays int `env:"WINDOW_DAYS" envDefault:"7"`

	// MinViews is the minimum number of view events inside the window.
	MinViews int `env:"MIN_VIEWS" envDefault:"3"`

	// Percentile is the dwell-metric cutoff computed over the users that
	// survive the preceding filters.
	Percentile float64 `env:"PERCENTILE" envDefault:"0.8"`

	// Metric selects the dwell aggregate the percentile is computed on:
	// "avg" or "total".
	Metric string `env:"METRIC" envDefault:"avg"`
}
