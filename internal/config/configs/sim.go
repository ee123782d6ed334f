package configs

import (
	"time"
)

// Sim configures the synthetic data pipeline: entity counts, the simulated
// time window and the behavioral knobs of the funnel simulator. All values
// are read from SIM_-prefixed environment variables.
type Sim struct {
	// Seed drives every random draw in the pipeline. Two runs with the
	// same seed and configuration produce identical datasets.
	Seed int64 `env:"SEED" envDefault:"42"`

	Users     int `env:"USERS" envDefault:"5000"`
	Employers int `env:"EMPLOYERS" envDefault:"500"`
	Postings  int `env:"POSTINGS" envDefault:"1000"`
	Regions   int `env:"REGIONS" envDefault:"10"`

	// StartDate is the first simulated day (YYYY-MM-DD, UTC). Days is the
	// length of the simulated window.
	StartDate string `env:"START_DATE" envDefault:"2024-01-01"`
	Days      int    `env:"DAYS" envDefault:"30"`

	// PostingLeadDays keeps posting creation at least this many days
	// before the window end so later activity can reference them.
	PostingLeadDays int `env:"POSTING_LEAD_DAYS" envDefault:"1"`

	// PushOptInRate is the fraction of users opted into push messaging.
	PushOptInRate float64 `env:"PUSH_OPTIN_RATE" envDefault:"0.8"`

	// SuppressFraction of postings accept no applications within
	// SuppressWindow after creation.
	SuppressFraction float64       `env:"SUPPRESS_FRACTION" envDefault:"0.3"`
	SuppressWindow   time.Duration `env:"SUPPRESS_WINDOW" envDefault:"24h"`

	// PersonaDist maps persona names to assignment weights. Weights must
	// be non-negative and sum to 1.
	PersonaDist map[string]float64 `env:"PERSONA_DIST" envDefault:"active_seeker:0.1,casual_browser:0.6,hesitator:0.3"`

	// OutputDir receives the CSV files, one per collection.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"data"`
}

// Start parses StartDate as a UTC day.
func (s Sim) Start() (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s.StartDate, time.UTC)
}
