package port

import (
	"context"
	"time"
)

// ReportUseCase exposes read-only analytics over a persisted run. This is
// the primary port consumed by the HTTP layer.
type ReportUseCase interface {
	// GetFunnelStats returns per-stage event counts and stepwise
	// conversion ratios for the given period.
	GetFunnelStats(ctx context.Context, req StatsReq) (*FunnelStats, error)

	// GetExperimentStats returns per-arm send and application counts for
	// the generated campaign.
	GetExperimentStats(ctx context.Context) ([]ArmStats, error)

	// SampleSize returns the required per-group sample size for a
	// two-proportion test detecting mde over baseline.
	SampleSize(req SampleSizeReq) (SampleSizeResp, error)
}

// ReportRepository is the outbound port backing ReportUseCase with stored
// run data.
type ReportRepository interface {
	CountEventsByKind(ctx context.Context, req StatsReq) (map[string]int64, error)
	ExperimentStatsByArm(ctx context.Context) ([]ArmStats, error)
}

// StatsReq bounds a report query to a time period.
type StatsReq struct {
	From time.Time
	To   time.Time
}

// FunnelStats aggregates the event funnel over a period. ClickRate is
// clicks/views and SubmitRate submits/clicks; both are 0 when the
// denominator is 0.
type FunnelStats struct {
	Views      int64   `json:"views"`
	Clicks     int64   `json:"clicks"`
	Submits    int64   `json:"submits"`
	ClickRate  float64 `json:"click_rate"`
	SubmitRate float64 `json:"submit_rate"`
}

// ArmStats aggregates campaign outcomes for one experiment arm.
type ArmStats struct {
	Arm       string  `json:"arm"`
	Sends     int64   `json:"sends"`
	Applied   int64   `json:"applied"`
	ApplyRate float64 `json:"apply_rate"`
}

// SampleSizeReq holds the design parameters of a two-proportion test.
type SampleSizeReq struct {
	Baseline float64
	MDE      float64
	Alpha    float64
	Power    float64
}

// SampleSizeResp is the computed sample-size requirement.
type SampleSizeResp struct {
	Baseline   float64 `json:"baseline"`
	TargetRate float64 `json:"target_rate"`
	Alpha      float64 `json:"alpha"`
	Power      float64 `json:"power"`
	PerGroup   int     `json:"per_group"`
	Total      int     `json:"total"`
}
