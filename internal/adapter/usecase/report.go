package usecase

import (
	"context"

	"alba-sim/internal/core/domain"
	"alba-sim/internal/core/port"
)

// ReportService provides read-only analytics over a persisted run. It
// implements port.ReportUseCase on top of a ReportRepository.
type ReportService struct {
	repo port.ReportRepository
}

// NewReportService creates a report service backed by the given repository.
func NewReportService(repo port.ReportRepository) *ReportService {
	return &ReportService{repo: repo}
}

// GetFunnelStats returns per-stage event counts and stepwise conversion
// ratios for the period. Ratios are 0 when their denominator is 0.
func (s *ReportService) GetFunnelStats(ctx context.Context, req port.StatsReq) (*port.FunnelStats, error) {
	counts, err := s.repo.CountEventsByKind(ctx, req)
	if err != nil {
		return nil, err
	}
	stats := &port.FunnelStats{
		Views:   counts[string(domain.EventView)],
		Clicks:  counts[string(domain.EventClick)],
		Submits: counts[string(domain.EventSubmit)],
	}
	if stats.Views > 0 {
		stats.ClickRate = float64(stats.Clicks) / float64(stats.Views)
	}
	if stats.Clicks > 0 {
		stats.SubmitRate = float64(stats.Submits) / float64(stats.Clicks)
	}
	return stats, nil
}

// GetExperimentStats returns per-arm campaign outcomes.
func (s *ReportService) GetExperimentStats(ctx context.Context) ([]port.ArmStats, error) {
	return s.repo.ExperimentStatsByArm(ctx)
}

// SampleSize computes the two-proportion sample-size requirement.
func (s *ReportService) SampleSize(req port.SampleSizeReq) (port.SampleSizeResp, error) {
	return SampleSize(req)
}
