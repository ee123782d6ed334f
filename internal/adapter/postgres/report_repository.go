package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"alba-sim/internal/core/port"
)

// ReportRepository implements port.ReportRepository with aggregate queries
// over the loaded run tables.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a new repository instance.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// CountEventsByKind returns the number of events per kind in the period.
func (r *ReportRepository) CountEventsByKind(ctx context.Context, req port.StatsReq) (map[string]int64, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT kind, count(*) FROM events WHERE ts >= $1 AND ts <= $2 GROUP BY kind`,
		req.From, req.To)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int64)
	for rows.Next() {
		var kind string
		var n int64
		if err = rows.Scan(&kind, &n); err != nil {
			return nil, err
		}
		counts[kind] = n
	}
	return counts, rows.Err()
}

// ExperimentStatsByArm returns per-arm send and application counts.
func (r *ReportRepository) ExperimentStatsByArm(ctx context.Context) ([]port.ArmStats, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT arm,
               count(*),
               count(*) FILTER (WHERE applied)
        FROM assignments
        GROUP BY arm
        ORDER BY arm`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []port.ArmStats
	for rows.Next() {
		var s port.ArmStats
		if err = rows.Scan(&s.Arm, &s.Sends, &s.Applied); err != nil {
			return nil, err
		}
		if s.Sends > 0 {
			s.ApplyRate = float64(s.Applied) / float64(s.Sends)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
