package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"alba-sim/internal/core/port"
)

// DatasetRepository implements port.DatasetSink using pgxpool for
// PostgreSQL. Each run replaces the previous one: target tables are
// truncated before the bulk load.
type DatasetRepository struct {
	pool *pgxpool.Pool
}

// NewDatasetRepository returns a new repository instance.
func NewDatasetRepository(pool *pgxpool.Pool) *DatasetRepository {
	return &DatasetRepository{pool: pool}
}

// WriteDataset loads every table of the dataset in one transaction via
// COPY. Either the full run lands or nothing does.
func (r *DatasetRepository) WriteDataset(ctx context.Context, ds *port.Dataset) (err error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	for _, table := range ds.Tables() {
		if _, err = tx.Exec(ctx, fmt.Sprintf("TRUNCATE TABLE %s", pgx.Identifier{table.Name}.Sanitize())); err != nil {
			return fmt.Errorf("truncate %s: %w", table.Name, err)
		}
		if _, err = tx.CopyFrom(ctx,
			pgx.Identifier{table.Name},
			table.Columns,
			pgx.CopyFromRows(table.Rows),
		); err != nil {
			return fmt.Errorf("copy %s: %w", table.Name, err)
		}
	}
	return err
}
