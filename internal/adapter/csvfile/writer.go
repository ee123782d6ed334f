// Package csvfile writes generated datasets to CSV files, one per
// collection. It is the default sink for local runs and report tooling
// that reads flat files.
package csvfile

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"alba-sim/internal/core/port"
)

// Writer implements port.DatasetSink over a target directory.
type Writer struct {
	dir string
}

// NewWriter returns a writer rooted at dir. The directory is created on
// the first WriteDataset call.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// WriteDataset writes every table of the dataset as <dir>/<table>.csv with
// a header row. Existing files are overwritten.
func (w *Writer) WriteDataset(ctx context.Context, ds *port.Dataset) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, table := range ds.Tables() {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := w.writeTable(table); err != nil {
			return fmt.Errorf("write table %s: %w", table.Name, err)
		}
	}
	return nil
}

func (w *Writer) writeTable(table port.Table) error {
	f, err := os.Create(filepath.Join(w.dir, table.Name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	if err = cw.Write(table.Columns); err != nil {
		return err
	}
	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, v := range row {
			record[i] = formatValue(v)
		}
		if err = cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	if err = cw.Error(); err != nil {
		return err
	}
	return f.Close()
}

// formatValue renders a cell value. Nil pointers become empty cells.
func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case bool:
		return strconv.FormatBool(x)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case time.Time:
		return x.UTC().Format(time.RFC3339)
	case *int:
		if x == nil {
			return ""
		}
		return strconv.Itoa(*x)
	default:
		return fmt.Sprint(x)
	}
}
