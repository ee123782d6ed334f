package port

import (
	"context"

	"alba-sim/internal/core/domain"
)

// Dataset bundles every collection produced by one pipeline run. Each
// collection can be rendered as a flat columnar Table for any tabular sink.
type Dataset struct {
	Users       []domain.User
	Postings    []domain.Posting
	Events      []domain.Event
	Assignments []domain.Assignment
	CategoryMap []domain.CategoryPair
}

// Table is a flat mapping from column names to row values, the only output
// contract the core exposes to sinks. Row values hold native Go types
// (string, int, int64, bool, float64, time.Time, *int).
type Table struct {
	Name    string
	Columns []string
	Rows    [][]any
}

// DatasetSink persists a full dataset to some tabular target. Implemented
// by the CSV and PostgreSQL adapters.
type DatasetSink interface {
	WriteDataset(ctx context.Context, ds *Dataset) error
}

// Tables renders all collections in a fixed order.
func (ds *Dataset) Tables() []Table {
	return []Table{
		ds.UsersTable(),
		ds.PostingsTable(),
		ds.EventsTable(),
		ds.AssignmentsTable(),
		ds.CategoryMapTable(),
	}
}

// UsersTable renders the user collection.
func (ds *Dataset) UsersTable() Table {
	t := Table{
		Name: "users",
		Columns: []string{
			"id", "region_id", "persona", "push_opt_in", "settlement_count",
			"application_count", "last_category", "last_wage", "created_at",
		},
	}
	for _, u := range ds.Users {
		t.Rows = append(t.Rows, []any{
			u.ID, u.RegionID, string(u.Persona), u.PushOptIn, u.SettlementCount,
			u.ApplicationCount, u.LastCategory, u.LastWage, u.CreatedAt,
		})
	}
	return t
}

// PostingsTable renders the posting collection.
func (ds *Dataset) PostingsTable() Table {
	t := Table{
		Name: "postings",
		Columns: []string{
			"id", "employer_id", "employer_name", "category", "region_id",
			"hourly_wage", "no_early_apply", "created_at",
		},
	}
	for _, p := range ds.Postings {
		t.Rows = append(t.Rows, []any{
			p.ID, p.EmployerID, p.EmployerName, p.Category, p.RegionID,
			p.HourlyWage, p.NoEarlyApply, p.CreatedAt,
		})
	}
	return t
}

// EventsTable renders the event collection.
func (ds *Dataset) EventsTable() Table {
	t := Table{
		Name: "events",
		Columns: []string{
			"id", "user_id", "posting_id", "kind", "ts", "session_id",
			"region_id", "platform", "dwell_seconds",
		},
	}
	for _, e := range ds.Events {
		t.Rows = append(t.Rows, []any{
			e.ID, e.UserID, e.PostingID, string(e.Kind), e.Timestamp,
			e.SessionID, e.RegionID, string(e.Platform), e.DwellSeconds,
		})
	}
	return t
}

// AssignmentsTable renders the assignment collection.
func (ds *Dataset) AssignmentsTable() Table {
	t := Table{
		Name:    "assignments",
		Columns: []string{"id", "user_id", "arm", "applied", "week", "sent_at"},
	}
	for _, a := range ds.Assignments {
		t.Rows = append(t.Rows, []any{
			a.ID, a.UserID, string(a.Arm), a.Applied, a.Week, a.SentAt,
		})
	}
	return t
}

// CategoryMapTable renders the category similarity pairs.
func (ds *Dataset) CategoryMapTable() Table {
	t := Table{
		Name:    "category_map",
		Columns: []string{"original", "similar"},
	}
	for _, p := range ds.CategoryMap {
		t.Rows = append(t.Rows, []any{p.Original, p.Similar})
	}
	return t
}
