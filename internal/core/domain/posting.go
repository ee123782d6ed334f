package domain

import "time"

// Posting represents a published part-time job opening. Postings are
// immutable once created; an event may reference a posting only when the
// posting's CreatedAt is not after the event timestamp.
type Posting struct {
	ID           string
	EmployerID   string
	EmployerName string
	Category     string
	RegionID     int
	HourlyWage   int
	// NoEarlyApply marks postings that accept no applications within the
	// early-application window after creation.
	NoEarlyApply bool
	// CreatedAt is day-granular: postings go live at midnight.
	CreatedAt time.Time
}
