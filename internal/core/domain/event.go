package domain

import "time"

// EventKind is the ordered funnel stage of a behavioral event. The order
// view < click < submit matters: a later stage may only exist when the
// previous one does.
type EventKind string

const (
	EventView   EventKind = "view"
	EventClick  EventKind = "click"
	EventSubmit EventKind = "submit"
)

// Order returns the position of the kind in the funnel, starting at 0 for
// view. Unknown kinds sort last.
func (k EventKind) Order() int {
	switch k {
	case EventView:
		return 0
	case EventClick:
		return 1
	case EventSubmit:
		return 2
	default:
		return 3
	}
}

// Platform is the client surface an event was emitted from.
type Platform string

const (
	PlatformAndroid Platform = "android"
	PlatformIOS     Platform = "ios"
	PlatformWeb     Platform = "web"
)

// Platforms lists all platforms in draw order.
var Platforms = []Platform{PlatformAndroid, PlatformIOS, PlatformWeb}

// Event is a single behavioral log record. DwellSeconds is set only on
// view events; it is nil for the later funnel stages.
type Event struct {
	ID           int64
	UserID       string
	PostingID    string
	Kind         EventKind
	Timestamp    time.Time
	SessionID    string
	RegionID     int
	Platform     Platform
	DwellSeconds *int
}
