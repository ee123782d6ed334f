package domain

import "time"

// User is a job-seeker on the marketplace. All attributes are fixed at
// generation time; only ApplicationCount is incremented, and only by the
// funnel simulator while the event stream is being produced.
type User struct {
	ID              string
	RegionID        int
	Persona         PersonaName
	PushOptIn       bool
	SettlementCount int
	// ApplicationCount counts submitted applications in the generated
	// event stream.
	ApplicationCount int
	// LastCategory and LastWage describe the user's most recent settled
	// job. Zero values when the user has no settlement history.
	LastCategory string
	LastWage     int
	CreatedAt    time.Time
}
