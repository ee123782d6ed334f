package domain

// PersonaName identifies a behavioral archetype.
type PersonaName string

const (
	PersonaActiveSeeker  PersonaName = "active_seeker"
	PersonaCasualBrowser PersonaName = "casual_browser"
	PersonaHesitator     PersonaName = "hesitator"
)

// Persona bundles the behavioral parameters shared by every user assigned
// to it. Personas are read-only configuration.
type Persona struct {
	Name PersonaName
	// SessionProb is the probability that the user opens a session on any
	// given day.
	SessionProb float64
	// EventsPerSession bounds the uniform [1, n] draw of funnel attempts
	// per session.
	EventsPerSession int
	// Conv holds the per-stage conversion probability of the funnel.
	Conv FunnelConv
}

// FunnelConv is the per-stage conversion table of the view → click → submit
// funnel. Each stage is conditioned on success of the previous one.
type FunnelConv struct {
	View   float64
	Click  float64
	Submit float64
}

// Stage returns the conversion probability for the given event kind.
func (c FunnelConv) Stage(k EventKind) float64 {
	switch k {
	case EventView:
		return c.View
	case EventClick:
		return c.Click
	case EventSubmit:
		return c.Submit
	default:
		return 0
	}
}

// DefaultPersonas returns the built-in archetype set. Order is fixed so
// that categorical draws over the set are reproducible.
func DefaultPersonas() []Persona {
	return []Persona{
		{
			Name:             PersonaActiveSeeker,
			SessionProb:      0.8,
			EventsPerSession: 5,
			Conv:             FunnelConv{View: 0.9, Click: 0.5, Submit: 0.8},
		},
		{
			Name:             PersonaCasualBrowser,
			SessionProb:      0.3,
			EventsPerSession: 3,
			Conv:             FunnelConv{View: 0.7, Click: 0.1, Submit: 0.2},
		},
		{
			Name:             PersonaHesitator,
			SessionProb:      0.6,
			EventsPerSession: 6,
			Conv:             FunnelConv{View: 0.95, Click: 0.05, Submit: 0.1},
		},
	}
}
