package usecase

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"alba-sim/internal/core/domain"
)

// Dwell duration parameters for view events, in seconds.
const (
	dwellMean   = 120.0
	dwellStdDev = 60.0
	dwellMin    = 10
)

// sequence hands out monotonically increasing event identifiers. The
// simulator owns exactly one instance per run; there is no process-global
// counter.
type sequence struct {
	next int64
}

func (s *sequence) Next() int64 {
	s.next++
	return s.next
}

// simulateFunnel is the central stochastic process. For every user and
// every simulated day it draws a session gate, an event count, and then a
// strictly gated view → click → submit funnel per event attempt. It returns
// the event stream and a user slice with updated application counters; the
// input users are not mutated.
func (p *Pipeline) simulateFunnel(rng *rand.Rand, users []domain.User, postings []domain.Posting, start time.Time) ([]domain.Event, []domain.User) {
	personaByName := make(map[domain.PersonaName]domain.Persona, len(p.personas))
	for _, pe := range p.personas {
		personaByName[pe.Name] = pe
	}

	out := make([]domain.User, len(users))
	copy(out, users)

	var events []domain.Event
	seq := &sequence{}

	for ui := range out {
		persona := personaByName[out[ui].Persona]
		for day := 0; day < p.sim.Days; day++ {
			dayStart := start.AddDate(0, 0, day)

			// Session gate: no session, no events for this user-day.
			if rng.Float64() >= persona.SessionProb {
				continue
			}

			eligible := eligiblePostings(postings, dayStart)
			numEvents := 1 + rng.Intn(persona.EventsPerSession)
			sessionID := fmt.Sprintf("sess_%s_%s", out[ui].ID, dayStart.Format("20060102"))

			for n := 0; n < numEvents; n++ {
				// Empty pool skips the attempt, not the day or the user.
				if len(eligible) == 0 {
					continue
				}
				posting := eligible[rng.Intn(len(eligible))]
				ts := dayStart.
					Add(time.Duration(rng.Intn(24)) * time.Hour).
					Add(time.Duration(rng.Intn(60)) * time.Minute)

				events = p.simulateChain(rng, seq, events, &out[ui], persona, posting, sessionID, ts)
			}
		}
	}
	return events, out
}

// simulateChain runs one view → click → submit attempt against a posting.
// Each stage is conditioned on success of the previous one and timestamps
// are strictly increasing along the chain.
func (p *Pipeline) simulateChain(rng *rand.Rand, seq *sequence, events []domain.Event, u *domain.User, persona domain.Persona, posting domain.Posting, sessionID string, ts time.Time) []domain.Event {
	if rng.Float64() >= persona.Conv.View {
		return events
	}
	dwell := dwellSeconds(rng)
	events = append(events, domain.Event{
		ID:           seq.Next(),
		UserID:       u.ID,
		PostingID:    posting.ID,
		Kind:         domain.EventView,
		Timestamp:    ts,
		SessionID:    sessionID,
		RegionID:     posting.RegionID,
		Platform:     domain.Platforms[rng.Intn(len(domain.Platforms))],
		DwellSeconds: &dwell,
	})

	if rng.Float64() >= persona.Conv.Click {
		return events
	}
	clickTS := ts.Add(time.Minute)
	events = append(events, domain.Event{
		ID:        seq.Next(),
		UserID:    u.ID,
		PostingID: posting.ID,
		Kind:      domain.EventClick,
		Timestamp: clickTS,
		SessionID: sessionID,
		RegionID:  posting.RegionID,
		Platform:  domain.Platforms[rng.Intn(len(domain.Platforms))],
	})

	// Early-application suppression is a hard gate applied before the
	// probability draw.
	submitTS := clickTS.Add(time.Minute)
	if posting.NoEarlyApply && submitTS.Sub(posting.CreatedAt) < p.sim.SuppressWindow {
		return events
	}
	if rng.Float64() >= persona.Conv.Submit {
		return events
	}
	events = append(events, domain.Event{
		ID:        seq.Next(),
		UserID:    u.ID,
		PostingID: posting.ID,
		Kind:      domain.EventSubmit,
		Timestamp: submitTS,
		SessionID: sessionID,
		RegionID:  posting.RegionID,
		Platform:  domain.Platforms[rng.Intn(len(domain.Platforms))],
	})
	u.ApplicationCount++
	return events
}

// eligiblePostings returns postings created on or before the given day.
// Creation is day-granular, so any event timestamp within the day is at or
// after the posting's creation time.
func eligiblePostings(postings []domain.Posting, dayStart time.Time) []domain.Posting {
	var out []domain.Posting
	for _, po := range postings {
		if !po.CreatedAt.After(dayStart) {
			out = append(out, po)
		}
	}
	return out
}

// dwellSeconds draws a normally distributed dwell duration floored at a
// small positive minimum.
func dwellSeconds(rng *rand.Rand) int {
	d := int(math.Round(rng.NormFloat64()*dwellStdDev + dwellMean))
	if d < dwellMin {
		return dwellMin
	}
	return d
}
