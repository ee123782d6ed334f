package usecase

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"sort"

	"alba-sim/internal/config/configs"
	"alba-sim/internal/core/domain"
	"alba-sim/internal/core/port"
)

// Pipeline runs the full synthetic data generation chain: entities →
// personas → funnel events → cohort segmentation → causal assignment. Every
// random draw comes from a single rand.Rand seeded from the configuration,
// so a run is a pure function of (seed, config).
type Pipeline struct {
	sim      configs.Sim
	seg      configs.Segment
	camp     configs.Campaign
	personas []domain.Persona
	logger   *slog.Logger
}

// NewPipeline creates a pipeline over the given configuration and persona
// set. Pass domain.DefaultPersonas() unless a scenario needs custom
// archetypes.
func NewPipeline(sim configs.Sim, seg configs.Segment, camp configs.Campaign, personas []domain.Persona, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{sim: sim, seg: seg, camp: camp, personas: personas, logger: logger}
}

// Run validates the configuration and produces a full dataset. The returned
// collections are newly constructed; no input is retained or mutated.
func (p *Pipeline) Run() (*port.Dataset, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	start, err := p.sim.Start()
	if err != nil {
		return nil, fmt.Errorf("sim.start_date: %w", err)
	}
	end := start.AddDate(0, 0, p.sim.Days)

	rng := rand.New(rand.NewSource(p.sim.Seed))

	catMap := domain.DefaultCategoryMap()
	users, postings := p.generateEntities(rng, catMap, start)
	p.logger.Info("entities generated",
		slog.Int("users", len(users)), slog.Int("postings", len(postings)))

	users = p.assignPersonas(rng, users)

	events, users := p.simulateFunnel(rng, users, postings, start)
	p.logger.Info("funnel simulated", slog.Int("events", len(events)))

	_, audience := p.segmentCohort(events)
	p.logger.Info("cohort segmented", slog.Int("audience", len(audience)))

	assignments := p.assignArms(rng, audience, users, postings, catMap, end)
	p.logger.Info("campaign assigned", slog.Int("assignments", len(assignments)))

	return &port.Dataset{
		Users:       users,
		Postings:    postings,
		Events:      events,
		Assignments: assignments,
		CategoryMap: catMap,
	}, nil
}

// Validate checks every configuration precondition before any generation
// happens. Violations are non-recoverable and name the offending parameter.
func (p *Pipeline) Validate() error {
	s := p.sim
	switch {
	case s.Users < 0:
		return fmt.Errorf("sim.users: negative count %d", s.Users)
	case s.Employers <= 0:
		return fmt.Errorf("sim.employers: count must be positive, got %d", s.Employers)
	case s.Postings < 0:
		return fmt.Errorf("sim.postings: negative count %d", s.Postings)
	case s.Regions <= 0:
		return fmt.Errorf("sim.regions: count must be positive, got %d", s.Regions)
	case s.Days <= 0:
		return fmt.Errorf("sim.days: window must be positive, got %d", s.Days)
	case s.PostingLeadDays < 0 || s.PostingLeadDays >= s.Days:
		return fmt.Errorf("sim.posting_lead_days: must be in [0, days), got %d", s.PostingLeadDays)
	case s.SuppressWindow < 0:
		return fmt.Errorf("sim.suppress_window: negative duration %s", s.SuppressWindow)
	}
	if err := checkProb("sim.push_optin_rate", s.PushOptInRate); err != nil {
		return err
	}
	if err := checkProb("sim.suppress_fraction", s.SuppressFraction); err != nil {
		return err
	}
	if _, err := s.Start(); err != nil {
		return fmt.Errorf("sim.start_date: %w", err)
	}

	if len(p.personas) == 0 {
		return fmt.Errorf("personas: set must not be empty")
	}
	known := make(map[domain.PersonaName]bool, len(p.personas))
	for _, pe := range p.personas {
		known[pe.Name] = true
		if err := checkProb(fmt.Sprintf("persona %q session_prob", pe.Name), pe.SessionProb); err != nil {
			return err
		}
		for _, st := range []struct {
			name string
			v    float64
		}{
			{"view", pe.Conv.View}, {"click", pe.Conv.Click}, {"submit", pe.Conv.Submit},
		} {
			if err := checkProb(fmt.Sprintf("persona %q conv[%s]", pe.Name, st.name), st.v); err != nil {
				return err
			}
		}
		if pe.EventsPerSession < 1 {
			return fmt.Errorf("persona %q events_per_session: must be at least 1, got %d", pe.Name, pe.EventsPerSession)
		}
	}
	if err := checkWeights("sim.persona_dist", s.PersonaDist); err != nil {
		return err
	}
	for name := range s.PersonaDist {
		if !known[domain.PersonaName(name)] {
			return fmt.Errorf("sim.persona_dist: unknown persona %q", name)
		}
	}

	if p.seg.WindowDays <= 0 {
		return fmt.Errorf("segment.window_days: must be positive, got %d", p.seg.WindowDays)
	}
	if p.seg.MinViews < 0 {
		return fmt.Errorf("segment.min_views: negative threshold %d", p.seg.MinViews)
	}
	if err := checkProb("segment.percentile", p.seg.Percentile); err != nil {
		return err
	}
	if p.seg.Metric != "avg" && p.seg.Metric != "total" {
		return fmt.Errorf("segment.metric: must be \"avg\" or \"total\", got %q", p.seg.Metric)
	}

	c := p.camp
	if err := checkWeights("campaign.arm_weights", c.ArmWeights); err != nil {
		return err
	}
	for arm, prob := range c.ArmProbs {
		if err := checkProb(fmt.Sprintf("campaign.arm_probs[%s]", arm), prob); err != nil {
			return err
		}
	}
	for arm := range c.ArmWeights {
		if arm == c.CausalArm {
			continue
		}
		if _, ok := c.ArmProbs[arm]; !ok {
			return fmt.Errorf("campaign.arm_probs: missing probability for arm %q", arm)
		}
	}
	if c.CausalArm != "" {
		if err := checkProb("campaign.matched_prob", c.MatchedProb); err != nil {
			return err
		}
		if err := checkProb("campaign.unmatched_prob", c.UnmatchedProb); err != nil {
			return err
		}
	}
	for arm, prob := range c.FollowUpProbs {
		if err := checkProb(fmt.Sprintf("campaign.followup_probs[%s]", arm), prob); err != nil {
			return err
		}
	}
	for _, w := range c.FollowUpWeeks {
		if w < 1 {
			return fmt.Errorf("campaign.followup_weeks: week offset must be at least 1, got %d", w)
		}
	}
	for arm := range c.ArmWeights {
		if _, ok := c.FollowUpProbs[arm]; !ok && len(c.FollowUpWeeks) > 0 {
			return fmt.Errorf("campaign.followup_probs: missing probability for arm %q", arm)
		}
	}
	if c.Boost < 0 {
		return fmt.Errorf("campaign.boost: negative multiplier %g", c.Boost)
	}
	return nil
}

func checkProb(name string, v float64) error {
	if v < 0 || v > 1 || math.IsNaN(v) {
		return fmt.Errorf("%s: probability %g outside [0,1]", name, v)
	}
	return nil
}

func checkWeights(name string, weights map[string]float64) error {
	if len(weights) == 0 {
		return fmt.Errorf("%s: distribution must not be empty", name)
	}
	sum := 0.0
	for k, w := range weights {
		if w < 0 || math.IsNaN(w) {
			return fmt.Errorf("%s: negative weight %g for %q", name, w, k)
		}
		sum += w
	}
	if math.Abs(sum-1) > 1e-9 {
		return fmt.Errorf("%s: weights sum to %g, want 1", name, sum)
	}
	return nil
}

// sortedKeys returns map keys in lexical order. Weighted draws iterate maps
// through this so the consumed randomness is independent of map layout.
func sortedKeys(m map[string]float64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
