package usecase

import (
	"math/rand"
	"slices"
	"time"

	"github.com/google/uuid"

	"alba-sim/internal/core/domain"
)

// assignArms splits the target audience into experiment arms and simulates
// send outcomes: the initial send at sendAt plus one follow-up per
// configured week offset. Draws are independent except for the documented
// boost on the causal arm's follow-ups after a converted initial send.
func (p *Pipeline) assignArms(rng *rand.Rand, audience []domain.CohortRecord, users []domain.User, postings []domain.Posting, catMap []domain.CategoryPair, sendAt time.Time) []domain.Assignment {
	userByID := make(map[string]domain.User, len(users))
	for _, u := range users {
		userByID[u.ID] = u
	}

	arms := sortedKeys(p.camp.ArmWeights)
	weights := make([]float64, len(arms))
	for i, a := range arms {
		weights[i] = p.camp.ArmWeights[a]
	}

	var out []domain.Assignment
	for _, rec := range audience {
		u, ok := userByID[rec.UserID]
		if !ok {
			continue
		}
		if p.camp.RequirePushOptIn && !u.PushOptIn {
			continue
		}

		arm := domain.Arm(arms[categorical(rng, weights)])
		prob := p.initialProb(arm, u, postings, catMap)
		applied := rng.Float64() < prob

		out = append(out, domain.Assignment{
			ID:      uuid.Must(uuid.NewRandomFromReader(rng)).String(),
			UserID:  u.ID,
			Arm:     arm,
			Applied: applied,
			Week:    0,
			SentAt:  sendAt,
		})

		for _, week := range p.camp.FollowUpWeeks {
			fprob := p.camp.FollowUpProbs[string(arm)]
			if string(arm) == p.camp.CausalArm && applied {
				fprob = min(1, fprob*p.camp.Boost)
			}
			out = append(out, domain.Assignment{
				ID:      uuid.Must(uuid.NewRandomFromReader(rng)).String(),
				UserID:  u.ID,
				Arm:     arm,
				Applied: rng.Float64() < fprob,
				Week:    week,
				// Follow-ups land on a random day of their week.
				SentAt: sendAt.AddDate(0, 0, 7*week-rng.Intn(7)),
			})
		}
	}
	return out
}

// initialProb resolves the conversion probability of the initial send. The
// causal arm consults the matching predicate; every other arm uses its flat
// configured probability.
func (p *Pipeline) initialProb(arm domain.Arm, u domain.User, postings []domain.Posting, catMap []domain.CategoryPair) float64 {
	if p.camp.CausalArm != "" && string(arm) == p.camp.CausalArm {
		if matchesBetterPosting(u, postings, catMap) {
			return p.camp.MatchedProb
		}
		return p.camp.UnmatchedProb
	}
	return p.camp.ArmProbs[string(arm)]
}

// matchesBetterPosting reports whether a posting exists in the user's last
// settled category, or a similar one, paying strictly more than the user's
// last settled wage. Pure given the postings and the similarity map; users
// without settlement history never match.
func matchesBetterPosting(u domain.User, postings []domain.Posting, catMap []domain.CategoryPair) bool {
	if u.LastCategory == "" {
		return false
	}
	cats := domain.SimilarCategories(catMap, u.LastCategory)
	for _, po := range postings {
		if po.HourlyWage > u.LastWage && slices.Contains(cats, po.Category) {
			return true
		}
	}
	return false
}
