package usecase

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"

	"alba-sim/internal/core/domain"
)

type employer struct {
	ID   string
	Name string
}

// generateEntities produces the base user and posting collections. Pure
// function of the rng and configuration: attributes are uniformly or
// parametrically sampled, identifiers are unique by construction and every
// posting goes live at least PostingLeadDays before the window end.
func (p *Pipeline) generateEntities(rng *rand.Rand, catMap []domain.CategoryPair, start time.Time) ([]domain.User, []domain.Posting) {
	cats := domain.Categories(catMap)
	users := p.generateUsers(rng, cats, start)
	employers := p.generateEmployers(rng)
	postings := p.generatePostings(rng, employers, cats, start)
	return users, postings
}

func (p *Pipeline) generateUsers(rng *rand.Rand, cats []string, start time.Time) []domain.User {
	users := make([]domain.User, 0, p.sim.Users)
	for i := 0; i < p.sim.Users; i++ {
		u := domain.User{
			ID:              fmt.Sprintf("user_%04d", i),
			RegionID:        1 + rng.Intn(p.sim.Regions),
			PushOptIn:       rng.Float64() < p.sim.PushOptInRate,
			SettlementCount: geometric(rng, 0.3),
			// Signup some day in the year before the window opens.
			CreatedAt: start.AddDate(0, 0, -(1 + rng.Intn(365))),
		}
		// The most recent settlement determines the inputs of the causal
		// matching rule. Derived from a random category and a wage with a
		// small negative offset, mirroring settled rates below ask.
		if u.SettlementCount > 0 {
			u.LastCategory = cats[rng.Intn(len(cats))]
			u.LastWage = randomWage(rng) - rng.Intn(1001)
		}
		users = append(users, u)
	}
	return users
}

func (p *Pipeline) generateEmployers(rng *rand.Rand) []employer {
	faker := gofakeit.NewCustom(rng)
	employers := make([]employer, 0, p.sim.Employers)
	for i := 0; i < p.sim.Employers; i++ {
		employers = append(employers, employer{
			ID:   uuid.Must(uuid.NewRandomFromReader(rng)).String(),
			Name: faker.Company(),
		})
	}
	return employers
}

func (p *Pipeline) generatePostings(rng *rand.Rand, employers []employer, cats []string, start time.Time) []domain.Posting {
	// Posting creation is day-granular: offsets cover [0, days-lead) so no
	// posting appears inside the safety margin before the window end.
	maxOffset := p.sim.Days - p.sim.PostingLeadDays
	postings := make([]domain.Posting, 0, p.sim.Postings)
	for i := 0; i < p.sim.Postings; i++ {
		owner := employers[rng.Intn(len(employers))]
		postings = append(postings, domain.Posting{
			ID:           fmt.Sprintf("post_%04d", i),
			EmployerID:   owner.ID,
			EmployerName: owner.Name,
			Category:     cats[rng.Intn(len(cats))],
			RegionID:     1 + rng.Intn(p.sim.Regions),
			HourlyWage:   randomWage(rng),
			NoEarlyApply: rng.Float64() < p.sim.SuppressFraction,
			CreatedAt:    start.AddDate(0, 0, rng.Intn(maxOffset)),
		})
	}
	return postings
}

// randomWage draws an hourly wage between minimum wage and a high-end rate.
func randomWage(rng *rand.Rand) int {
	return 9620 + rng.Intn(25000-9620+1)
}

// geometric draws from the geometric distribution with success probability
// prob, support {1, 2, ...}.
func geometric(rng *rand.Rand, prob float64) int {
	n := 1
	for rng.Float64() >= prob {
		n++
	}
	return n
}
