package usecase

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alba-sim/internal/core/domain"
)

// TestAssignPersonasDistribution draws 10k personas and checks the
// realized shares against the configured weights.
func TestAssignPersonasDistribution(t *testing.T) {
	p := testPipeline(t, testSim(), testSegment(), testCampaign(), nil)

	users := make([]domain.User, 10000)
	for i := range users {
		users[i].ID = fmt.Sprintf("user_%04d", i)
	}

	out := p.assignPersonas(rand.New(rand.NewSource(13)), users)
	require.Len(t, out, len(users))

	shares := make(map[domain.PersonaName]float64)
	for _, u := range out {
		shares[u.Persona] += 1.0 / float64(len(users))
	}
	assert.InDelta(t, 0.1, shares[domain.PersonaActiveSeeker], 0.03)
	assert.InDelta(t, 0.6, shares[domain.PersonaCasualBrowser], 0.03)
	assert.InDelta(t, 0.3, shares[domain.PersonaHesitator], 0.03)
}

// TestAssignPersonasPreservesInput ensures the input slice is not mutated
// and non-persona fields carry over.
func TestAssignPersonasPreservesInput(t *testing.T) {
	p := testPipeline(t, testSim(), testSegment(), testCampaign(), nil)
	users := []domain.User{{ID: "user_0000", RegionID: 3, LastWage: 11000}}

	out := p.assignPersonas(rand.New(rand.NewSource(17)), users)
	assert.Empty(t, users[0].Persona)
	assert.Equal(t, "user_0000", out[0].ID)
	assert.Equal(t, 3, out[0].RegionID)
	assert.Equal(t, 11000, out[0].LastWage)
	assert.NotEmpty(t, out[0].Persona)
}

// TestAssignPersonasDegenerate pins a single-persona distribution.
func TestAssignPersonasDegenerate(t *testing.T) {
	sim := testSim()
	sim.PersonaDist = map[string]float64{"hesitator": 1.0}
	p := testPipeline(t, sim, testSegment(), testCampaign(), nil)

	users := make([]domain.User, 100)
	out := p.assignPersonas(rand.New(rand.NewSource(19)), users)
	for _, u := range out {
		require.Equal(t, domain.PersonaHesitator, u.Persona)
	}
}

func TestCategorical(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	// A zero-weight bucket is never drawn.
	for i := 0; i < 1000; i++ {
		assert.Equal(t, 1, categorical(rng, []float64{0, 1, 0}))
	}

	// Every index of a uniform vector shows up.
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		idx := categorical(rng, []float64{0.25, 0.25, 0.25, 0.25})
		require.GreaterOrEqual(t, idx, 0)
		require.Less(t, idx, 4)
		seen[idx] = true
	}
	assert.Len(t, seen, 4)
}
