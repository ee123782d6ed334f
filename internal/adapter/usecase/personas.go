package usecase

import (
	"math/rand"

	"alba-sim/internal/core/domain"
)

// assignPersonas draws a persona for every user from the configured
// categorical distribution. The mapping is total; many users share a
// persona. Returns a new slice, the input is left untouched. The
// distribution is validated up front by Pipeline.Validate.
func (p *Pipeline) assignPersonas(rng *rand.Rand, users []domain.User) []domain.User {
	names := sortedKeys(p.sim.PersonaDist)
	weights := make([]float64, len(names))
	for i, n := range names {
		weights[i] = p.sim.PersonaDist[n]
	}

	out := make([]domain.User, len(users))
	copy(out, users)
	for i := range out {
		out[i].Persona = domain.PersonaName(names[categorical(rng, weights)])
	}
	return out
}

// categorical draws an index from the weight vector. Weights are assumed
// validated (non-negative, summing to 1); the final index absorbs any
// floating point remainder.
func categorical(rng *rand.Rand, weights []float64) int {
	r := rng.Float64()
	acc := 0.0
	for i, w := range weights {
		acc += w
		if r < acc {
			return i
		}
	}
	return len(weights) - 1
}
