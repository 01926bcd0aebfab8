package asteroids

import (
	"math"
	"math/rand/v2"

	"github.com/oliverbestmann/byke/gm"
)

// Rng is the random source for all gameplay randomness: asteroid placement,
// split velocities and debris bursts. It lives in the world as a resource so
// runs are reproducible when started with a fixed seed.
type Rng struct {
	*rand.Rand

	// Seed the generator was created with.
	Seed uint64
}

// NewRng creates a seeded generator. A zero seed picks a random one.
func NewRng(seed uint64) Rng {
	if seed == 0 {
		seed = rand.Uint64()
	}

	return Rng{
		Rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		Seed: seed,
	}
}

// Range returns a value uniformly sampled from [min, max).
func (r *Rng) Range(min, max float64) float64 {
	return min + r.Float64()*(max-min)
}

// Angle returns an angle uniformly sampled from the full circle.
func (r *Rng) Angle() gm.Rad {
	return gm.Rad(r.Range(0, 2*math.Pi))
}
