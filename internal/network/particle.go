package network

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-network/internal/config"
)

// Particle is a single point of the network.
// Radius and Opacity are fixed at creation.
type Particle struct {
	Pos     r2.Vec
	Vel     r2.Vec
	Radius  float64
	Opacity float64
}

// Rand is the random source used to sample a population; *math/rand.Rand satisfies it
type Rand interface {
	Float64() float64
}

// Populate creates a fresh population spread uniformly over a w×h surface
func Populate(rng Rand, cfg config.Network, w, h float64) []Particle {
	ps := make([]Particle, cfg.Count)
	for i := range ps {
		ps[i] = Particle{
			Pos: r2.Vec{
				X: rng.Float64() * w,
				Y: rng.Float64() * h,
			},
			Vel: r2.Vec{
				X: uniform(rng, -cfg.Drift, cfg.Drift),
				Y: uniform(rng, -cfg.Drift, cfg.Drift),
			},
			Radius:  uniform(rng, cfg.RadiusMin, cfg.RadiusMax),
			Opacity: uniform(rng, cfg.OpacityMin, cfg.OpacityMax),
		}
	}
	return ps
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}
