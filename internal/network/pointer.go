package network

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-network/internal/config"
)

// PointerAway is where the pointer is parked while no pointer is over the surface
var PointerAway = r2.Vec{X: -1000, Y: -1000}

// Pointer is the last known pointer state.
// An absent pointer never influences particles, whatever its position.
type Pointer struct {
	Pos     r2.Vec
	Present bool
}

// NoPointer is the pointer state while nothing is over the surface
var NoPointer = Pointer{Pos: PointerAway}

// Display is how a particle is drawn in the current frame
type Display struct {
	Opacity   float64
	Radius    float64
	Influence bool    // Pointer within the interaction radius
	LinkAlpha float64 // Alpha of the pointer-to-particle line, 0 when not influenced
	Pull      r2.Vec  // Velocity increment toward the pointer
}

// Influence computes the pointer emphasis and attraction for one particle.
// Outside the interaction radius, or with no pointer present, the display
// equals the particle's base values.
func Influence(p Particle, ptr Pointer, cfg config.Network) Display {
	d := Display{
		Opacity: p.Opacity,
		Radius:  p.Radius,
	}
	if !ptr.Present {
		return d
	}

	delta := r2.Sub(ptr.Pos, p.Pos)
	dist := r2.Norm(delta)
	if dist >= cfg.PointerRadius {
		return d
	}

	factor := 1 - dist/cfg.PointerRadius
	d.Influence = true
	d.Opacity = math.Min(p.Opacity+factor*cfg.PointerGlow, cfg.PointerAlphaCap)
	d.Radius = p.Radius + factor*cfg.PointerGrow
	d.LinkAlpha = factor * cfg.PointerLinkAlpha
	d.Pull = r2.Scale(cfg.Attraction, delta)
	return d
}
