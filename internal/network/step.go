package network

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-network/internal/config"
)

// Integrate advances a particle by one frame: move, damp, then wrap
func Integrate(p *Particle, w, h float64, cfg config.Network) {
	p.Pos = r2.Add(p.Pos, p.Vel)
	p.Vel = r2.Scale(cfg.Damping, p.Vel)
	p.Pos.X = wrap(p.Pos.X, w, cfg.WrapMargin)
	p.Pos.Y = wrap(p.Pos.Y, h, cfg.WrapMargin)
}

// wrap keeps v within [-margin, size+margin], re-entering on the opposite side
func wrap(v, size, margin float64) float64 {
	switch {
	case v < -margin:
		return size + margin
	case v > size+margin:
		return -margin
	}
	return v
}
