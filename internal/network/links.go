package network

import (
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/olivierh59500/particle-network/internal/config"
)

// Link is a connective edge between particles A and B (A < B)
type Link struct {
	A, B  int
	Alpha float64
}

// LinkAlpha fades linearly from k at distance 0 to 0 at the threshold t
func LinkAlpha(d, t, k float64) float64 {
	return (1 - d/t) * k
}

// Links returns every pair of particles closer than cfg.LinkDistance.
// Pairs are visited in (i, j) order with i < j.
func Links(ps []Particle, cfg config.Network) []Link {
	return appendLinks(nil, ps, cfg)
}

func appendLinks(dst []Link, ps []Particle, cfg config.Network) []Link {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			d := r2.Norm(r2.Sub(ps[i].Pos, ps[j].Pos))
			if d < cfg.LinkDistance {
				dst = append(dst, Link{
					A:     i,
					B:     j,
					Alpha: LinkAlpha(d, cfg.LinkDistance, cfg.LinkAlpha),
				})
			}
		}
	}
	return dst
}
