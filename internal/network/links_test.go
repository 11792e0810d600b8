package network

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/spatial/r2"
)

func TestLinkAlpha(t *testing.T) {
	const T, K = 150.0, 0.08
	tests := []struct {
		d    float64
		want float64
	}{
		{0, K},
		{37.5, 0.75 * K},
		{75, K / 2},
		{T, 0},
	}
	for _, tt := range tests {
		if got := LinkAlpha(tt.d, T, K); !almostEqual(got, tt.want) {
			t.Errorf("LinkAlpha(%g) = %g, want %g", tt.d, got, tt.want)
		}
	}

	prev := LinkAlpha(0, T, K)
	for d := 1.0; d < T; d++ {
		a := LinkAlpha(d, T, K)
		if a >= prev {
			t.Fatalf("alpha not strictly decreasing at d=%g: %g >= %g", d, a, prev)
		}
		prev = a
	}
}

func TestLinksThreshold(t *testing.T) {
	cfg := testNetwork()
	ps := []Particle{
		{Pos: r2.Vec{X: 0, Y: 0}},
		{Pos: r2.Vec{X: 149, Y: 0}},
		{Pos: r2.Vec{X: 300, Y: 0}},
		{Pos: r2.Vec{X: 0, Y: 150}},
	}

	links := Links(ps, cfg)
	if len(links) != 1 {
		t.Fatalf("got %d links, want 1: %+v", len(links), links)
	}
	l := links[0]
	if l.A != 0 || l.B != 1 {
		t.Errorf("link = (%d,%d), want (0,1)", l.A, l.B)
	}
	if want := LinkAlpha(149, cfg.LinkDistance, cfg.LinkAlpha); !almostEqual(l.Alpha, want) {
		t.Errorf("alpha = %g, want %g", l.Alpha, want)
	}
}

func TestLinksMatchPairwiseDistances(t *testing.T) {
	cfg := testNetwork()
	ps := Populate(seeded(3), cfg, 800, 600)

	want := map[[2]int]float64{}
	for i := range ps {
		for j := range ps {
			if i >= j {
				continue
			}
			d := math.Hypot(ps[i].Pos.X-ps[j].Pos.X, ps[i].Pos.Y-ps[j].Pos.Y)
			if d < cfg.LinkDistance {
				want[[2]int{i, j}] = d
			}
		}
	}

	links := Links(ps, cfg)
	if len(links) != len(want) {
		t.Fatalf("got %d links, want %d", len(links), len(want))
	}
	for _, l := range links {
		d, ok := want[[2]int{l.A, l.B}]
		if !ok {
			t.Fatalf("unexpected link (%d,%d)", l.A, l.B)
		}
		if want := LinkAlpha(d, cfg.LinkDistance, cfg.LinkAlpha); !almostEqual(l.Alpha, want) {
			t.Errorf("link (%d,%d) alpha = %g, want %g", l.A, l.B, l.Alpha, want)
		}
		if l.Alpha <= 0 || l.Alpha > cfg.LinkAlpha {
			t.Errorf("link (%d,%d) alpha %g outside (0, %g]", l.A, l.B, l.Alpha, cfg.LinkAlpha)
		}
	}
}
