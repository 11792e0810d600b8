package network

import (
	"image/color"
	"math/rand"

	"github.com/olivierh59500/particle-network/internal/config"
)

type opKind int

const (
	opClear opKind = iota
	opLine
	opCircle
)

// drawOp is one recorded surface call
type drawOp struct {
	kind           opKind
	x0, y0, x1, y1 float64
	width, r       float64
	c              color.RGBA
	alpha          float64
}

// recordSurface is a Surface that records every call
type recordSurface struct {
	w, h float64
	ops  []drawOp
}

func (s *recordSurface) Size() (float64, float64) { return s.w, s.h }

func (s *recordSurface) ClearRect(x, y, w, h float64) {
	s.ops = append(s.ops, drawOp{kind: opClear, x0: x, y0: y, x1: x + w, y1: y + h})
}

func (s *recordSurface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: opLine, x0: x0, y0: y0, x1: x1, y1: y1, width: width, c: c, alpha: alpha})
}

func (s *recordSurface) FillCircle(cx, cy, r float64, c color.RGBA, alpha float64) {
	s.ops = append(s.ops, drawOp{kind: opCircle, x0: cx, y0: cy, r: r, c: c, alpha: alpha})
}

func (s *recordSurface) count(k opKind) int {
	n := 0
	for _, op := range s.ops {
		if op.kind == k {
			n++
		}
	}
	return n
}

func (s *recordSurface) reset() {
	s.ops = s.ops[:0]
}

func seeded(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

func testNetwork() config.Network {
	return config.DefaultNetwork()
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}

// armed reports whether a frame callback is waiting
func (q *FrameQueue) armed() bool {
	return q.fn != nil
}

// listeners returns the number of active subscriptions
func (ev *Events) listeners() int {
	return len(ev.pointer) + len(ev.resize)
}
