package game

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// surface adapts the ebiten screen to network.Surface.
// dst is only set while ebiten is inside Draw.
type surface struct {
	dst  *ebiten.Image
	w, h int
	bg   color.RGBA
}

func (s *surface) Size() (float64, float64) {
	return float64(s.w), float64(s.h)
}

func (s *surface) ClearRect(x, y, w, h float64) {
	if s.dst == nil {
		return
	}
	r := image.Rect(int(math.Floor(x)), int(math.Floor(y)), int(math.Ceil(x+w)), int(math.Ceil(y+h)))
	if s.dst.Bounds().In(r) {
		s.dst.Fill(s.bg)
		return
	}
	r = r.Intersect(s.dst.Bounds())
	if r.Empty() {
		return
	}
	s.dst.SubImage(r).(*ebiten.Image).Fill(s.bg)
}

func (s *surface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64) {
	if s.dst == nil {
		return
	}
	vector.StrokeLine(s.dst, float32(x0), float32(y0), float32(x1), float32(y1), float32(width), withAlpha(c, alpha), true)
}

func (s *surface) FillCircle(cx, cy, r float64, c color.RGBA, alpha float64) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledCircle(s.dst, float32(cx), float32(cy), float32(r), withAlpha(c, alpha), true)
}
