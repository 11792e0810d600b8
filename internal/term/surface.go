package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Visibility gains: terminal cells cannot show the faint alphas a pixel
// surface can, so lines and bodies are brightened before shading.
const (
	lineGain = 8.0
	bodyGain = 1.5
)

var lineRamp = []rune(" .·:-=+*")

type cell struct {
	body  bool
	alpha float64
}

// Surface rasterizes network.Surface calls into terminal cells.
// Each cell covers cellW×cellH surface units.
type Surface struct {
	screen       tcell.Screen
	cellW, cellH float64
	cols, rows   int
	cells        []cell
	bg           color.RGBA
}

// NewSurface creates a surface over screen; call Sync before drawing
func NewSurface(screen tcell.Screen, cellW, cellH float64, bg color.RGBA) *Surface {
	s := &Surface{
		screen: screen,
		cellW:  cellW,
		cellH:  cellH,
		bg:     bg,
	}
	s.Sync()
	return s
}

// Sync re-reads the terminal size
func (s *Surface) Sync() {
	s.cols, s.rows = s.screen.Size()
	if n := s.cols * s.rows; cap(s.cells) >= n {
		s.cells = s.cells[:n]
	} else {
		s.cells = make([]cell, n)
	}
	clear(s.cells)
}

// Size reports the surface extent in surface units
func (s *Surface) Size() (float64, float64) {
	return float64(s.cols) * s.cellW, float64(s.rows) * s.cellH
}

// CellCenter maps a cell to the surface point at its centre
func (s *Surface) CellCenter(cx, cy int) (float64, float64) {
	return (float64(cx) + 0.5) * s.cellW, (float64(cy) + 0.5) * s.cellH
}

func (s *Surface) ClearRect(x, y, w, h float64) {
	x0, y0 := s.toCell(x, y)
	x1, y1 := s.toCell(x+w, y+h)
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.cols-1), min(y1, s.rows-1)

	style := tcell.StyleDefault.Background(rgb(s.bg))
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			s.cells[cy*s.cols+cx] = cell{}
			s.screen.SetContent(cx, cy, ' ', nil, style)
		}
	}
}

func (s *Surface) StrokeLine(x0, y0, x1, y1, width float64, c color.RGBA, alpha float64) {
	fx0, fy0 := x0/s.cellW, y0/s.cellH
	fx1, fy1 := x1/s.cellW, y1/s.cellH
	dx, dy := fx1-fx0, fy1-fy0

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps < 1 {
		steps = 1
	}
	glyph := LineGlyph(alpha)
	if glyph == ' ' {
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		cx := int(math.Floor(fx0 + dx*t))
		cy := int(math.Floor(fy0 + dy*t))
		s.plot(cx, cy, false, alpha, glyph, Shade(s.bg, c, alpha*lineGain))
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.RGBA, alpha float64) {
	x, y := s.toCell(cx, cy)
	s.plot(x, y, true, alpha, BodyGlyph(r), Shade(s.bg, c, alpha*bodyGain))
}

// plot writes a glyph unless the cell already holds something stronger.
// Bodies always cover lines.
func (s *Surface) plot(x, y int, body bool, alpha float64, glyph rune, fg color.RGBA) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows {
		return
	}
	cur := &s.cells[y*s.cols+x]
	if cur.body && !body {
		return
	}
	if cur.body == body && cur.alpha >= alpha {
		return
	}
	*cur = cell{body: body, alpha: alpha}
	style := tcell.StyleDefault.Foreground(rgb(fg)).Background(rgb(s.bg))
	s.screen.SetContent(x, y, glyph, nil, style)
}

func (s *Surface) toCell(x, y float64) (int, int) {
	return int(math.Floor(x / s.cellW)), int(math.Floor(y / s.cellH))
}

// LineGlyph picks a shade character for a line of the given alpha
func LineGlyph(alpha float64) rune {
	v := math.Min(alpha*lineGain, 1)
	if v <= 0 {
		return ' '
	}
	i := int(math.Ceil(v * float64(len(lineRamp)-1)))
	return lineRamp[min(i, len(lineRamp)-1)]
}

// BodyGlyph picks a dot character by particle radius
func BodyGlyph(r float64) rune {
	switch {
	case r < 1:
		return '·'
	case r < 2:
		return '•'
	}
	return '●'
}

// Shade blends c over bg by t (clamped to 0-1)
func Shade(bg, c color.RGBA, t float64) color.RGBA {
	t = math.Max(0, math.Min(1, t))
	mix := func(a, b uint8) uint8 {
		return uint8(float64(a) + (float64(b)-float64(a))*t + 0.5)
	}
	return color.RGBA{R: mix(bg.R, c.R), G: mix(bg.G, c.G), B: mix(bg.B, c.B), A: 255}
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
