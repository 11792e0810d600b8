package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var (
	black = color.RGBA{A: 255}
	white = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func newSimScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func glyphAt(s tcell.Screen, x, y int) rune {
	r, _, _, _ := s.GetContent(x, y)
	return r
}

func TestSurfaceSize(t *testing.T) {
	screen := newSimScreen(t, 80, 30)
	s := NewSurface(screen, 10, 20, black)

	w, h := s.Size()
	if w != 800 || h != 600 {
		t.Errorf("size = %gx%g, want 800x600", w, h)
	}

	screen.SetSize(40, 10)
	s.Sync()
	w, h = s.Size()
	if w != 400 || h != 200 {
		t.Errorf("size after sync = %gx%g, want 400x200", w, h)
	}

	if x, y := s.CellCenter(3, 2); x != 35 || y != 50 {
		t.Errorf("CellCenter(3,2) = %g,%g, want 35,50", x, y)
	}
}

func TestSurfaceBodyOverLine(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := NewSurface(screen, 10, 20, black)
	s.ClearRect(0, 0, 200, 200)

	s.FillCircle(55, 35, 1.5, white, 0.3)
	s.StrokeLine(5, 30, 195, 30, 0.5, white, 0.08)

	if got := glyphAt(screen, 5, 1); got != '•' {
		t.Errorf("body cell = %q, want '•'", got)
	}
	for _, x := range []int{0, 4, 6, 19} {
		if got := glyphAt(screen, x, 1); got != LineGlyph(0.08) {
			t.Errorf("line cell %d = %q, want %q", x, got, LineGlyph(0.08))
		}
	}
	if got := glyphAt(screen, 0, 0); got != ' ' {
		t.Errorf("untouched cell = %q, want blank", got)
	}
}

func TestSurfaceKeepsBrightestLine(t *testing.T) {
	screen := newSimScreen(t, 20, 10)
	s := NewSurface(screen, 10, 20, black)
	s.ClearRect(0, 0, 200, 200)

	s.StrokeLine(5, 10, 95, 10, 0.5, white, 0.1)
	s.StrokeLine(5, 10, 95, 10, 0.5, white, 0.02)
	if got := glyphAt(screen, 3, 0); got != LineGlyph(0.1) {
		t.Errorf("cell = %q, want brighter %q", got, LineGlyph(0.1))
	}

	s.ClearRect(0, 0, 200, 200)
	if got := glyphAt(screen, 3, 0); got != ' ' {
		t.Errorf("cell after clear = %q, want blank", got)
	}
	s.StrokeLine(5, 10, 95, 10, 0.5, white, 0.02)
	if got := glyphAt(screen, 3, 0); got != LineGlyph(0.02) {
		t.Errorf("cell after clear = %q, want %q", got, LineGlyph(0.02))
	}
}

func TestSurfaceClipsOutside(t *testing.T) {
	screen := newSimScreen(t, 10, 5)
	s := NewSurface(screen, 10, 20, black)
	s.ClearRect(-10, -10, 200, 200)

	s.FillCircle(-8, -8, 2, white, 0.5)
	s.FillCircle(500, 500, 2, white, 0.5)
	s.StrokeLine(-100, -100, 500, 500, 0.5, white, 0.1)
}

func TestGlyphs(t *testing.T) {
	if LineGlyph(0) != ' ' {
		t.Error("zero alpha line should be blank")
	}
	prev := LineGlyph(0.001)
	for a := 0.01; a <= 0.2; a += 0.01 {
		g := LineGlyph(a)
		if indexOf(g) < indexOf(prev) {
			t.Fatalf("LineGlyph(%g) = %q darker than %q", a, g, prev)
		}
		prev = g
	}

	for _, tt := range []struct {
		r    float64
		want rune
	}{{0.5, '·'}, {1.2, '•'}, {2.0, '●'}, {3.5, '●'}} {
		if got := BodyGlyph(tt.r); got != tt.want {
			t.Errorf("BodyGlyph(%g) = %q, want %q", tt.r, got, tt.want)
		}
	}
}

func indexOf(g rune) int {
	for i, r := range lineRamp {
		if r == g {
			return i
		}
	}
	return -1
}

func TestShade(t *testing.T) {
	if got := Shade(black, white, 0); got != black {
		t.Errorf("Shade 0 = %v", got)
	}
	if got := Shade(black, white, 2); got != white {
		t.Errorf("Shade clamps: %v", got)
	}
	if got := Shade(black, white, 0.5); got.R != 128 {
		t.Errorf("Shade 0.5 R = %d, want 128", got.R)
	}
}
