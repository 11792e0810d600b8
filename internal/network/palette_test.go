package network

import (
	"image/color"
	"testing"

	"github.com/olivierh59500/particle-network/internal/config"
)

func TestSolidPalette(t *testing.T) {
	cfg := testNetwork()
	cfg.Color = "#ff8000"

	p, err := NewPalette(cfg, 1)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	want := color.RGBA{R: 255, G: 128, B: 0, A: 255}
	for _, pt := range [][2]float64{{0, 0}, {400, 300}, {-10, 610}} {
		if got := p.At(pt[0], pt[1]); got != want {
			t.Errorf("At(%v) = %v, want %v", pt, got, want)
		}
	}
}

func TestNoisePaletteDeterministic(t *testing.T) {
	cfg := testNetwork()
	cfg.Tint = config.TintNoise

	a, err := NewPalette(cfg, 7)
	if err != nil {
		t.Fatalf("NewPalette: %v", err)
	}
	b, _ := NewPalette(cfg, 7)

	varied := false
	first := a.At(0, 0)
	for x := 0.0; x < 2000; x += 97 {
		for y := 0.0; y < 1500; y += 89 {
			ca, cb := a.At(x, y), b.At(x, y)
			if ca != cb {
				t.Fatalf("At(%g,%g) differs across equal seeds: %v vs %v", x, y, ca, cb)
			}
			if ca.A != 255 {
				t.Fatalf("At(%g,%g) alpha = %d, want opaque", x, y, ca.A)
			}
			if ca != first {
				varied = true
			}
		}
	}
	if !varied {
		t.Error("noise palette produced a single colour")
	}
}

func TestNewPaletteErrors(t *testing.T) {
	cfg := testNetwork()
	cfg.Color = "teal"
	if _, err := NewPalette(cfg, 1); err == nil {
		t.Error("accepted non-hex colour")
	}

	cfg = testNetwork()
	cfg.Tint = "plaid"
	if _, err := NewPalette(cfg, 1); err == nil {
		t.Error("accepted unknown tint")
	}
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#0f172a")
	if err != nil {
		t.Fatalf("ParseColor: %v", err)
	}
	if c != (color.RGBA{R: 0x0f, G: 0x17, B: 0x2a, A: 255}) {
		t.Errorf("ParseColor = %v", c)
	}
}
