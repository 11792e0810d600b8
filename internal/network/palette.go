package network

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/olivierh59500/particle-network/internal/config"
)

// Palette picks the draw colour for a point of the surface.
// Alpha is always supplied separately by the engine.
type Palette interface {
	At(x, y float64) color.RGBA
}

// SolidPalette paints everything in one colour
type SolidPalette struct {
	Color color.RGBA
}

func (p SolidPalette) At(x, y float64) color.RGBA {
	return p.Color
}

// NoisePalette shifts the hue of a base colour along a Perlin noise field
type NoisePalette struct {
	noise   *perlin.Perlin
	h, s, v float64
	spread  float64
	scale   float64
}

// NewNoisePalette creates a noise tint around base
func NewNoisePalette(base colorful.Color, spread, scale float64, seed int64) *NoisePalette {
	h, s, v := base.Hsv()
	return &NoisePalette{
		noise:  perlin.NewPerlin(2, 2, 3, seed),
		h:      h,
		s:      s,
		v:      v,
		spread: spread,
		scale:  scale,
	}
}

func (p *NoisePalette) At(x, y float64) color.RGBA {
	n := p.noise.Noise2D(x/p.scale, y/p.scale)
	h := math.Mod(p.h+n*p.spread+360, 360)
	r, g, b := colorful.Hsv(h, p.s, p.v).Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// NewPalette builds the palette selected by cfg.Tint
func NewPalette(cfg config.Network, seed int64) (Palette, error) {
	base, err := colorful.Hex(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("particle color %q: %w", cfg.Color, err)
	}
	switch cfg.Tint {
	case config.TintNoise:
		return NewNoisePalette(base, cfg.TintSpread, cfg.TintScale, seed), nil
	case config.TintSolid, "":
		return SolidPalette{Color: ToRGBA(base)}, nil
	}
	return nil, fmt.Errorf("unknown tint %q", cfg.Tint)
}

// ToRGBA converts a colorful colour to an opaque color.RGBA
func ToRGBA(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// ParseColor parses a #rrggbb or #rgb string into an opaque color.RGBA
func ParseColor(hex string) (color.RGBA, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, err
	}
	return ToRGBA(c), nil
}
