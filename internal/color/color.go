// Package color is the CSS color collaborator used by the scale
// generators: it parses CSS color strings into HSLA and formats HSLA back
// into CSS. Generators never look at color syntax themselves.
package color

import (
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// HSLA is a color in hue/saturation/lightness with alpha.
// H is in degrees [0,360), S and L are percentages [0,100], A is [0,1].
type HSLA struct {
	H float64
	S float64
	L float64
	A float64
}

// FromColorful converts an RGB color and alpha into HSLA.
func FromColorful(c colorful.Color, alpha float64) HSLA {
	h, s, l := c.Clamped().Hsl()
	return HSLA{H: h, S: s * 100, L: l * 100, A: clamp(alpha, 0, 1)}
}

// Colorful returns the RGB part of c, ignoring alpha.
func (c HSLA) Colorful() colorful.Color {
	return colorful.Hsl(c.H, clamp(c.S, 0, 100)/100, clamp(c.L, 0, 100)/100).Clamped()
}

// WithAlpha returns c with its alpha replaced.
func (c HSLA) WithAlpha(a float64) HSLA {
	c.A = clamp(a, 0, 1)
	return c
}

// ShiftLightness returns c with delta added to its lightness.
func (c HSLA) ShiftLightness(delta float64) HSLA {
	c.L = clamp(c.L+delta, 0, 100)
	return c
}

// String formats c as a CSS hsla() value.
func (c HSLA) String() string {
	return "hsla(" +
		formatNumber(normalizeHue(c.H)) + ", " +
		formatNumber(c.S) + "%, " +
		formatNumber(c.L) + "%, " +
		formatNumber(c.A) + ")"
}

// Hex returns the opaque #rrggbb form of c.
func (c HSLA) Hex() string {
	return c.Colorful().Hex()
}

// Composite paints c over an opaque backdrop and returns the visible color.
func Composite(backdrop, c HSLA) HSLA {
	mixed := backdrop.Colorful().BlendRgb(c.Colorful(), c.A)
	return FromColorful(mixed, 1)
}

func formatNumber(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if math.Round(h*100)/100 == 360 {
		return 0
	}
	return h
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
