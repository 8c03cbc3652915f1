// Package hsla builds shade scales by interpolating HSLA lightness and
// alpha. It works everywhere, including environments without color-mix.
package hsla

import (
	"github.com/leonardotrapani/shadescale/internal/color"
	"github.com/leonardotrapani/shadescale/internal/shade"
)

const (
	// LightAnchor is the lightness the lightest shade reaches.
	LightAnchor = 97.0
	// DarkAnchor is the lightness the darkest shade reaches.
	DarkAnchor = 12.0
)

// LightnessScale spreads the shades evenly between base and the anchors.
// Hue, saturation and alpha are kept; 500 is base unchanged. Light shades
// never get darker than base and dark shades never lighter.
func LightnessScale(base color.HSLA) shade.Scale[color.HSLA] {
	s := shade.NewScale[color.HSLA]()
	_ = s.Set(shade.Base, base)

	light := shade.Light()
	dark := shade.Dark()

	// past an anchor the tail stays flat at base lightness
	lightStep := max(0, (LightAnchor-base.L)/float64(len(light)))
	darkStep := max(0, (base.L-DarkAnchor)/float64(len(dark)))

	// walk outwards from 500
	for i := 1; i <= len(light); i++ {
		k := light[len(light)-i]
		c := base
		c.L = base.L + float64(i)*lightStep
		_ = s.Set(k, c)
	}
	for i := 1; i <= len(dark); i++ {
		c := base
		c.L = base.L - float64(i)*darkStep
		_ = s.Set(dark[i-1], c)
	}

	return s
}

// AlphaScale keeps hue, saturation and lightness and applies the fixed
// per-shade alpha.
func AlphaScale(base color.HSLA) shade.Scale[color.HSLA] {
	s := shade.NewScale[color.HSLA]()
	stripped := base.WithAlpha(0)
	for _, k := range shade.Keys {
		_ = s.Set(k, stripped.WithAlpha(shade.Alpha(k)))
	}
	return s
}
