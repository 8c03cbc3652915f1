package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/shadescale/internal/color"
	"github.com/leonardotrapani/shadescale/internal/hsla"
	"github.com/leonardotrapani/shadescale/internal/shade"
)

// The TUI is drawn with scales shadescale generates for itself.
var (
	brandScale = hsla.LightnessScale(color.MustParse("#336699"))
	slateScale = hsla.LightnessScale(color.MustParse("#64748b"))
)

func shadeOf(s shade.Scale[color.HSLA], k shade.Key) lipgloss.Color {
	c, _ := s.Get(k)
	return lipgloss.Color(c.Hex())
}

var (
	ColorPrimary   = shadeOf(brandScale, "400")
	ColorSecondary = shadeOf(brandScale, "200")

	ColorSuccess = lipgloss.Color("#22C55E")
	ColorError   = lipgloss.Color("#EF4444")

	ColorText   = shadeOf(slateScale, "25")
	ColorMuted  = shadeOf(slateScale, "300")
	ColorSubtle = shadeOf(slateScale, "500")

	// Backdrops translucent swatches are painted on
	BackdropDark, _ = slateScale.Get("950")
	BackdropLight   = color.MustParse("#ffffff")
)
