// Package colormix builds shade scales out of CSS color-mix() expressions
// instead of computing colors numerically.
package colormix

import "strconv"

// Space is the interpolation space every expression mixes in.
const Space = "oklch"

// Mix blends a and b. Inputs are not validated.
func Mix(a, b string) string {
	return "color-mix(in " + Space + ", " + a + ", " + b + ")"
}

// Transparentize keeps percentage of color and fills the rest with
// transparent.
func Transparentize(color string, percentage int) string {
	return Mix(color+" "+pct(percentage), "transparent")
}

// Lighten mixes white into color by percentage.
func Lighten(color string, percentage int) string {
	return Mix(color+" "+pct(100-percentage), "white "+pct(percentage))
}

// Darken reduces color to (100 - percentage) and mixes it with black at a
// fixed 10%. Black's weight does not follow percentage, unlike Lighten.
func Darken(color string, percentage int) string {
	return Mix(color+" "+pct(100-percentage), "black 10%")
}

func pct(p int) string {
	return strconv.Itoa(p) + "%"
}
