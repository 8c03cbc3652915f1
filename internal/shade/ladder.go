package shade

import "fmt"

// Key identifies one shade of a scale, e.g. "500".
type Key string

// Base is the canonical shade every other shade is derived from.
const Base Key = "500"

// Keys is the full ladder, lightest first.
var Keys = []Key{
	"25", "50", "100", "150", "200", "300", "400",
	"500",
	"600", "700", "750", "800", "850", "900", "950",
}

// Count is the number of shades in a complete scale.
var Count = len(Keys)

var keyIndex = func() map[Key]int {
	m := make(map[Key]int, len(Keys))
	for i, k := range Keys {
		m[k] = i
	}
	return m
}()

// ParseKey validates a raw shade identifier.
func ParseKey(s string) (Key, error) {
	k := Key(s)
	if _, ok := keyIndex[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownShade, s)
	}
	return k, nil
}

// Index returns the position of k on the ladder, or -1 for unknown keys.
func (k Key) Index() int {
	if i, ok := keyIndex[k]; ok {
		return i
	}
	return -1
}

func (k Key) String() string { return string(k) }

// Light returns the shades above the base, lightest first (25..400).
func Light() []Key {
	i := keyIndex[Base]
	out := make([]Key, i)
	copy(out, Keys[:i])
	return out
}

// Dark returns the shades below the base, darkest last (600..950).
func Dark() []Key {
	i := keyIndex[Base]
	out := make([]Key, len(Keys)-i-1)
	copy(out, Keys[i+1:])
	return out
}

// alphaPercent is the opacity applied to each shade of an alpha scale.
var alphaPercent = map[Key]int{
	"25":  2,
	"50":  4,
	"100": 8,
	"150": 12,
	"200": 16,
	"300": 24,
	"400": 32,
	"500": 40,
	"600": 48,
	"700": 56,
	"750": 64,
	"800": 72,
	"850": 80,
	"900": 88,
	"950": 92,
}

// AlphaPercent returns the opacity percentage (0..100) for k.
func AlphaPercent(k Key) int {
	return alphaPercent[k]
}

// Alpha returns the opacity fraction (0..1) for k.
func Alpha(k Key) float64 {
	return float64(alphaPercent[k]) / 100
}

// Op says how a shade relates to the base shade.
type Op int

const (
	OpBase Op = iota
	OpLighten
	OpDarken
)

func (o Op) String() string {
	switch o {
	case OpBase:
		return "base"
	case OpLighten:
		return "lighten"
	case OpDarken:
		return "darken"
	default:
		return "unknown"
	}
}

// Definition describes one shade relative to the base shade.
type Definition struct {
	Op     Op
	Amount int // percent
}

var definitions = map[Key]Definition{
	"25":  {OpLighten, 92},
	"50":  {OpLighten, 80},
	"100": {OpLighten, 68},
	"150": {OpLighten, 56},
	"200": {OpLighten, 44},
	"300": {OpLighten, 32},
	"400": {OpLighten, 16},
	"500": {OpBase, 0},
	"600": {OpDarken, 16},
	"700": {OpDarken, 32},
	"750": {OpDarken, 44},
	"800": {OpDarken, 56},
	"850": {OpDarken, 68},
	"900": {OpDarken, 80},
	"950": {OpDarken, 92},
}

// DefinitionOf returns the lighten/darken definition for k.
func DefinitionOf(k Key) Definition {
	return definitions[k]
}
