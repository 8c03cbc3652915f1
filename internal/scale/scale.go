// Package scale is the entry point for turning a color option into a
// prefixed shade mapping. It picks the color-mix or the HSLA strategy from
// the capability probe.
package scale

import (
	"fmt"

	"github.com/leonardotrapani/shadescale/internal/colormix"
	"github.com/leonardotrapani/shadescale/internal/hsla"
	"github.com/leonardotrapani/shadescale/internal/probe"
	"github.com/leonardotrapani/shadescale/internal/shade"
)

// Strategy turns a color option into "<prefix><shade>" -> CSS color.
// Both methods return nil, nil for a nil option.
type Strategy interface {
	Name() string
	LightnessScale(opt *shade.Option, prefix string) (map[string]string, error)
	AlphaScale(opt *shade.Option, prefix string) (map[string]string, error)
}

var (
	_ Strategy = colormix.Strategy{}
	_ Strategy = hsla.Strategy{}
)

// Strategy names accepted by StrategyByName.
const (
	Auto     = "auto"
	ColorMix = "color-mix"
	HSLA     = "hsla"
)

// Resolver selects a strategy and runs it.
type Resolver struct {
	probe    *probe.Probe
	fixed    Strategy
	colorMix Strategy
	hsla     Strategy
}

// New returns a resolver that asks p which strategy to use. A nil probe
// uses probe.Default.
func New(p *probe.Probe) *Resolver {
	if p == nil {
		p = probe.Default
	}
	return &Resolver{
		probe:    p,
		colorMix: colormix.Strategy{},
		hsla:     hsla.Strategy{},
	}
}

// Fixed returns a resolver that always uses s.
func Fixed(s Strategy) *Resolver {
	r := New(nil)
	r.fixed = s
	return r
}

// StrategyByName builds a resolver for "auto", "color-mix" or "hsla".
func StrategyByName(name string, p *probe.Probe) (*Resolver, error) {
	switch name {
	case "", Auto:
		return New(p), nil
	case ColorMix:
		return Fixed(colormix.Strategy{}), nil
	case HSLA:
		return Fixed(hsla.Strategy{}), nil
	default:
		return nil, fmt.Errorf("unknown strategy: %s (use auto, color-mix or hsla)", name)
	}
}

// Strategy returns the strategy the next call will use.
func (r *Resolver) Strategy() Strategy {
	if r.fixed != nil {
		return r.fixed
	}
	if r.probe.Supported() {
		return r.colorMix
	}
	return r.hsla
}

// ResolveAlphaScale returns the alpha variants of opt keyed by prefix+shade.
func (r *Resolver) ResolveAlphaScale(opt *shade.Option, prefix string) (map[string]string, error) {
	if opt == nil {
		return nil, nil
	}
	return r.Strategy().AlphaScale(opt, prefix)
}

// ResolveLightnessScale returns the tonal variants of opt keyed by
// prefix+shade.
func (r *Resolver) ResolveLightnessScale(opt *shade.Option, prefix string) (map[string]string, error) {
	if opt == nil {
		return nil, nil
	}
	return r.Strategy().LightnessScale(opt, prefix)
}

var defaultResolver = New(probe.Default)

// ResolveAlphaScale uses the process-wide probe.
func ResolveAlphaScale(opt *shade.Option, prefix string) (map[string]string, error) {
	return defaultResolver.ResolveAlphaScale(opt, prefix)
}

// ResolveLightnessScale uses the process-wide probe.
func ResolveLightnessScale(opt *shade.Option, prefix string) (map[string]string, error) {
	return defaultResolver.ResolveLightnessScale(opt, prefix)
}
