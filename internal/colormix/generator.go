package colormix

import "github.com/leonardotrapani/shadescale/internal/shade"

// Strategy generates scales as color-mix() expressions. It is used when the
// rendering environment supports color-mix.
type Strategy struct{}

func (Strategy) Name() string { return "color-mix" }

// LightnessScale derives every shade from the 500 color with Lighten and
// Darken. Shades supplied by the user replace the generated ones.
func (Strategy) LightnessScale(opt *shade.Option, prefix string) (map[string]string, error) {
	if opt == nil {
		return nil, nil
	}
	if err := opt.Validate(false); err != nil {
		return nil, err
	}
	base, err := opt.BaseColor()
	if err != nil {
		return nil, err
	}

	generated := LightnessScale(base)
	return shade.Prefixed(prefix, overlay(generated, opt.Overrides())), nil
}

// AlphaScale produces transparent variants of the 500 color, 500 included.
// A per-shade option has to name every shade; its colors are used as given.
func (Strategy) AlphaScale(opt *shade.Option, prefix string) (map[string]string, error) {
	if opt == nil {
		return nil, nil
	}
	if err := opt.Validate(true); err != nil {
		return nil, err
	}
	base, err := opt.BaseColor()
	if err != nil {
		return nil, err
	}

	generated := AlphaScale(base)
	if !opt.IsShades() {
		return shade.Prefixed(prefix, generated), nil
	}
	return shade.Prefixed(prefix, overlay(generated, opt.Overrides())), nil
}

// LightnessScale returns the 15 lighten/darken expressions for base.
func LightnessScale(base string) shade.Scale[string] {
	s := shade.NewScale[string]()
	for _, k := range shade.Keys {
		def := shade.DefinitionOf(k)
		var v string
		switch def.Op {
		case shade.OpLighten:
			v = Lighten(base, def.Amount)
		case shade.OpDarken:
			v = Darken(base, def.Amount)
		default:
			v = base
		}
		_ = s.Set(k, v)
	}
	return s
}

// AlphaScale returns the 15 transparentize expressions for base.
func AlphaScale(base string) shade.Scale[string] {
	s := shade.NewScale[string]()
	for _, k := range shade.Keys {
		_ = s.Set(k, Transparentize(base, shade.AlphaPercent(k)))
	}
	return s
}

func overlay(generated, user shade.Scale[string]) shade.Scale[string] {
	out := shade.NewScale[string]()
	for _, k := range shade.Keys {
		if v, ok := user.Get(k); ok {
			_ = out.Set(k, v)
			continue
		}
		if v, ok := generated.Get(k); ok {
			_ = out.Set(k, v)
		}
	}
	return out
}
