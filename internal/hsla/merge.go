package hsla

import (
	"github.com/leonardotrapani/shadescale/internal/color"
	"github.com/leonardotrapani/shadescale/internal/shade"
)

// Generator derives a full scale from the base color.
type Generator func(base color.HSLA) shade.Scale[color.HSLA]

// Merge fills the shades the user left out with generated ones. User
// colors win; a single color only seeds the generator. A nil option
// yields nil. With requireAll a per-shade option must name every shade. Color parse errors are returned unchanged.
func Merge(opt *shade.Option, generate Generator, requireAll bool, prefix string) (map[string]string, error) {
	if opt == nil {
		return nil, nil
	}
	if err := opt.Validate(requireAll); err != nil {
		return nil, err
	}

	user := shade.NewScale[color.HSLA]()
	for _, k := range shade.Keys {
		raw, ok := opt.Shade(k)
		if !ok {
			continue
		}
		c, err := color.Parse(raw)
		if err != nil {
			return nil, err
		}
		_ = user.Set(k, c)
	}

	base, ok := user.Get(shade.Base)
	if !ok {
		return nil, shade.ErrMissingBaseShade
	}
	generated := generate(base)
	if !opt.IsShades() {
		return shade.Prefixed(prefix, shade.Map(generated, color.HSLA.String)), nil
	}

	merged := shade.NewScale[string]()
	for _, k := range shade.Keys {
		if c, ok := user.Get(k); ok {
			_ = merged.Set(k, c.String())
			continue
		}
		if c, ok := generated.Get(k); ok {
			_ = merged.Set(k, c.String())
		}
	}

	return shade.Prefixed(prefix, merged), nil
}

// Strategy generates scales as hsla() values.
type Strategy struct{}

func (Strategy) Name() string { return "hsla" }

func (Strategy) LightnessScale(opt *shade.Option, prefix string) (map[string]string, error) {
	return Merge(opt, LightnessScale, false, prefix)
}

func (Strategy) AlphaScale(opt *shade.Option, prefix string) (map[string]string, error) {
	return Merge(opt, AlphaScale, true, prefix)
}
