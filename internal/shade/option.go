package shade

import (
	"errors"
	"fmt"
)

var (
	ErrMissingBaseShade     = errors.New("missing required base shade 500")
	ErrIncompleteAlphaScale = errors.New("alpha scale must define every shade")
	ErrUnknownShade         = errors.New("unknown shade")
)

// Option is the user's color customization: either a single color or a
// partial mapping from shade to color. A nil *Option means no
// customization was requested.
type Option struct {
	color  string
	shades map[Key]string
}

// Color returns an option seeded by a single base color.
func Color(c string) *Option {
	return &Option{color: c}
}

// Shades returns an option carrying explicit per-shade colors.
func Shades(m map[Key]string) *Option {
	cp := make(map[Key]string, len(m))
	for k, v := range m {
		cp[k] = v
	}
	return &Option{shades: cp}
}

// IsShades reports whether the option was given in per-shade form.
func (o *Option) IsShades() bool {
	return o != nil && o.shades != nil
}

// Shade returns the user-supplied color for k. A single-color option only
// supplies the base shade.
func (o *Option) Shade(k Key) (string, bool) {
	if o == nil {
		return "", false
	}
	if o.shades == nil {
		if k == Base {
			return o.color, true
		}
		return "", false
	}
	c, ok := o.shades[k]
	return c, ok
}

// BaseColor returns the base shade color or ErrMissingBaseShade.
func (o *Option) BaseColor() (string, error) {
	c, ok := o.Shade(Base)
	if !ok {
		return "", ErrMissingBaseShade
	}
	return c, nil
}

// Validate checks the shade keys and, for per-shade options, that the base
// shade is present. With requireAll every shade must be given.
func (o *Option) Validate(requireAll bool) error {
	if o == nil || o.shades == nil {
		return nil
	}
	for k := range o.shades {
		if k.Index() < 0 {
			return fmt.Errorf("%w: %q", ErrUnknownShade, string(k))
		}
	}
	if _, ok := o.shades[Base]; !ok {
		return ErrMissingBaseShade
	}
	if requireAll {
		var missing []string
		for _, k := range Keys {
			if _, ok := o.shades[k]; !ok {
				missing = append(missing, string(k))
			}
		}
		if len(missing) > 0 {
			return fmt.Errorf("%w: missing %v", ErrIncompleteAlphaScale, missing)
		}
	}
	return nil
}

// Overrides returns the user-supplied colors as a scale.
func (o *Option) Overrides() Scale[string] {
	s := NewScale[string]()
	for _, k := range Keys {
		if c, ok := o.Shade(k); ok {
			_ = s.Set(k, c)
		}
	}
	return s
}
