// Package theme turns every configured palette into an ordered list of
// named colors.
package theme

import (
	"fmt"

	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/scale"
	"github.com/leonardotrapani/shadescale/internal/shade"
)

// Entry is one generated color.
type Entry struct {
	Name  string
	Value string
}

// Palette is the generated scale of one configured palette.
type Palette struct {
	Name     string
	Prefix   string
	Kind     string
	Strategy string
	Entries  []Entry
}

// Theme is the result of resolving every palette.
type Theme struct {
	Palettes []Palette
}

// Entries returns all entries across palettes in config order.
func (t *Theme) Entries() []Entry {
	var out []Entry
	for _, p := range t.Palettes {
		out = append(out, p.Entries...)
	}
	return out
}

// Len is the total number of entries.
func (t *Theme) Len() int {
	n := 0
	for _, p := range t.Palettes {
		n += len(p.Entries)
	}
	return n
}

// Build resolves every palette of cfg with r.
func Build(cfg *config.Config, r *scale.Resolver) (*Theme, error) {
	t := &Theme{}
	seen := make(map[string]string)

	for _, pc := range cfg.Palettes {
		p, err := BuildPalette(pc, r)
		if err != nil {
			return nil, err
		}
		for _, e := range p.Entries {
			if other, ok := seen[e.Name]; ok {
				return nil, fmt.Errorf("palette %s: %s already generated by palette %s", pc.Name, e.Name, other)
			}
			seen[e.Name] = pc.Name
		}
		t.Palettes = append(t.Palettes, p)
	}

	return t, nil
}

// BuildPalette resolves one palette. Entries follow the shade ladder.
func BuildPalette(pc config.PaletteConfig, r *scale.Resolver) (Palette, error) {
	opt, err := pc.Option()
	if err != nil {
		return Palette{}, err
	}

	strategy := r.Strategy()
	var values map[string]string
	if pc.IsAlpha() {
		values, err = r.ResolveAlphaScale(opt, pc.Prefix)
	} else {
		values, err = r.ResolveLightnessScale(opt, pc.Prefix)
	}
	if err != nil {
		return Palette{}, fmt.Errorf("palette %s: %w", pc.Name, err)
	}

	p := Palette{
		Name:     pc.Name,
		Prefix:   pc.Prefix,
		Kind:     pc.Kind,
		Strategy: strategy.Name(),
	}
	for _, k := range shade.Keys {
		name := pc.Prefix + string(k)
		if v, ok := values[name]; ok {
			p.Entries = append(p.Entries, Entry{Name: name, Value: v})
		}
	}
	return p, nil
}
