package config

import (
	"fmt"
	"sort"

	"github.com/leonardotrapani/shadescale/internal/shade"
)

// GeneralConfig holds settings that apply to every palette
type GeneralConfig struct {
	Strategy string `toml:"strategy"` // "auto", "color-mix", "hsla"
}

type Config struct {
	General       GeneralConfig       `toml:"general"`
	Palettes      []PaletteConfig     `toml:"palettes"`
	Output        OutputConfig        `toml:"output"`
	Notifications NotificationsConfig `toml:"notifications"`
}

// PaletteConfig describes one generated scale. Either Color or Shades is set.
type PaletteConfig struct {
	Name   string            `toml:"name"`
	Prefix string            `toml:"prefix"`
	Kind   string            `toml:"kind"` // "lightness", "alpha"
	Color  string            `toml:"color,omitempty"`
	Shades map[string]string `toml:"shades,omitempty"`
}

type OutputConfig struct {
	Format   string `toml:"format"` // "css", "json", "toml", "yaml"
	Path     string `toml:"path"`   // empty = stdout
	Selector string `toml:"selector"`
}

type NotificationsConfig struct {
	Enabled bool   `toml:"enabled"`
	Type    string `toml:"type"` // "desktop", "log", "none"
}

const (
	KindLightness = "lightness"
	KindAlpha     = "alpha"
)

// IsAlpha reports whether the palette produces alpha variants
func (p PaletteConfig) IsAlpha() bool {
	return p.Kind == KindAlpha
}

// Option converts the palette into the generator input
func (p PaletteConfig) Option() (*shade.Option, error) {
	if len(p.Shades) == 0 {
		if p.Color == "" {
			return nil, nil
		}
		return shade.Color(p.Color), nil
	}

	shades := make(map[shade.Key]string, len(p.Shades))
	keys := make([]string, 0, len(p.Shades))
	for k := range p.Shades {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, raw := range keys {
		k, err := shade.ParseKey(raw)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", p.Name, err)
		}
		shades[k] = p.Shades[raw]
	}
	return shade.Shades(shades), nil
}

// Palette returns the palette with the given name
func (c *Config) Palette(name string) (PaletteConfig, bool) {
	for _, p := range c.Palettes {
		if p.Name == name {
			return p, true
		}
	}
	return PaletteConfig{}, false
}
