package config

import "fmt"

func (c *Config) Validate() error {
	validStrategies := map[string]bool{"auto": true, "color-mix": true, "hsla": true}
	if !validStrategies[c.General.Strategy] {
		return fmt.Errorf("invalid general.strategy: %s (must be auto, color-mix, or hsla)", c.General.Strategy)
	}

	if len(c.Palettes) == 0 {
		return fmt.Errorf("invalid palettes: at least one palette is required")
	}

	names := make(map[string]bool)
	prefixes := make(map[string]string)
	for i, p := range c.Palettes {
		if p.Name == "" {
			return fmt.Errorf("invalid palettes[%d].name: empty", i)
		}
		if names[p.Name] {
			return fmt.Errorf("invalid palettes[%d].name: duplicate %q", i, p.Name)
		}
		names[p.Name] = true

		if other, ok := prefixes[p.Prefix]; ok {
			return fmt.Errorf("invalid palettes[%d].prefix: %q already used by palette %s", i, p.Prefix, other)
		}
		prefixes[p.Prefix] = p.Name

		if p.Kind != KindLightness && p.Kind != KindAlpha {
			return fmt.Errorf("invalid palettes[%d].kind: %s (must be lightness or alpha)", i, p.Kind)
		}

		if p.Color != "" && len(p.Shades) > 0 {
			return fmt.Errorf("invalid palettes[%d]: set either color or shades, not both", i)
		}
		if p.Color == "" && len(p.Shades) == 0 {
			return fmt.Errorf("invalid palettes[%d]: color or shades required", i)
		}

		opt, err := p.Option()
		if err != nil {
			return fmt.Errorf("invalid palettes[%d].shades: %w", i, err)
		}
		if err := opt.Validate(p.IsAlpha()); err != nil {
			return fmt.Errorf("invalid palettes[%d].shades: %w", i, err)
		}
	}

	validFormats := map[string]bool{"css": true, "json": true, "toml": true, "yaml": true}
	if !validFormats[c.Output.Format] {
		return fmt.Errorf("invalid output.format: %s (must be css, json, toml, or yaml)", c.Output.Format)
	}
	if c.Output.Format == "css" && c.Output.Selector == "" {
		return fmt.Errorf("invalid output.selector: empty")
	}

	if c.Notifications.Enabled {
		validTypes := map[string]bool{"desktop": true, "log": true, "none": true}
		if !validTypes[c.Notifications.Type] {
			return fmt.Errorf("invalid notifications.type: %s (must be desktop, log, or none)", c.Notifications.Type)
		}
	}

	return nil
}
