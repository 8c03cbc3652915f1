package tui

import (
	"errors"
	"fmt"
	"maps"
	"strings"

	"github.com/leonardotrapani/shadescale/internal/color"
	"github.com/leonardotrapani/shadescale/internal/config"
)

func cloneConfig(cfg *config.Config) *config.Config {
	out := *cfg
	out.Palettes = make([]config.PaletteConfig, len(cfg.Palettes))
	for i, p := range cfg.Palettes {
		p.Shades = maps.Clone(p.Shades)
		out.Palettes[i] = p
	}
	return &out
}

func validateColor(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("color is required")
	}
	if _, err := color.Parse(s); err != nil {
		return err
	}
	return nil
}

// validatePaletteName rejects empty names and names used by another
// palette. idx is the palette being edited, or addPalette.
func validatePaletteName(cfg *config.Config, idx int) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New("name is required")
		}
		for i, p := range cfg.Palettes {
			if i != idx && p.Name == s {
				return fmt.Errorf("palette %s already exists", s)
			}
		}
		return nil
	}
}

func formatStrategyLabel(cfg *config.Config) string {
	return fmt.Sprintf("Strategy: %s", cfg.General.Strategy)
}

func formatPalettesLabel(cfg *config.Config) string {
	names := make([]string, 0, len(cfg.Palettes))
	for _, p := range cfg.Palettes {
		names = append(names, p.Name)
	}
	if len(names) == 0 {
		return "Palettes: none"
	}
	return fmt.Sprintf("Palettes: %s", strings.Join(names, ", "))
}

func formatPaletteLabel(p config.PaletteConfig) string {
	source := p.Color
	if len(p.Shades) > 0 {
		source = fmt.Sprintf("%d shades", len(p.Shades))
	}
	return fmt.Sprintf("%s (%s, %s)", p.Name, p.Kind, source)
}

func formatOutputLabel(cfg *config.Config) string {
	target := cfg.Output.Path
	if target == "" {
		target = "stdout"
	}
	return fmt.Sprintf("Output: %s → %s", cfg.Output.Format, target)
}

func formatNotificationsLabel(cfg *config.Config) string {
	if !cfg.Notifications.Enabled {
		return "Notifications: disabled"
	}
	return fmt.Sprintf("Notifications: %s", cfg.Notifications.Type)
}

func summarize(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString(StyleLabel.Render("Configuration Summary"))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s\n", formatStrategyLabel(cfg))
	for _, p := range cfg.Palettes {
		fmt.Fprintf(&b, "  %s prefix=%q\n", formatPaletteLabel(p), p.Prefix)
	}
	fmt.Fprintf(&b, "%s\n", formatOutputLabel(cfg))
	fmt.Fprintf(&b, "%s", formatNotificationsLabel(cfg))
	return b.String()
}
