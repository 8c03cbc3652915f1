package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/leonardotrapani/shadescale/internal/config"
)

func editStrategy(cfg *config.Config) error {
	strategy := cfg.General.Strategy
	if strategy == "" {
		strategy = "auto"
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Generation Strategy").
				Description("color-mix emits CSS expressions, hsla emits computed colors").
				Options(
					huh.NewOption("Auto (probe for color-mix support)", "auto"),
					huh.NewOption("color-mix()", "color-mix"),
					huh.NewOption("Computed hsla()", "hsla"),
				).
				Value(&strategy),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.General.Strategy = strategy
	return nil
}

const addPalette = -1

func editPalettes(cfg *config.Config) error {
	options := make([]huh.Option[int], 0, len(cfg.Palettes)+1)
	for i, p := range cfg.Palettes {
		options = append(options, huh.NewOption(formatPaletteLabel(p), i))
	}
	options = append(options, huh.NewOption("+ Add palette", addPalette))

	var selected int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Palettes").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if selected == addPalette {
		p := config.PaletteConfig{Kind: config.KindLightness}
		if err := editPalette(cfg, &p, addPalette); err != nil {
			return err
		}
		cfg.Palettes = append(cfg.Palettes, p)
		return nil
	}

	p := cfg.Palettes[selected]
	var remove bool
	if len(cfg.Palettes) > 1 {
		remove = confirm(fmt.Sprintf("Remove palette %s?", p.Name), "Choose No to edit it")
	}
	if remove {
		cfg.Palettes = append(cfg.Palettes[:selected], cfg.Palettes[selected+1:]...)
		return nil
	}

	if err := editPalette(cfg, &p, selected); err != nil {
		return err
	}
	cfg.Palettes[selected] = p
	return nil
}

// editPalette edits p in place. Per-shade palettes keep their shades and
// only have their name, prefix and kind edited.
func editPalette(cfg *config.Config, p *config.PaletteConfig, idx int) error {
	name, prefix, kind, col := p.Name, p.Prefix, p.Kind, p.Color

	fields := []huh.Field{
		huh.NewInput().
			Title("Name").
			Value(&name).
			Validate(validatePaletteName(cfg, idx)),
		huh.NewInput().
			Title("Prefix").
			Description("Prepended to every shade key, e.g. brand- gives brand-500").
			Value(&prefix),
		huh.NewSelect[string]().
			Title("Kind").
			Options(
				huh.NewOption("Lightness (lighter and darker shades)", config.KindLightness),
				huh.NewOption("Alpha (transparent variants)", config.KindAlpha),
			).
			Value(&kind),
	}
	if len(p.Shades) == 0 {
		fields = append(fields, huh.NewInput().
			Title("Base color").
			Description("Any CSS color: #336699, rgb(51 102 153), rebeccapurple").
			Value(&col).
			Validate(validateColor))
	}

	form := huh.NewForm(huh.NewGroup(fields...)).WithTheme(getTheme())
	if err := form.Run(); err != nil {
		return err
	}

	p.Name, p.Prefix, p.Kind = name, prefix, kind
	if len(p.Shades) == 0 {
		p.Color = col
	}
	return nil
}

func editOutput(cfg *config.Config) error {
	format := cfg.Output.Format
	if format == "" {
		format = "css"
	}
	path := cfg.Output.Path
	selector := cfg.Output.Selector

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Output Format").
				Options(
					huh.NewOption("CSS custom properties", "css"),
					huh.NewOption("JSON", "json"),
					huh.NewOption("TOML", "toml"),
					huh.NewOption("YAML", "yaml"),
				).
				Value(&format),
			huh.NewInput().
				Title("Output Path").
				Description("Leave empty to print to stdout").
				Value(&path),
			huh.NewInput().
				Title("CSS Selector").
				Description("Block the custom properties are declared in").
				Value(&selector),
		),
	).WithTheme(getTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Output.Format = format
	cfg.Output.Path = path
	cfg.Output.Selector = selector
	if cfg.Output.Selector == "" {
		cfg.Output.Selector = ":root"
	}
	return nil
}

func editNotifications(cfg *config.Config) error {
	enabled := cfg.Notifications.Enabled
	notifType := cfg.Notifications.Type
	if notifType == "" {
		notifType = "desktop"
	}

	enableForm := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Notify when the theme is written?").
				Description("Used by shadescale watch").
				Value(&enabled),
		),
	).WithTheme(getTheme())

	if err := enableForm.Run(); err != nil {
		return err
	}

	cfg.Notifications.Enabled = enabled
	if !enabled {
		return nil
	}

	typeForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Notification Type").
				Options(
					huh.NewOption("Desktop notifications (notify-send)", "desktop"),
					huh.NewOption("Log to console only", "log"),
					huh.NewOption("None (silent)", "none"),
				).
				Value(&notifType),
		),
	).WithTheme(getTheme())

	if err := typeForm.Run(); err != nil {
		return err
	}

	cfg.Notifications.Type = notifType
	return nil
}
