package tui

import (
	"strings"
	"testing"

	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/testutil"
)

func TestValidateColor(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"#336699", false},
		{"rebeccapurple", false},
		{"hsl(210 50% 40%)", false},
		{"", true},
		{"   ", true},
		{"not-a-color", true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			err := validateColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePaletteName(t *testing.T) {
	cfg := testutil.TestConfig()

	if err := validatePaletteName(cfg, addPalette)("brand"); err == nil {
		t.Error("expected duplicate name to be rejected for a new palette")
	}
	if err := validatePaletteName(cfg, 0)("brand"); err != nil {
		t.Errorf("editing a palette should keep its own name: %v", err)
	}
	if err := validatePaletteName(cfg, addPalette)(""); err == nil {
		t.Error("expected empty name to be rejected")
	}
	if err := validatePaletteName(cfg, addPalette)("accent"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestCloneConfig(t *testing.T) {
	cfg := testutil.TestConfig()
	cfg.Palettes[0].Color = ""
	cfg.Palettes[0].Shades = map[string]string{"500": "#336699"}

	clone := cloneConfig(cfg)
	clone.Palettes[0].Name = "changed"
	clone.Palettes[0].Shades["500"] = "red"
	clone.General.Strategy = "color-mix"

	if cfg.Palettes[0].Name != "brand" {
		t.Error("palette slice shared with original")
	}
	if cfg.Palettes[0].Shades["500"] != "#336699" {
		t.Error("shades map shared with original")
	}
	if cfg.General.Strategy != "hsla" {
		t.Error("general section shared with original")
	}
}

func TestLabels(t *testing.T) {
	cfg := testutil.TestConfig()

	if got := formatStrategyLabel(cfg); got != "Strategy: hsla" {
		t.Errorf("formatStrategyLabel() = %q", got)
	}
	if got := formatPalettesLabel(cfg); got != "Palettes: brand, overlay" {
		t.Errorf("formatPalettesLabel() = %q", got)
	}
	if got := formatOutputLabel(cfg); got != "Output: css → stdout" {
		t.Errorf("formatOutputLabel() = %q", got)
	}
	if got := formatNotificationsLabel(cfg); got != "Notifications: log" {
		t.Errorf("formatNotificationsLabel() = %q", got)
	}

	cfg.Notifications.Enabled = false
	if got := formatNotificationsLabel(cfg); got != "Notifications: disabled" {
		t.Errorf("formatNotificationsLabel() = %q", got)
	}

	p := config.PaletteConfig{Name: "x", Kind: config.KindAlpha, Shades: map[string]string{"500": "red", "600": "blue"}}
	if got := formatPaletteLabel(p); got != "x (alpha, 2 shades)" {
		t.Errorf("formatPaletteLabel() = %q", got)
	}

	if s := summarize(cfg); !strings.Contains(s, `prefix="brand-"`) {
		t.Errorf("summary missing prefix:\n%s", s)
	}
}
