package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/leonardotrapani/shadescale/internal/color"
	"github.com/leonardotrapani/shadescale/internal/theme"
	"github.com/muesli/termenv"
)

const swatchWidth = 6

// PreviewOptions describe the terminal the preview is drawn on.
type PreviewOptions struct {
	Profile termenv.Profile
	Dark    bool
}

// DetectPreviewOptions inspects stdout.
func DetectPreviewOptions() PreviewOptions {
	out := termenv.NewOutput(os.Stdout)
	return PreviewOptions{
		Profile: out.EnvColorProfile(),
		Dark:    out.HasDarkBackground(),
	}
}

// Preview draws t to w using the current terminal's capabilities.
func Preview(w io.Writer, t *theme.Theme) error {
	s, err := RenderPreview(t, DetectPreviewOptions())
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, s)
	return err
}

// RenderPreview renders every palette as a column of swatches. Translucent
// shades are shown as they look on the terminal background. The Ascii
// profile prints names and values only.
func RenderPreview(t *theme.Theme, opts PreviewOptions) (string, error) {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(opts.Profile)
	r.SetHasDarkBackground(opts.Dark)

	backdrop := BackdropLight
	if opts.Dark {
		backdrop = BackdropDark
	}

	header := r.NewStyle().Bold(true).Foreground(ColorPrimary)
	muted := r.NewStyle().Foreground(ColorMuted)

	var b strings.Builder
	for i, p := range t.Palettes {
		if i > 0 {
			b.WriteString("\n")
		}
		title := fmt.Sprintf("%s (%s, %s)", p.Name, p.Kind, p.Strategy)
		if opts.Profile != termenv.Ascii {
			title = header.Render(title)
		}
		b.WriteString(title)
		b.WriteString("\n")

		width := 0
		for _, e := range p.Entries {
			width = max(width, len(e.Name))
		}

		for _, e := range p.Entries {
			c, err := color.Parse(e.Value)
			if err != nil {
				return "", fmt.Errorf("preview %s: %w", e.Name, err)
			}
			if opts.Profile == termenv.Ascii {
				fmt.Fprintf(&b, "  %-*s  %s\n", width, e.Name, e.Value)
				continue
			}

			hex := Swatch(c, backdrop)
			swatch := r.NewStyle().Background(lipgloss.Color(hex)).Render(strings.Repeat(" ", swatchWidth))
			fmt.Fprintf(&b, "  %s %-*s  %s  %s\n", swatch, width, e.Name, hex, muted.Render(e.Value))
		}
	}
	return b.String(), nil
}

// Swatch returns the opaque color c shows on backdrop.
func Swatch(c, backdrop color.HSLA) string {
	if c.A < 1 {
		c = color.Composite(backdrop, c)
	}
	return c.Hex()
}
