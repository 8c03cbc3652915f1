package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/leonardotrapani/shadescale/internal/bus"
	"github.com/leonardotrapani/shadescale/internal/clipboard"
	"github.com/leonardotrapani/shadescale/internal/config"
	"github.com/leonardotrapani/shadescale/internal/daemon"
	"github.com/leonardotrapani/shadescale/internal/export"
	"github.com/leonardotrapani/shadescale/internal/hsla"
	"github.com/leonardotrapani/shadescale/internal/probe"
	"github.com/leonardotrapani/shadescale/internal/scale"
	"github.com/leonardotrapani/shadescale/internal/theme"
	"github.com/leonardotrapani/shadescale/internal/tui"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool

	rootCmd := &cobra.Command{
		Use:   "shadescale",
		Short: "Generate 15-step color scales as CSS custom properties",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// the daemon always logs; one-shot commands only with --verbose
			if !verbose && cmd.Name() != "watch" {
				log.SetOutput(io.Discard)
			}
		},
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log what shadescale is doing")

	rootCmd.AddCommand(
		generateCmd(),
		previewCmd(),
		watchCmd(),
		statusCmd(),
		regenCmd(),
		stopCmd(),
		configureCmd(),
		probeCmd(),
	)
	return rootCmd
}

type generateFlags struct {
	configPath string
	name       string
	prefix     string
	alpha      bool
	shades     map[string]string
	strategy   string
	format     string
	output     string
	selector   string
	copy       bool
}

func (f *generateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/shadescale/config.toml)")
	cmd.Flags().StringVar(&f.name, "name", "color", "palette name when a color is given")
	cmd.Flags().StringVarP(&f.prefix, "prefix", "p", "", "prefix for every generated key when a color is given")
	cmd.Flags().BoolVarP(&f.alpha, "alpha", "a", false, "generate transparent variants instead of lighter/darker shades")
	cmd.Flags().StringToStringVar(&f.shades, "shade", nil, "explicit shade, e.g. --shade 500=#336699 --shade 700=navy")
}

// adHoc reports whether the palette comes from the command line.
func (f *generateFlags) adHoc(args []string) bool {
	return len(args) > 0 || len(f.shades) > 0
}

// loadConfig returns the configuration a generate-like command works on:
// a single palette built from args and flags, or the config file.
func (f *generateFlags) loadConfig(args []string) (*config.Config, error) {
	var cfg *config.Config
	if f.adHoc(args) {
		cfg = config.DefaultConfig()
		p := config.PaletteConfig{
			Name:   f.name,
			Prefix: f.prefix,
			Kind:   config.KindLightness,
			Shades: f.shades,
		}
		if f.alpha {
			p.Kind = config.KindAlpha
		}
		if len(args) > 0 {
			if len(f.shades) > 0 {
				return nil, errors.New("give either a color argument or --shade flags, not both")
			}
			p.Color = args[0]
		}
		cfg.Palettes = []config.PaletteConfig{p}
	} else {
		path, err := config.ResolvePath(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg, err = config.LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if f.strategy != "" {
		cfg.General.Strategy = f.strategy
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.output != "" {
		cfg.Output.Path = f.output
	}
	if f.selector != "" {
		cfg.Output.Selector = f.selector
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func generateCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "generate [color]",
		Short: "Generate a color scale",
		Long: `Generate a 15-step scale (25, 50, 100 ... 900, 950) from a base color.

With a color argument or --shade flags a single palette is generated;
otherwise every palette in the config file is generated.`,
		Example: `  shadescale generate '#336699' --prefix brand-
  shadescale generate rebeccapurple --alpha --strategy hsla
  shadescale generate --shade 500=#336699 --shade 900=#0b1a2a
  shadescale generate --config ./theme.toml --format json -o theme.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(args)
			if err != nil {
				return err
			}
			return runGenerate(cmd.Context(), cmd.OutOrStdout(), cfg, f.copy)
		},
	}

	f.register(cmd)
	cmd.Flags().StringVarP(&f.strategy, "strategy", "s", "", "auto, color-mix or hsla")
	cmd.Flags().StringVarP(&f.format, "format", "f", "", "css, json, toml or yaml")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().StringVar(&f.selector, "selector", "", "CSS block selector (default :root)")
	cmd.Flags().BoolVar(&f.copy, "copy", false, "also copy the result to the clipboard")

	return cmd
}

func runGenerate(ctx context.Context, w io.Writer, cfg *config.Config, copyOut bool) error {
	r, err := scale.StrategyByName(cfg.General.Strategy, probe.Default)
	if err != nil {
		return err
	}

	t, err := theme.Build(cfg, r)
	if err != nil {
		return err
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	opts := export.Options{Format: format, Selector: cfg.Output.Selector}

	if cfg.Output.Path == "" {
		if err := export.Write(w, t, opts); err != nil {
			return err
		}
	} else {
		if err := export.WriteFile(cfg.Output.Path, t, opts); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "wrote %d colors to %s\n", t.Len(), cfg.Output.Path)
	}

	if !copyOut {
		return nil
	}
	var buf bytes.Buffer
	if err := export.Write(&buf, t, opts); err != nil {
		return err
	}
	if err := clipboard.New().Copy(ctx, buf.String()); err != nil {
		return fmt.Errorf("failed to copy theme: %w", err)
	}
	fmt.Fprintln(os.Stderr, "copied to clipboard")
	return nil
}

func previewCmd() *cobra.Command {
	f := &generateFlags{}

	cmd := &cobra.Command{
		Use:   "preview [color]",
		Short: "Show a scale as terminal swatches",
		Long: `Show generated scales as swatches in the terminal.

The preview always computes hsla() values, since a terminal cannot
evaluate color-mix() expressions. Alpha shades are painted on the
terminal background.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.loadConfig(args)
			if err != nil {
				return err
			}

			t, err := theme.Build(cfg, scale.Fixed(hsla.Strategy{}))
			if err != nil {
				return err
			}
			return tui.Preview(cmd.OutOrStdout(), t)
		},
	}

	f.register(cmd)
	return cmd
}

func watchCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Regenerate the theme whenever the config file changes",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := config.NewManager(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			b, err := bus.Default()
			if err != nil {
				return err
			}
			d := daemon.New(m, b, probe.Default, nil)
			d.SetOutput(cmd.OutOrStdout())
			return d.Run()
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/shadescale/config.toml)")
	return cmd
}

func busCmd(use, short string, command byte) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := bus.Default()
			if err != nil {
				return err
			}
			resp, err := b.SendCommand(command)
			if err != nil {
				return fmt.Errorf("failed to reach shadescale watch: %w", err)
			}
			fmt.Fprint(cmd.OutOrStdout(), resp)
			return nil
		},
	}
}

func statusCmd() *cobra.Command {
	return busCmd("status", "Show the state of the running watch daemon", 's')
}

func regenCmd() *cobra.Command {
	return busCmd("regen", "Ask the watch daemon to regenerate now", 'r')
}

func stopCmd() *cobra.Command {
	return busCmd("stop", "Stop the watch daemon", 'q')
}

func configureCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "configure",
		Short: "Interactive configuration setup",
		Long: `Interactive configuration editor for shadescale.
This will guide you through setting up:
- The generation strategy (auto, color-mix or hsla)
- Palettes: base colors, prefixes and lightness or alpha scales
- Output format and destination
- Notifications for the watch daemon`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigure(configPath)
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file (default $XDG_CONFIG_HOME/shadescale/config.toml)")
	return cmd
}

func runConfigure(configPath string) error {
	path, err := config.ResolvePath(configPath)
	if err != nil {
		return err
	}

	// Load existing config or start from the defaults
	cfg, err := config.LoadFile(path)
	if errors.Is(err, config.ErrConfigNotFound) {
		cfg = config.DefaultConfig()
	} else if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	result, err := tui.Configure(cfg)
	if err != nil {
		return fmt.Errorf("configuration editor error: %w", err)
	}

	if result.Cancelled {
		fmt.Println("Configuration cancelled.")
		return nil
	}

	if err := result.Config.Validate(); err != nil {
		fmt.Printf("Configuration validation failed: %v\n", err)
		return err
	}

	if err := config.SaveFile(path, result.Config); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Println()
	fmt.Println(tui.StyleSuccess.Render("Configuration saved successfully!"))
	fmt.Printf("Config file location: %s\n", path)
	fmt.Println()
	fmt.Println("Next Steps:")
	fmt.Println("1. Print the theme: shadescale generate")
	fmt.Println("2. Or keep it up to date: shadescale watch")
	return nil
}

func probeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "probe",
		Short: "Report whether color-mix() output will be used",
		Long: `Report the result of the color-mix() support probe used by the auto strategy.

Set ` + probe.EnvVar + `=1 when the target renderer understands color-mix().`,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := scale.New(probe.Default)
			fmt.Fprintf(cmd.OutOrStdout(), "color-mix supported: %v\nauto strategy: %s\n",
				probe.IsSupported(), r.Strategy().Name())
			return nil
		},
	}
}
