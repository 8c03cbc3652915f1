package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

var ErrConfigNotFound = errors.New("config not found")

func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}

	return filepath.Join(configDir, "shadescale", "config.toml"), nil
}

// ResolvePath returns path, or the default config path when path is empty
func ResolvePath(path string) (string, error) {
	if path != "" {
		return path, nil
	}
	return GetConfigPath()
}

func Load() (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, err
	}
	return LoadFile(configPath)
}

func LoadFile(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: run shadescale configure", ErrConfigNotFound)
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat config file %s: %w", configPath, err)
	}

	log.Printf("Config: loading configuration from %s", configPath)
	config := DefaultConfig()
	config.Palettes = nil
	meta, err := toml.DecodeFile(configPath, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		log.Printf("Config: ignoring unknown keys: %v", undecoded)
	}

	config.applyPaletteDefaults()

	log.Printf("Config: configuration loaded successfully")
	return config, nil
}

// applyPaletteDefaults fills kind and prefix when a palette omits them
func (c *Config) applyPaletteDefaults() {
	for i := range c.Palettes {
		p := &c.Palettes[i]
		if p.Kind == "" {
			p.Kind = KindLightness
		}
		if p.Prefix == "" && p.Name != "" {
			p.Prefix = p.Name + "-"
		}
	}
}

func Save(config *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return err
	}
	return SaveFile(configPath, config)
}

func SaveFile(configPath string, config *Config) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(configHeader); err != nil {
		return fmt.Errorf("failed to write config header: %w", err)
	}
	if err := toml.NewEncoder(file).Encode(config); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}

const configHeader = `# Shadescale Configuration
# strategy: "auto" probes SHADESCALE_COLOR_MIX, "color-mix" and "hsla" force one generator.
# palettes: kind is "lightness" or "alpha"; give either color or a [palettes.shades] table.
# Alpha palettes given as shades must list all 15 shades (25 through 950).
# Changes are picked up by "shadescale watch" without restart.

`
