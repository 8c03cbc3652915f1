package config

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			Strategy: "auto",
		},
		Palettes: []PaletteConfig{
			{
				Name:   "primary",
				Prefix: "primary-",
				Kind:   KindLightness,
				Color:  "#336699",
			},
			{
				Name:   "primary-alpha",
				Prefix: "primary-alpha-",
				Kind:   KindAlpha,
				Color:  "#336699",
			},
		},
		Output: OutputConfig{
			Format:   "css",
			Path:     "",
			Selector: ":root",
		},
		Notifications: NotificationsConfig{
			Enabled: false,
			Type:    "log",
		},
	}
}
