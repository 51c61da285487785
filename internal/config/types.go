package config

import "github.com/phyten/contrastx/internal/palette"

// PaletteConfig is one layer of palette settings. Nil fields are unset and
// leave the lower layer in place.
type PaletteConfig struct {
	Colors    *[]string `yaml:"colors" toml:"colors" json:"colors"`
	Preset    *string   `yaml:"preset" toml:"preset" json:"preset"`
	Threshold *float64  `yaml:"threshold" toml:"threshold" json:"threshold"`
	Suppress  *bool     `yaml:"suppress" toml:"suppress" json:"suppress"`
}

type UIConfig struct {
	Output    *string `yaml:"output" toml:"output" json:"output"`
	Color     *string `yaml:"color" toml:"color" json:"color"`
	Addr      *string `yaml:"addr" toml:"addr" json:"addr"`
	Open      *bool   `yaml:"open" toml:"open" json:"open"`
	LogFormat *string `yaml:"log_format" toml:"log_format" json:"log_format"`
}

type Config struct {
	Palette PaletteConfig `yaml:"palette" toml:"palette" json:"palette"`
	UI      UIConfig      `yaml:"ui" toml:"ui" json:"ui"`
}

// Settings is the fully merged configuration.
type Settings struct {
	Colors    []string
	Preset    string
	Threshold float64
	Suppress  bool
	Output    string
	Color     string
	Addr      string
	Open      bool
	LogFormat string
}

func DefaultSettings() Settings {
	return Settings{
		Colors:    nil,
		Preset:    palette.DefaultPreset,
		Threshold: 4.4,
		Suppress:  false,
		Output:    "auto",
		Color:     "auto",
		Addr:      ":8080",
		Open:      false,
		LogFormat: "text",
	}
}

// PaletteOptions extracts the matrix options from merged settings.
func (s Settings) PaletteOptions() palette.Options {
	return palette.Options{Threshold: s.Threshold, Suppress: s.Suppress}
}

func cloneStrings(in []string) []string {
	if len(in) == 0 {
		return nil
	}
	out := make([]string, len(in))
	copy(out, in)
	return out
}
