package config

import (
	"errors"
	"strings"

	"github.com/phyten/contrastx/internal/palette/opts"
)

const EnvConfigPath = "CONTRASTX_CONFIG"

// FromEnv builds a config layer from CONTRASTX_* variables. Every malformed
// value is reported; well-formed ones are still applied.
func FromEnv(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = func(string) string { return "" }
	}
	var cfg Config
	var errs []error

	setString := func(target **string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		value := raw
		*target = &value
	}
	setList := func(target **[]string, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		list := opts.SplitMulti([]string{raw})
		if len(list) == 0 {
			empty := make([]string, 0)
			*target = &empty
			return
		}
		*target = &list
	}
	setBool := func(target **bool, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseBool(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}
	setThreshold := func(target **float64, key string) {
		raw := strings.TrimSpace(getenv(key))
		if raw == "" {
			return
		}
		v, err := opts.ParseThreshold(raw, key)
		if err != nil {
			errs = append(errs, err)
			return
		}
		*target = &v
	}

	setList(&cfg.Palette.Colors, "CONTRASTX_COLORS")
	setString(&cfg.Palette.Preset, "CONTRASTX_PRESET")
	if cfg.Palette.Preset != nil && cfg.Palette.Colors == nil {
		cfg.Palette.Colors = &[]string{}
	}
	setThreshold(&cfg.Palette.Threshold, "CONTRASTX_THRESHOLD")
	setBool(&cfg.Palette.Suppress, "CONTRASTX_SUPPRESS")

	setString(&cfg.UI.Output, "CONTRASTX_OUTPUT")
	setString(&cfg.UI.Color, "CONTRASTX_COLOR")
	setString(&cfg.UI.Addr, "CONTRASTX_ADDR")
	setBool(&cfg.UI.Open, "CONTRASTX_OPEN")
	setString(&cfg.UI.LogFormat, "CONTRASTX_LOG_FORMAT")

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, nil
}
