package config

import (
	"fmt"
	"strings"

	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/palette/opts"
	"github.com/phyten/contrastx/internal/termcolor"
)

func CanonicalizeLogFormat(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	switch v {
	case "", "text":
		return "text", nil
	case "json":
		return v, nil
	default:
		return "", fmt.Errorf("invalid log_format: %s", raw)
	}
}

func CanonicalizePreset(raw string) (string, error) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if v == "" {
		return palette.DefaultPreset, nil
	}
	if _, ok := palette.PresetColours(v); !ok {
		return "", fmt.Errorf("invalid preset: %s (known: %s)", raw, strings.Join(palette.PresetNames(), ", "))
	}
	return v, nil
}

// Normalize canonicalises merged settings and rejects out-of-range values.
func Normalize(s Settings) (Settings, error) {
	var err error
	if s.Preset, err = CanonicalizePreset(s.Preset); err != nil {
		return s, err
	}
	o := s.PaletteOptions()
	if err := opts.NormalizeAndValidate(&o); err != nil {
		return s, err
	}
	s.Threshold = o.Threshold
	if s.Output, err = opts.NormalizeOutput(s.Output); err != nil {
		return s, err
	}
	mode, err := termcolor.ParseMode(s.Color)
	if err != nil {
		return s, err
	}
	s.Color = mode.String()
	if s.LogFormat, err = CanonicalizeLogFormat(s.LogFormat); err != nil {
		return s, err
	}
	if strings.TrimSpace(s.Addr) == "" {
		s.Addr = ":8080"
	}
	if len(s.Colors) > palette.MaxColours {
		return s, fmt.Errorf("colors: %w (got %d)", palette.ErrTooManyColours, len(s.Colors))
	}
	return s, nil
}
