package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/phyten/contrastx/internal/palette/opts"
)

var paletteKeyMap = map[string]string{
	"colors":    "colors",
	"colours":   "colors",
	"preset":    "preset",
	"threshold": "threshold",
	"ratio":     "threshold",
	"suppress":  "suppress",
}

var uiKeyMap = map[string]string{
	"output":     "output",
	"format":     "output",
	"color":      "color",
	"colour":     "color",
	"addr":       "addr",
	"listen":     "addr",
	"open":       "open",
	"log_format": "log_format",
}

// Load reads a YAML, TOML or JSON file chosen by extension. An empty path
// yields an empty config.
func Load(path string) (Config, error) {
	var cfg Config
	path = strings.TrimSpace(path)
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	raw, err := decode(filepath.Ext(path), data)
	if err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if raw == nil {
		return cfg, nil
	}
	decoded, err := decodeConfigMap(raw)
	if err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return decoded, nil
}

func decode(ext string, data []byte) (map[string]any, error) {
	var raw map[string]any
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".toml":
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	case ".json":
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return raw, nil
}

func decodeConfigMap(raw map[string]any) (Config, error) {
	var cfg Config
	paletteSection := make(map[string]any)
	uiSection := make(map[string]any)

	if block, ok := raw["palette"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("palette: %w", err)
		}
		if err := fillSection(paletteSection, sub, paletteKeyMap, "palette"); err != nil {
			return cfg, err
		}
	}
	if block, ok := raw["ui"]; ok {
		sub, err := toStringKeyMap(block)
		if err != nil {
			return cfg, fmt.Errorf("ui: %w", err)
		}
		if err := fillSection(uiSection, sub, uiKeyMap, "ui"); err != nil {
			return cfg, err
		}
	}

	for key, value := range raw {
		norm := normalizeKey(key)
		switch norm {
		case "palette", "ui":
			continue
		default:
			if canonical, ok := paletteKeyMap[norm]; ok {
				paletteSection[canonical] = value
				continue
			}
			if canonical, ok := uiKeyMap[norm]; ok {
				uiSection[canonical] = value
				continue
			}
			return cfg, fmt.Errorf("unknown config key: %s", key)
		}
	}

	if err := assignPalette(paletteSection, &cfg.Palette); err != nil {
		return cfg, fmt.Errorf("palette: %w", err)
	}
	if err := assignUI(uiSection, &cfg.UI); err != nil {
		return cfg, fmt.Errorf("ui: %w", err)
	}
	return cfg, nil
}

func fillSection(dst, src map[string]any, allowed map[string]string, section string) error {
	for key, value := range src {
		canonical, ok := allowed[normalizeKey(key)]
		if !ok {
			return fmt.Errorf("unknown %s key: %s", section, key)
		}
		dst[canonical] = value
	}
	return nil
}

func assignPalette(section map[string]any, dst *PaletteConfig) error {
	for key, value := range section {
		switch key {
		case "colors":
			list, err := expectStringList(value, key)
			if err != nil {
				return err
			}
			dst.Colors = &list
		case "preset":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			dst.Preset = &str
		case "threshold":
			f, err := expectThreshold(value, key)
			if err != nil {
				return err
			}
			dst.Threshold = &f
		case "suppress":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Suppress = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func assignUI(section map[string]any, dst *UIConfig) error {
	for key, value := range section {
		switch key {
		case "output", "color", "addr", "log_format":
			str, err := expectString(value, key)
			if err != nil {
				return err
			}
			trimmed := strings.TrimSpace(str)
			switch key {
			case "output":
				dst.Output = &trimmed
			case "color":
				dst.Color = &trimmed
			case "addr":
				dst.Addr = &trimmed
			default:
				dst.LogFormat = &trimmed
			}
		case "open":
			b, err := expectBool(value, key)
			if err != nil {
				return err
			}
			dst.Open = &b
		default:
			return fmt.Errorf("unknown key: %s", key)
		}
	}
	return nil
}

func expectString(value any, field string) (string, error) {
	if value == nil {
		return "", fmt.Errorf("%s cannot be null", field)
	}
	if s, ok := value.(string); ok {
		return s, nil
	}
	return "", fmt.Errorf("expected string for %s, got %T", field, value)
}

func expectBool(value any, field string) (bool, error) {
	switch v := value.(type) {
	case bool:
		return v, nil
	case string:
		return opts.ParseBool(v, field)
	default:
		return false, fmt.Errorf("expected bool for %s, got %T", field, value)
	}
}

func expectThreshold(value any, field string) (float64, error) {
	switch v := value.(type) {
	case float64:
		return opts.ParseThreshold(strconv.FormatFloat(v, 'f', -1, 64), field)
	case int:
		return opts.ParseThreshold(strconv.Itoa(v), field)
	case int64:
		return opts.ParseThreshold(strconv.FormatInt(v, 10), field)
	case json.Number:
		return opts.ParseThreshold(v.String(), field)
	case string:
		return opts.ParseThreshold(v, field)
	default:
		return 0, fmt.Errorf("expected number for %s, got %T", field, value)
	}
}

func expectStringList(value any, field string) ([]string, error) {
	switch v := value.(type) {
	case string:
		return opts.SplitMulti([]string{v}), nil
	case []any:
		out := make([]string, 0, len(v))
		for _, item := range v {
			str, err := expectString(item, field)
			if err != nil {
				return nil, err
			}
			out = append(out, str)
		}
		return normalizeList(out), nil
	case []string:
		return normalizeList(v), nil
	default:
		return nil, fmt.Errorf("expected string or list for %s, got %T", field, value)
	}
}

func normalizeList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

func toStringKeyMap(v any) (map[string]any, error) {
	switch typed := v.(type) {
	case map[string]any:
		return typed, nil
	case map[any]any:
		out := make(map[string]any, len(typed))
		for k, value := range typed {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("non-string key: %v", k)
			}
			out[key] = value
		}
		return out, nil
	default:
		return nil, fmt.Errorf("expected map, got %T", v)
	}
}

func normalizeKey(key string) string {
	norm := strings.ToLower(strings.TrimSpace(key))
	norm = strings.ReplaceAll(norm, "-", "_")
	return norm
}
