package config

import "strings"

// Merge applies layers over base in order; later layers win.
func Merge(base Settings, layers ...Config) Settings {
	out := base
	for _, layer := range layers {
		out.Colors = ResolveStrings(out.Colors, layer.Palette.Colors)
		out.Preset = ResolveAndTrim(out.Preset, layer.Palette.Preset)
		out.Threshold = ResolveFloat(out.Threshold, layer.Palette.Threshold)
		out.Suppress = ResolveBool(out.Suppress, layer.Palette.Suppress)

		out.Output = ResolveAndTrim(out.Output, layer.UI.Output)
		out.Color = ResolveAndTrim(out.Color, layer.UI.Color)
		out.Addr = ResolveAndTrim(out.Addr, layer.UI.Addr)
		out.Open = ResolveBool(out.Open, layer.UI.Open)
		out.LogFormat = ResolveAndTrim(out.LogFormat, layer.UI.LogFormat)
	}
	if strings.TrimSpace(out.Output) == "" {
		out.Output = "auto"
	}
	if strings.TrimSpace(out.Color) == "" {
		out.Color = "auto"
	}
	return out
}
