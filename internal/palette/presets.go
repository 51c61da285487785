package palette

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

const DefaultPreset = "blue"

var ErrUnknownPreset = errors.New("unknown preset")

var presets = map[string][]string{
	"blue":   {"#004fb0", "#002d63", "#197ffc", "#634000", "#b07200"},
	"purple": {"#2020b0", "#6820b0", "#b020b0", "#b02068", "#b02020"},
}

// PresetColours returns a copy of the named preset's inputs.
func PresetColours(name string) ([]string, bool) {
	values, ok := presets[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, false
	}
	out := make([]string, len(values))
	copy(out, values)
	return out, true
}

// Preset parses the named preset into a palette.
func Preset(name string) (Palette, error) {
	values, ok := PresetColours(name)
	if !ok {
		return Palette{}, fmt.Errorf("%w %q (known: %s)", ErrUnknownPreset, name, strings.Join(PresetNames(), ", "))
	}
	return New(values)
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Resolve prefers explicit colours and falls back to the named preset, or
// DefaultPreset when name is blank.
func Resolve(colours []string, name string) (Palette, error) {
	if countNonBlank(colours) > 0 {
		return New(colours)
	}
	if strings.TrimSpace(name) == "" {
		name = DefaultPreset
	}
	return Preset(name)
}
