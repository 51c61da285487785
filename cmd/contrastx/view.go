package main

import (
	"github.com/phyten/contrastx/internal/output"
	"github.com/phyten/contrastx/internal/palette"
)

// viewCmd runs grid or table.
func (c *cli) viewCmd(name string, args []string) error {
	f := newCommonFlags(name, c.stderr, false)
	positional, err := f.parse(args)
	if err != nil {
		if err == errHelpShown {
			c.usage()
		}
		return err
	}
	layer, err := f.layer(positional)
	if err != nil {
		return err
	}
	s, err := c.loadSettings(f.configPath, layer)
	if err != nil {
		return err
	}

	p, err := palette.Resolve(s.Colors, s.Preset)
	if err != nil {
		return err
	}
	rep := palette.Analyze(p, s.PaletteOptions())

	view := output.ViewGrid
	if name == "table" {
		view = output.ViewTable
	}
	color, profile := c.terminal(s.Color)
	return output.WriteReport(c.stdout, rep, view, s.Output, output.Terminal{Color: color, Profile: profile})
}
