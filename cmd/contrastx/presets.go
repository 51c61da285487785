package main

import (
	"strings"

	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/textutil"
)

func (c *cli) presetsCmd(args []string) error {
	f := newCommonFlags("presets", c.stderr, false)
	if _, err := f.parse(args); err != nil {
		if err == errHelpShown {
			c.usage()
		}
		return err
	}
	names := palette.PresetNames()
	width := 0
	for _, name := range names {
		width = max(width, textutil.VisibleWidth(name))
	}
	var b strings.Builder
	for _, name := range names {
		colours, _ := palette.PresetColours(name)
		marker := " "
		if name == palette.DefaultPreset {
			marker = "*"
		}
		b.WriteString(marker + " " + textutil.PadRight(name, width) + "  " + strings.Join(colours, " ") + "\n")
	}
	_, err := c.stdout.Write([]byte(b.String()))
	return err
}
