package main

import (
	"errors"
	"flag"
	"fmt"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/output"
	"github.com/phyten/contrastx/internal/palette/opts"
)

var referenceRGB = colorutil.RGB{R: 105, G: 32, B: 177}

func (c *cli) convertCmd(args []string) error {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	fs.Usage = func() {}
	var format string
	fs.StringVar(&format, "output", "text", "")
	fs.StringVar(&format, "o", "text", "")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			c.usage()
			return errHelpShown
		}
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rgb, err := parseConvertArgs(fs.Args())
	if err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}
	conv := colorutil.Check(rgb)
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "text":
		return output.WriteConversion(c.stdout, conv)
	case "json":
		return output.WriteJSON(c.stdout, conv)
	}
	return fmt.Errorf("%w: invalid --output for convert: %s (text|json)", errUsage, format)
}

// parseConvertArgs accepts nothing (the reference colour), one colour, or
// three 0-255 channel values.
func parseConvertArgs(args []string) (colorutil.RGB, error) {
	switch len(args) {
	case 0:
		return referenceRGB, nil
	case 1:
		return colorutil.ParseColor(args[0])
	case 3:
		var ch [3]int
		for i, name := range []string{"red", "green", "blue"} {
			n, err := opts.ParseIntInRange(args[i], name, 0, 255)
			if err != nil {
				return colorutil.RGB{}, err
			}
			ch[i] = n
		}
		return colorutil.NewRGB(ch[0], ch[1], ch[2])
	}
	return colorutil.RGB{}, fmt.Errorf("convert takes R G B or a single colour, got %d arguments", len(args))
}
