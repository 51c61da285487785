package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/palette/opts"
)

var errHelpShown = errors.New("help shown")

// listFlag collects repeated or comma-separated values.
type listFlag []string

func (l *listFlag) String() string { return strings.Join(*l, ",") }

func (l *listFlag) Set(v string) error {
	*l = append(*l, opts.SplitMulti([]string{v})...)
	return nil
}

// commonFlags are shared by grid, table and serve. Only flags the user
// actually passed end up in the config layer.
type commonFlags struct {
	fs         *flag.FlagSet
	colors     listFlag
	preset     string
	threshold  string
	suppress   bool
	output     string
	color      string
	configPath string
	addr       string
	open       bool
	logFormat  string
}

func newCommonFlags(name string, stderr io.Writer, serve bool) *commonFlags {
	f := &commonFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	f.fs.SetOutput(stderr)
	f.fs.Var(&f.colors, "colors", "")
	f.fs.Var(&f.colors, "c", "")
	f.fs.StringVar(&f.preset, "preset", "", "")
	f.fs.StringVar(&f.preset, "p", "", "")
	f.fs.StringVar(&f.threshold, "threshold", "", "")
	f.fs.StringVar(&f.threshold, "t", "", "")
	f.fs.BoolVar(&f.suppress, "suppress", false, "")
	f.fs.BoolVar(&f.suppress, "s", false, "")
	f.fs.StringVar(&f.color, "color", "", "")
	f.fs.StringVar(&f.configPath, "config", "", "")
	if serve {
		f.fs.StringVar(&f.addr, "addr", "", "")
		f.fs.BoolVar(&f.open, "open", false, "")
		f.fs.StringVar(&f.logFormat, "log-format", "", "")
	} else {
		f.fs.StringVar(&f.output, "output", "", "")
		f.fs.StringVar(&f.output, "o", "", "")
	}
	f.fs.Usage = func() {}
	return f
}

// parse returns positional arguments; flags may appear before or after
// them. -h/--help yields errHelpShown.
func (f *commonFlags) parse(args []string) ([]string, error) {
	var positional []string
	for {
		if err := f.fs.Parse(args); err != nil {
			if errors.Is(err, flag.ErrHelp) {
				return nil, errHelpShown
			}
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		rest := f.fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

// layer converts explicitly set flags into the highest-precedence config.
func (f *commonFlags) layer(positional []string) (config.Config, error) {
	set := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { set[fl.Name] = true })

	var cfg config.Config
	colors := append(listFlag(nil), f.colors...)
	colors = append(colors, positional...)
	if len(colors) > 0 {
		list := []string(colors)
		cfg.Palette.Colors = &list
	}
	if set["preset"] || set["p"] {
		cfg.Palette.Preset = &f.preset
		if cfg.Palette.Colors == nil {
			// An explicit preset overrides colours from lower layers.
			cfg.Palette.Colors = &[]string{}
		}
	}
	if set["threshold"] || set["t"] {
		v, err := opts.ParseThreshold(f.threshold, "--threshold")
		if err != nil {
			return cfg, fmt.Errorf("%w: %v", errUsage, err)
		}
		cfg.Palette.Threshold = &v
	}
	if set["suppress"] || set["s"] {
		cfg.Palette.Suppress = &f.suppress
	}
	if set["output"] || set["o"] {
		cfg.UI.Output = &f.output
	}
	if set["color"] {
		cfg.UI.Color = &f.color
	}
	if set["addr"] {
		cfg.UI.Addr = &f.addr
	}
	if set["open"] {
		cfg.UI.Open = &f.open
	}
	if set["log-format"] {
		cfg.UI.LogFormat = &f.logFormat
	}
	return cfg, nil
}
