package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/phyten/contrastx/internal/config"
	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/termcolor"
)

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// errUsage marks failures caused by bad flags or arguments.
var errUsage = errors.New("usage error")

type cli struct {
	stdout  io.Writer
	stderr  io.Writer
	tty     *os.File
	environ []string
	getenv  func(string) string
	getwd   func() (string, error)
	logger  *log.Logger
}

func newCLI() *cli {
	return &cli{
		stdout:  os.Stdout,
		stderr:  os.Stderr,
		tty:     os.Stdout,
		environ: os.Environ(),
		getenv:  os.Getenv,
		getwd:   os.Getwd,
		logger:  log.New(os.Stderr, "contrastx: ", 0),
	}
}

func main() {
	log.SetFlags(0)
	os.Exit(newCLI().run(os.Args[1:]))
}

func (c *cli) run(args []string) int {
	cmd := "grid"
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		cmd, args = args[0], args[1:]
	}
	var err error
	switch cmd {
	case "grid":
		err = c.viewCmd("grid", args)
	case "table":
		err = c.viewCmd("table", args)
	case "convert":
		err = c.convertCmd(args)
	case "serve":
		err = c.serveCmd(args)
	case "presets":
		err = c.presetsCmd(args)
	case "help":
		c.usage()
		return exitOK
	default:
		// A bare colour list runs the grid: `contrastx '#6920b1' navy`.
		err = c.viewCmd("grid", append([]string{cmd}, args...))
	}
	return c.exitCode(err)
}

func (c *cli) exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	if errors.Is(err, errHelpShown) {
		return exitOK
	}
	for _, line := range errorLines(err) {
		c.logger.Print(line)
	}
	if errors.Is(err, errUsage) || isInputError(err) {
		return exitUsage
	}
	return exitError
}

// errorLines flattens joined errors so every bad colour gets its own line.
func errorLines(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var lines []string
		for _, e := range joined.Unwrap() {
			lines = append(lines, errorLines(e)...)
		}
		return lines
	}
	return []string{strings.TrimPrefix(err.Error(), errUsage.Error()+": ")}
}

func isInputError(err error) bool {
	var entryErr *palette.EntryError
	return errors.As(err, &entryErr) || errors.Is(err, palette.ErrTooManyColours)
}

func (c *cli) usage() {
	fmt.Fprint(c.stdout, `contrastx - colour contrast and conversion checker

Usage:
  contrastx [grid]  [flags] [COLOUR...]   contrast matrix (background x foreground)
  contrastx table   [flags] [COLOUR...]   per-colour readout (RGB, luminance, HSV, HSL)
  contrastx convert [R G B | COLOUR]      RGB -> HSV/HSL -> RGB check (default 105 32 177)
  contrastx serve   [flags]               browser UI on --addr
  contrastx presets                       list built-in palettes

Flags:
  -c, --colors LIST     up to 5 colours (#rrggbb or CSS names), comma separated or repeated
  -p, --preset NAME     built-in palette used when no colours are given (blue, purple)
  -t, --threshold F     minimum contrast ratio (default 4.4)
  -s, --suppress        hide pairs below the threshold
  -o, --output FMT      auto|grid|table|tsv|csv|markdown|json|ndjson
      --color MODE      auto|always|never
      --config PATH     config file (default: .contrastx.* upward, then XDG, then HOME)
      --addr ADDR       serve: listen address (default :8080)
      --open            serve: open the page in a browser
      --log-format FMT  serve: text|json
`)
}

// terminal works out colour support for stdout from the merged settings.
func (c *cli) terminal(mode string) (bool, termcolor.Profile) {
	env := termcolor.EnvMap(c.environ)
	m, err := termcolor.ParseMode(mode)
	if err != nil {
		m = termcolor.ModeAuto
	}
	return termcolor.Resolve(m, c.tty, env), termcolor.DetectProfile(env)
}

func (c *cli) loadSettings(configPath string, flagLayer config.Config) (config.Settings, error) {
	explicit := configPath
	if explicit == "" {
		explicit = c.getenv(config.EnvConfigPath)
	}
	cwd, err := c.getwd()
	if err != nil {
		return config.Settings{}, err
	}
	path, _, err := config.Find(cwd, explicit, c.getenv("XDG_CONFIG_HOME"), c.getenv("HOME"))
	if err != nil {
		return config.Settings{}, fmt.Errorf("config: %w", err)
	}
	fileLayer, err := config.Load(path)
	if err != nil {
		return config.Settings{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	envLayer, err := config.FromEnv(c.getenv)
	if err != nil {
		return config.Settings{}, fmt.Errorf("%w: %v", errUsage, err)
	}
	s := config.Merge(config.DefaultSettings(), fileLayer, envLayer, flagLayer)
	s, err = config.Normalize(s)
	if err != nil {
		return s, fmt.Errorf("%w: %v", errUsage, err)
	}
	return s, nil
}
