package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always", "force":
		return ModeAlways, nil
	case "never", "none", "off":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

type Profile int

const (
	ProfileBasic8 Profile = iota
	ProfileANSI256
	ProfileTrueColor
)

func (p Profile) String() string {
	switch p {
	case ProfileTrueColor:
		return "truecolor"
	case ProfileANSI256:
		return "ansi256"
	default:
		return "basic8"
	}
}

func EnvMap(values []string) map[string]string {
	env := make(map[string]string, len(values))
	for _, entry := range values {
		if entry == "" {
			continue
		}
		key, value, _ := strings.Cut(entry, "=")
		env[key] = value
	}
	return env
}

// DetectMode determines the effective color mode for auto-detection.
//
// Priority order (first match wins):
//  1. TERM=dumb suppresses colors entirely.
//  2. NO_COLOR disables colors.
//  3. CLICOLOR=0 disables colors.
//  4. CLICOLOR_FORCE / FORCE_COLOR with any non-zero value force-enable colors.
//  5. Otherwise colors are emitted only when stdout is a TTY.
func DetectMode(stdout *os.File, env map[string]string) ColorMode {
	if stdout == nil {
		return ModeNever
	}
	switch {
	case strings.EqualFold(envValue(env, "TERM"), "dumb"):
		return ModeNever
	case envValue(env, "NO_COLOR") != "":
		return ModeNever
	case envValue(env, "CLICOLOR") == "0":
		return ModeNever
	case forceColor(envValue(env, "CLICOLOR_FORCE")), forceColor(envValue(env, "FORCE_COLOR")):
		return ModeAlways
	case isTerminal(stdout):
		return ModeAlways
	}
	return ModeNever
}

// Resolve turns a requested mode into an on/off decision. ModeAuto consults
// DetectMode so the environment overrides apply.
func Resolve(mode ColorMode, stdout *os.File, env map[string]string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	default:
		return DetectMode(stdout, env) == ModeAlways
	}
}

// DetectProfile inspects COLORTERM/TERM to determine the best-fit color profile.
// truecolor/24-bit environments get TrueColor, *256color terminals get ANSI256,
// TERM=dumb and any other terminal names fall back to the basic 8-color profile.
func DetectProfile(env map[string]string) Profile {
	colorterm := strings.ToLower(envValue(env, "COLORTERM"))
	for _, marker := range []string{"truecolor", "24bit", "24-bit"} {
		if strings.Contains(colorterm, marker) {
			return ProfileTrueColor
		}
	}
	if strings.Contains(strings.ToLower(envValue(env, "TERM")), "256color") {
		return ProfileANSI256
	}
	return ProfileBasic8
}

func envValue(env map[string]string, key string) string {
	if env == nil {
		return ""
	}
	return strings.TrimSpace(env[key])
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	return v != "" && v != "0"
}
