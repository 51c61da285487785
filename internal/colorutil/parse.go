package colorutil

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

var hexPattern = regexp.MustCompile(`^#?([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})([0-9A-Fa-f]{2})$`)

var (
	ErrInvalidHex       = errors.New("invalid hex colour, expected [#]RRGGBB")
	ErrUnknownColorName = errors.New("unknown colour name")
	ErrChannelRange     = errors.New("channel out of range 0-255")
)

// ParseError reports an input that could not be turned into an RGB triple.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// NewRGB builds an RGB from integer channels, rejecting anything outside 0-255.
func NewRGB(r, g, b int) (RGB, error) {
	for _, c := range [...]struct {
		name string
		v    int
	}{{"red", r}, {"green", g}, {"blue", b}} {
		if c.v < 0 || c.v > 255 {
			return RGB{}, fmt.Errorf("%s=%d: %w", c.name, c.v, ErrChannelRange)
		}
	}
	return RGB{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

func (c RGB) Hex() string {
	return FormatHex(c)
}

func (c RGB) String() string {
	return FormatHex(c)
}

func FormatHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex reads an optional '#' followed by exactly six hex digits.
func ParseHex(s string) (RGB, error) {
	m := hexPattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return RGB{}, &ParseError{Input: s, Err: ErrInvalidHex}
	}
	var ch [3]uint8
	for i := 0; i < 3; i++ {
		n, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return RGB{}, &ParseError{Input: s, Err: fmt.Errorf("%w: %v", ErrInvalidHex, err)}
		}
		ch[i] = uint8(n)
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// ParseColor accepts hex notation or an SVG 1.1 colour keyword such as
// "rebeccapurple". Keyword lookup is case-insensitive.
func ParseColor(s string) (RGB, error) {
	trimmed := strings.TrimSpace(s)
	if hexPattern.MatchString(trimmed) {
		return ParseHex(trimmed)
	}
	name := strings.ToLower(trimmed)
	if name != "" && !strings.HasPrefix(name, "#") {
		if c, ok := colornames.Map[name]; ok {
			return RGB{R: c.R, G: c.G, B: c.B}, nil
		}
		if isHexLike(name) {
			return RGB{}, &ParseError{Input: s, Err: ErrInvalidHex}
		}
		return RGB{}, &ParseError{Input: s, Err: ErrUnknownColorName}
	}
	return RGB{}, &ParseError{Input: s, Err: ErrInvalidHex}
}

// LookupName returns the colour keyword whose value is exactly c, if any.
func LookupName(c RGB) (string, bool) {
	for _, name := range colornames.Names {
		v := colornames.Map[name]
		if v.R == c.R && v.G == c.G && v.B == c.B {
			return name, true
		}
	}
	return "", false
}

func isHexLike(s string) bool {
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
		case r >= 'a' && r <= 'f':
		default:
			return false
		}
	}
	return true
}
