package termcolor

import (
	"fmt"
	"strings"
)

type Style struct {
	Bold      bool
	Underline bool
	Dim       bool
	FGBasic   *int
	FG256     *int
	FGTrue    *[3]uint8
	BGBasic   *int
	BG256     *int
	BGTrue    *[3]uint8
}

func (s Style) empty() bool {
	return !s.Bold && !s.Underline && !s.Dim &&
		s.FGBasic == nil && s.FG256 == nil && s.FGTrue == nil &&
		s.BGBasic == nil && s.BG256 == nil && s.BGTrue == nil
}

func Apply(s Style, text string, enabled bool) string {
	if !enabled || text == "" || s.empty() {
		return text
	}
	return "\x1b[" + strings.Join(sgrCodes(s), ";") + "m" + text + "\x1b[0m"
}

func HeaderStyle() Style {
	return Style{Bold: true, Underline: true}
}

func sgrCodes(s Style) []string {
	codes := make([]string, 0, 6)
	if s.Bold {
		codes = append(codes, "1")
	}
	if s.Dim {
		codes = append(codes, "2")
	}
	if s.Underline {
		codes = append(codes, "4")
	}
	codes = appendColor(codes, "3", "38", s.FGBasic, s.FG256, s.FGTrue)
	codes = appendColor(codes, "4", "48", s.BGBasic, s.BG256, s.BGTrue)
	return codes
}

// appendColor emits the richest of the three encodings that is set.
func appendColor(codes []string, basicPrefix, extPrefix string, basic, idx *int, rgb *[3]uint8) []string {
	switch {
	case rgb != nil:
		return append(codes, fmt.Sprintf("%s;2;%d;%d;%d", extPrefix, rgb[0], rgb[1], rgb[2]))
	case idx != nil:
		return append(codes, fmt.Sprintf("%s;5;%d", extPrefix, *idx))
	case basic != nil:
		return append(codes, fmt.Sprintf("%s%d", basicPrefix, *basic))
	}
	return codes
}
