package colorutil

import (
	"errors"
	"testing"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  RGB
	}{
		{name: "with hash", input: "#2020b0", want: RGB{32, 32, 176}},
		{name: "without hash", input: "b02068", want: RGB{176, 32, 104}},
		{name: "upper case", input: "#FFFFFF", want: RGB{255, 255, 255}},
		{name: "mixed case", input: "#FfAa00", want: RGB{255, 170, 0}},
		{name: "surrounding space", input: "  #004fb0 ", want: RGB{0, 79, 176}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.input)
			if err != nil {
				t.Fatalf("ParseHex(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseHexRejects(t *testing.T) {
	inputs := []string{
		"",
		"#",
		"#fff",
		"#ff00000",
		"#gggggg",
		"#ff 00 0",
		"##ff0000",
		"0x00ff00",
		"navy",
		"<script>alert(1)</script>",
	}
	for _, in := range inputs {
		_, err := ParseHex(in)
		if err == nil {
			t.Fatalf("ParseHex(%q) expected error", in)
		}
		if !errors.Is(err, ErrInvalidHex) {
			t.Fatalf("ParseHex(%q) error %v should wrap ErrInvalidHex", in, err)
		}
		var pe *ParseError
		if !errors.As(err, &pe) {
			t.Fatalf("ParseHex(%q) error %T should be *ParseError", in, err)
		}
		if pe.Input != in {
			t.Fatalf("ParseError.Input=%q want %q", pe.Input, in)
		}
	}
}

func TestFormatHexRoundTrip(t *testing.T) {
	values := make([]int, 0, 53)
	for v := 0; v < 256; v += 5 {
		values = append(values, v)
	}
	values = append(values, 255)
	for _, r := range values {
		for _, g := range values {
			for _, b := range values {
				c := RGB{uint8(r), uint8(g), uint8(b)}
				got, err := ParseHex(FormatHex(c))
				if err != nil {
					t.Fatalf("ParseHex(FormatHex(%v)) error: %v", c, err)
				}
				if got != c {
					t.Fatalf("round trip %v -> %q -> %v", c, FormatHex(c), got)
				}
			}
		}
	}
}

func TestParseColorNames(t *testing.T) {
	cases := []struct {
		input string
		want  RGB
	}{
		{"navy", RGB{0, 0, 128}},
		{"RebeccaPurple", RGB{102, 51, 153}},
		{" white ", White},
		{"#b07200", RGB{176, 114, 0}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.input)
		if err != nil {
			t.Fatalf("ParseColor(%q) unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Fatalf("ParseColor(%q)=%v want %v", tc.input, got, tc.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	cases := []struct {
		input string
		want  error
	}{
		{"notacolour", ErrUnknownColorName},
		{"abc", ErrInvalidHex},
		{"#abc", ErrInvalidHex},
		{"", ErrInvalidHex},
	}
	for _, tc := range cases {
		_, err := ParseColor(tc.input)
		if !errors.Is(err, tc.want) {
			t.Fatalf("ParseColor(%q) error=%v want %v", tc.input, err, tc.want)
		}
	}
}

func TestLookupName(t *testing.T) {
	if name, ok := LookupName(RGB{0, 0, 128}); !ok || name != "navy" {
		t.Fatalf("LookupName(navy)=%q,%v", name, ok)
	}
	if _, ok := LookupName(RGB{32, 32, 176}); ok {
		t.Fatal("LookupName should miss for an unnamed colour")
	}
}

func TestNewRGB(t *testing.T) {
	got, err := NewRGB(105, 32, 177)
	if err != nil {
		t.Fatalf("NewRGB unexpected error: %v", err)
	}
	if got != (RGB{105, 32, 177}) {
		t.Fatalf("NewRGB=%v", got)
	}
	for _, bad := range [][3]int{{-1, 0, 0}, {0, 256, 0}, {0, 0, 1000}} {
		if _, err := NewRGB(bad[0], bad[1], bad[2]); !errors.Is(err, ErrChannelRange) {
			t.Fatalf("NewRGB(%v) error=%v want ErrChannelRange", bad, err)
		}
	}
}
