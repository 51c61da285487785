package colorutil

import "math"

// HSV holds hue in degrees [0,360) and saturation/value as percentages.
type HSV struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	V float64 `json:"v"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness as percentages.
type HSL struct {
	H float64 `json:"h"`
	S float64 `json:"s"`
	L float64 `json:"l"`
}

// Rounded returns the nearest integer triple, for display.
func (c HSV) Rounded() [3]int {
	return [3]int{roundInt(c.H), roundInt(c.S), roundInt(c.V)}
}

func (c HSL) Rounded() [3]int {
	return [3]int{roundInt(c.H), roundInt(c.S), roundInt(c.L)}
}

// Normalize wraps the hue into [0,360) and clamps the percentages.
func (c HSV) Normalize() HSV {
	return HSV{H: wrapHue(c.H), S: clampPercent(c.S), V: clampPercent(c.V)}
}

func (c HSL) Normalize() HSL {
	return HSL{H: wrapHue(c.H), S: clampPercent(c.S), L: clampPercent(c.L)}
}

func RGBToHSV(rgb RGB) HSV {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	d := maxC - minC

	out := HSV{V: maxC * 100}
	if maxC != 0 {
		out.S = d / maxC * 100
	}
	if maxC == minC {
		return out
	}

	// Channels are checked red, green, blue; the first equal to max wins.
	var h float64
	switch maxC {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	case b:
		h = (r-g)/d + 4
	}
	out.H = h * 60
	return out
}

func HSVToHSL(in HSV) HSL {
	in = in.Normalize()
	s := in.S / 100
	v := in.V / 100

	l := (2 - s) * v / 2
	switch {
	case l == 0, l == 1:
		s = 0
	case l < 0.5:
		s = s * v / (l * 2)
	default:
		s = s * v / (2 - l*2)
	}
	return HSL{H: in.H, S: s * 100, L: l * 100}
}

var fallbackGrey = RGB{230, 230, 230}

// HSLToRGB returns the neutral fallback grey for a non-finite hue.
func HSLToRGB(in HSL) RGB {
	if math.IsNaN(in.H) || math.IsInf(in.H, 0) {
		return fallbackGrey
	}
	in = in.Normalize()
	s := in.S / 100
	l := in.L / 100

	c := (1 - math.Abs(2*l-1)) * s
	hp := in.H / 60
	x := c * (1 - math.Abs(math.Mod(hp, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case hp >= 0 && hp < 1:
		r, g, b = c, x, 0
	case hp >= 1 && hp < 2:
		r, g, b = x, c, 0
	case hp >= 2 && hp < 3:
		r, g, b = 0, c, x
	case hp >= 3 && hp < 4:
		r, g, b = 0, x, c
	case hp >= 4 && hp < 5:
		r, g, b = x, 0, c
	case hp >= 5 && hp < 6:
		r, g, b = c, 0, x
	default:
		return fallbackGrey
	}
	return RGB{R: toChannel(r + m), G: toChannel(g + m), B: toChannel(b + m)}
}

func toChannel(v float64) uint8 {
	n := math.Round(v * 255)
	if math.IsNaN(n) || n < 0 {
		return 0
	}
	if n > 255 {
		return 255
	}
	return uint8(n)
}

func wrapHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}

func roundInt(v float64) int {
	return int(math.Round(v))
}

// Conversion records an RGB -> HSV -> HSL -> RGB pass. Intermediate values
// keep full precision, so Out equals In for every valid input.
type Conversion struct {
	In  RGB `json:"rgb_in"`
	HSV HSV `json:"hsv"`
	HSL HSL `json:"hsl"`
	Out RGB `json:"rgb_out"`
}

func Check(in RGB) Conversion {
	hsv := RGBToHSV(in)
	hsl := HSVToHSL(hsv)
	return Conversion{In: in, HSV: hsv, HSL: hsl, Out: HSLToRGB(hsl)}
}
