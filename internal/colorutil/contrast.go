package colorutil

import "math"

const (
	// DefaultThreshold is the practical pass mark used by the grid. It sits
	// just under the nominal AA ratio of 4.5:1.
	DefaultThreshold = 4.4
	WCAGAALarge      = 3.0
	WCAGAA           = 4.5
	WCAGAAA          = 7.0
)

var (
	Black = RGB{0, 0, 0}
	White = RGB{255, 255, 255}
)

func srgbToLinear(c float64) float64 {
	if c <= 0.03928 {
		return c / 12.92
	}
	return math.Pow((c+0.055)/1.055, 2.4)
}

// Luminance returns the relative luminance of rgb in [0,1].
func Luminance(rgb RGB) float64 {
	r := srgbToLinear(float64(rgb.R) / 255.0)
	g := srgbToLinear(float64(rgb.G) / 255.0)
	b := srgbToLinear(float64(rgb.B) / 255.0)
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// RawContrastRatio is ContrastRatio without the two-decimal rounding.
func RawContrastRatio(a, b RGB) float64 {
	l1 := Luminance(a) + 0.05
	l2 := Luminance(b) + 0.05
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return l1 / l2
}

// ContrastRatio returns the WCAG contrast ratio between a and b rounded to
// two decimals. The result is symmetric and never below 1.
func ContrastRatio(a, b RGB) float64 {
	return math.Round(RawContrastRatio(a, b)*100) / 100
}

func Passes(ratio, threshold float64) bool {
	return ratio >= threshold
}

// Level classifies a ratio against the WCAG 2 text thresholds.
func Level(ratio float64) string {
	switch {
	case ratio >= WCAGAAA:
		return "AAA"
	case ratio >= WCAGAA:
		return "AA"
	case ratio >= WCAGAALarge:
		return "AA18"
	default:
		return "fail"
	}
}

func AutoTextColor(bg RGB) RGB {
	crBlack := RawContrastRatio(Black, bg)
	crWhite := RawContrastRatio(White, bg)
	if crBlack >= WCAGAA || crBlack >= crWhite {
		return Black
	}
	return White
}

func EnsureContrast(fg, bg RGB, minRatio float64) RGB {
	if minRatio <= 0 {
		minRatio = WCAGAA
	}
	if RawContrastRatio(fg, bg) >= minRatio {
		return fg
	}
	return AutoTextColor(bg)
}
