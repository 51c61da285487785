package termcolor

import "github.com/phyten/contrastx/internal/colorutil"

// basicPalette approximates the xterm defaults for SGR colours 30-37.
var basicPalette = [8]colorutil.RGB{
	{R: 0, G: 0, B: 0},
	{R: 205, G: 0, B: 0},
	{R: 0, G: 205, B: 0},
	{R: 205, G: 205, B: 0},
	{R: 0, G: 0, B: 238},
	{R: 205, G: 0, B: 205},
	{R: 0, G: 205, B: 205},
	{R: 229, G: 229, B: 229},
}

var cubeLevels = [6]int{0, 95, 135, 175, 215, 255}

// Swatch paints text in fg over bg using the best encoding profile allows.
func Swatch(fg, bg colorutil.RGB, profile Profile) Style {
	var s Style
	switch profile {
	case ProfileTrueColor:
		f := [3]uint8{fg.R, fg.G, fg.B}
		b := [3]uint8{bg.R, bg.G, bg.B}
		s.FGTrue, s.BGTrue = &f, &b
	case ProfileANSI256:
		f, b := RGBToANSI256(fg), RGBToANSI256(bg)
		s.FG256, s.BG256 = &f, &b
	default:
		f, b := NearestBasic(fg), NearestBasic(bg)
		s.FGBasic, s.BGBasic = &f, &b
	}
	return s
}

// NearestBasic returns the SGR index 0-7 closest to c.
func NearestBasic(c colorutil.RGB) int {
	best, bestDist := 0, -1
	for i, p := range basicPalette {
		if d := distance(c, p); bestDist < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

// RGBToANSI256 picks the closer of the nearest 6x6x6 cube entry and the
// nearest grey ramp entry.
func RGBToANSI256(c colorutil.RGB) int {
	ri, gi, bi := nearestLevel(c.R), nearestLevel(c.G), nearestLevel(c.B)
	cube := colorutil.RGB{R: uint8(cubeLevels[ri]), G: uint8(cubeLevels[gi]), B: uint8(cubeLevels[bi])}
	cubeIdx := 16 + 36*ri + 6*gi + bi

	avg := (int(c.R) + int(c.G) + int(c.B)) / 3
	greyStep := (avg - 8 + 5) / 10
	if greyStep < 0 {
		greyStep = 0
	}
	if greyStep > 23 {
		greyStep = 23
	}
	gv := uint8(8 + greyStep*10)
	grey := colorutil.RGB{R: gv, G: gv, B: gv}

	if distance(c, grey) < distance(c, cube) {
		return 232 + greyStep
	}
	return cubeIdx
}

func nearestLevel(v uint8) int {
	best, bestDist := 0, 256
	for i, l := range cubeLevels {
		d := int(v) - l
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = i, d
		}
	}
	return best
}

func distance(a, b colorutil.RGB) int {
	dr := int(a.R) - int(b.R)
	dg := int(a.G) - int(b.G)
	db := int(a.B) - int(b.B)
	return dr*dr + dg*dg + db*db
}
