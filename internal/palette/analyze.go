package palette

import (
	"github.com/phyten/contrastx/internal/colorutil"
)

const (
	ReasonSame           = "same"
	ReasonBelowThreshold = "below-threshold"
)

type Options struct {
	Threshold float64 `json:"threshold"`
	Suppress  bool    `json:"suppress"`
}

// Row is the readout for one user colour.
// Row describes one user colour. Index is its position in the palette and
// Slot its input position.
type Row struct {
	Index     int           `json:"index"`
	Slot      int           `json:"slot"`
	Input     string        `json:"input"`
	Hex       string        `json:"hex"`
	Name      string        `json:"name,omitempty"`
	RGB       colorutil.RGB `json:"rgb"`
	Luminance float64       `json:"luminance"`
	HSV       colorutil.HSV `json:"hsv"`
	HSL       colorutil.HSL `json:"hsl"`
}

// Cell is one background/foreground pairing. BG and FG index into
// Palette.All().
type Cell struct {
	BG         int     `json:"bg"`
	FG         int     `json:"fg"`
	BGHex      string  `json:"bg_hex"`
	FGHex      string  `json:"fg_hex"`
	Ratio      float64 `json:"ratio"`
	Level      string  `json:"level"`
	Passes     bool    `json:"passes"`
	Suppressed bool    `json:"suppressed"`
	Reason     string  `json:"reason,omitempty"`
}

type Matrix struct {
	Colours []string `json:"colours"`
	Cells   [][]Cell `json:"cells"`
}

// Flatten lists cells row by row (background-major).
func (m Matrix) Flatten() []Cell {
	var out []Cell
	for _, row := range m.Cells {
		out = append(out, row...)
	}
	return out
}

type Report struct {
	Threshold float64 `json:"threshold"`
	Suppress  bool    `json:"suppress"`
	Rows      []Row   `json:"rows"`
	Matrix    Matrix  `json:"matrix"`
}

func (p Palette) Rows() []Row {
	rows := make([]Row, len(p.entries))
	for i, e := range p.entries {
		hsv := colorutil.RGBToHSV(e.RGB)
		name, _ := colorutil.LookupName(e.RGB)
		rows[i] = Row{
			Index:     i,
			Slot:      e.Slot,
			Input:     e.Input,
			Hex:       e.Hex(),
			Name:      name,
			RGB:       e.RGB,
			Luminance: colorutil.Luminance(e.RGB),
			HSV:       hsv,
			HSL:       colorutil.HSVToHSL(hsv),
		}
	}
	return rows
}

func (p Palette) Matrix(opts Options) Matrix {
	if opts.Threshold <= 0 {
		opts.Threshold = colorutil.DefaultThreshold
	}
	all := p.All()
	m := Matrix{
		Colours: make([]string, len(all)),
		Cells:   make([][]Cell, len(all)),
	}
	for i, e := range all {
		m.Colours[i] = e.Hex()
	}
	for bg, b := range all {
		row := make([]Cell, len(all))
		for fg, f := range all {
			ratio := colorutil.ContrastRatio(b.RGB, f.RGB)
			cell := Cell{
				BG:     bg,
				FG:     fg,
				BGHex:  b.Hex(),
				FGHex:  f.Hex(),
				Ratio:  ratio,
				Level:  colorutil.Level(ratio),
				Passes: colorutil.Passes(ratio, opts.Threshold),
			}
			switch {
			case bg == fg:
				cell.Suppressed = true
				cell.Reason = ReasonSame
			case opts.Suppress && !cell.Passes:
				cell.Suppressed = true
				cell.Reason = ReasonBelowThreshold
			}
			row[fg] = cell
		}
		m.Cells[bg] = row
	}
	return m
}

// Analyze computes everything a front end needs to draw the page.
func Analyze(p Palette, opts Options) Report {
	if opts.Threshold <= 0 {
		opts.Threshold = colorutil.DefaultThreshold
	}
	return Report{
		Threshold: opts.Threshold,
		Suppress:  opts.Suppress,
		Rows:      p.Rows(),
		Matrix:    p.Matrix(opts),
	}
}
