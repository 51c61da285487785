package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/phyten/contrastx/internal/colorutil"
	"github.com/phyten/contrastx/internal/palette"
	"github.com/phyten/contrastx/internal/termcolor"
	"github.com/phyten/contrastx/internal/textutil"
)

const (
	gridLabelWidth = 9
	gridCellWidth  = 9
	suppressedText = "--"
)

var (
	suppressedGrey = colorutil.RGB{R: 0x88, G: 0x88, B: 0x88}
	labelInk       = colorutil.White
)

// Terminal describes how the current stdout can be painted.
type Terminal struct {
	Color   bool
	Profile termcolor.Profile
}

func (t Terminal) swatch(fg, bg colorutil.RGB, text string) string {
	if !t.Color {
		return text
	}
	return termcolor.Apply(termcolor.Swatch(fg, bg, t.Profile), text, true)
}

// label paints a hex label on its own colour. White ink is kept while it
// reaches AA; otherwise the better of black and white is used.
func (t Terminal) label(hex string, width int) string {
	text := textutil.Center(hex, width)
	c, err := colorutil.ParseHex(hex)
	if err != nil {
		return text
	}
	return t.swatch(colorutil.EnsureContrast(labelInk, c, colorutil.WCAGAA), c, text)
}

// WriteGrid draws the background (rows) by foreground (columns) matrix.
func WriteGrid(w io.Writer, m palette.Matrix, threshold float64, term Terminal) error {
	var b strings.Builder
	b.WriteString(textutil.PadRight(`bg \ fg`, gridLabelWidth))
	for _, hex := range m.Colours {
		b.WriteString(term.label(hex, gridCellWidth))
	}
	writeTrimmed(&b)

	for bg, row := range m.Cells {
		b.WriteString(term.label(m.Colours[bg], gridLabelWidth))
		for _, cell := range row {
			b.WriteString(term.gridCell(cell))
		}
		writeTrimmed(&b)
	}
	fmt.Fprintf(&b, "threshold %s:1\n", strconv.FormatFloat(threshold, 'f', -1, 64))
	_, err := io.WriteString(w, b.String())
	return err
}

func (t Terminal) gridCell(cell palette.Cell) string {
	if cell.Suppressed {
		return t.swatch(suppressedGrey, suppressedGrey, textutil.Center(suppressedText, gridCellWidth))
	}
	text := textutil.Center(formatRatio(cell.Ratio), gridCellWidth)
	bg, errBG := colorutil.ParseHex(cell.BGHex)
	fg, errFG := colorutil.ParseHex(cell.FGHex)
	if errBG != nil || errFG != nil {
		return text
	}
	return t.swatch(fg, bg, text)
}

// writeTrimmed ends the line currently held in b, dropping trailing blanks.
func writeTrimmed(b *strings.Builder) {
	s := b.String()
	start := strings.LastIndexByte(s, '\n') + 1
	line := strings.TrimRight(s[start:], " ")
	b.Reset()
	b.WriteString(s[:start])
	b.WriteString(line)
	b.WriteByte('\n')
}

var tableHeaders = []string{"#", "HEX", "NAME", "R", "G", "B", "LUMA", "H°", "S%", "V%", "HSL-S%", "HSL-L%"}

// numeric columns are right aligned.
var tableNumeric = []bool{true, false, false, true, true, true, true, true, true, true, true, true}

// WriteTable prints the per-colour readout. A swatch column leads each row
// when colour is enabled.
func WriteTable(w io.Writer, rows []palette.Row, term Terminal) error {
	cells := make([][]string, 0, len(rows)+1)
	cells = append(cells, tableHeaders)
	for _, r := range rows {
		hsv, hsl := r.HSV.Rounded(), r.HSL.Rounded()
		cells = append(cells, []string{
			strconv.Itoa(r.Slot + 1),
			r.Hex,
			textutil.Truncate(r.Name, 14, "…"),
			strconv.Itoa(int(r.RGB.R)),
			strconv.Itoa(int(r.RGB.G)),
			strconv.Itoa(int(r.RGB.B)),
			fmt.Sprintf("%.3f", r.Luminance),
			strconv.Itoa(hsv[0]),
			strconv.Itoa(hsv[1]),
			strconv.Itoa(hsv[2]),
			strconv.Itoa(hsl[1]),
			strconv.Itoa(hsl[2]),
		})
	}
	widths := textutil.ColumnWidths(cells)

	var b strings.Builder
	for i, row := range cells {
		parts := make([]string, 0, len(row)+1)
		if term.Color {
			if i == 0 {
				parts = append(parts, "    ")
			} else {
				parts = append(parts, term.swatch(rows[i-1].RGB, rows[i-1].RGB, "    "))
			}
		}
		for j, v := range row {
			if tableNumeric[j] {
				v = textutil.PadLeft(v, widths[j])
			} else {
				v = textutil.PadRight(v, widths[j])
			}
			if i == 0 {
				v = termcolor.Apply(termcolor.HeaderStyle(), v, term.Color)
			}
			parts = append(parts, v)
		}
		b.WriteString(strings.Join(parts, "  "))
		writeTrimmed(&b)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteConversion prints the three-line RGB -> HSV/HSL -> RGB check.
func WriteConversion(w io.Writer, c colorutil.Conversion) error {
	hsv, hsl := c.HSV.Rounded(), c.HSL.Rounded()
	_, err := fmt.Fprintf(w,
		"RGB in:    %d %d %d\nHSV / HSL: %d %d %d | %d %d %d\nRGB out:   %d %d %d\n",
		c.In.R, c.In.G, c.In.B,
		hsv[0], hsv[1], hsv[2], hsl[0], hsl[1], hsl[2],
		c.Out.R, c.Out.G, c.Out.B,
	)
	return err
}
