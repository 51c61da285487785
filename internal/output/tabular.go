package output

import (
	"fmt"
	"strconv"

	"github.com/phyten/contrastx/internal/palette"
)

// Tabular is a header plus string rows, shared by the TSV, CSV and
// Markdown writers.
type Tabular struct {
	Headers []string
	Rows    [][]string
}

var cellHeaders = []string{"bg", "fg", "bg_hex", "fg_hex", "ratio", "level", "passes", "suppressed", "reason"}

var rowHeaders = []string{"index", "slot", "input", "hex", "name", "r", "g", "b", "luminance", "h", "s", "v", "hsl_s", "hsl_l"}

func CellsTable(cells []palette.Cell) Tabular {
	t := Tabular{Headers: cellHeaders, Rows: make([][]string, 0, len(cells))}
	for _, c := range cells {
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(c.BG),
			strconv.Itoa(c.FG),
			c.BGHex,
			c.FGHex,
			formatRatio(c.Ratio),
			c.Level,
			strconv.FormatBool(c.Passes),
			strconv.FormatBool(c.Suppressed),
			c.Reason,
		})
	}
	return t
}

func RowsTable(rows []palette.Row) Tabular {
	t := Tabular{Headers: rowHeaders, Rows: make([][]string, 0, len(rows))}
	for _, r := range rows {
		hsv, hsl := r.HSV.Rounded(), r.HSL.Rounded()
		t.Rows = append(t.Rows, []string{
			strconv.Itoa(r.Index),
			strconv.Itoa(r.Slot),
			r.Input,
			r.Hex,
			r.Name,
			strconv.Itoa(int(r.RGB.R)),
			strconv.Itoa(int(r.RGB.G)),
			strconv.Itoa(int(r.RGB.B)),
			fmt.Sprintf("%.4f", r.Luminance),
			strconv.Itoa(hsv[0]),
			strconv.Itoa(hsv[1]),
			strconv.Itoa(hsv[2]),
			strconv.Itoa(hsl[1]),
			strconv.Itoa(hsl[2]),
		})
	}
	return t
}

func formatRatio(r float64) string {
	return fmt.Sprintf("%.2f", r)
}
