package output

import (
	"fmt"
	"io"

	"github.com/phyten/contrastx/internal/palette"
)

// View selects which half of a report a command is about.
type View int

const (
	ViewGrid View = iota
	ViewTable
)

func (v View) String() string {
	if v == ViewTable {
		return "table"
	}
	return "grid"
}

// WriteReport renders rep in format. "auto" picks the terminal renderer for
// view; "grid" and "table" force one. Machine formats emit matrix cells for
// ViewGrid and colour rows for ViewTable, except json which always carries
// the whole report.
func WriteReport(w io.Writer, rep palette.Report, view View, format string, term Terminal) error {
	switch format {
	case "", "auto":
		if view == ViewTable {
			return WriteTable(w, rep.Rows, term)
		}
		return WriteGrid(w, rep.Matrix, rep.Threshold, term)
	case "grid":
		return WriteGrid(w, rep.Matrix, rep.Threshold, term)
	case "table":
		return WriteTable(w, rep.Rows, term)
	case "json":
		return WriteJSON(w, rep)
	case "ndjson":
		if view == ViewTable {
			return WriteNDJSON(w, rep.Rows)
		}
		return WriteNDJSON(w, rep.Matrix.Flatten())
	}

	t := CellsTable(rep.Matrix.Flatten())
	if view == ViewTable {
		t = RowsTable(rep.Rows)
	}
	switch format {
	case "csv":
		return WriteCSV(w, t)
	case "tsv":
		return WriteTSV(w, t)
	case "markdown":
		return WriteMarkdown(w, t)
	}
	return fmt.Errorf("unknown output format: %s", format)
}
