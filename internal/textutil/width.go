// Package textutil measures and aligns terminal text that may carry SGR
// escapes or wide glyphs (colour names, swatch cells, CJK input echoes).
package textutil

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

var escapeRe = regexp.MustCompile(`\x1b\[[0-?]*[ -/]*[@-~]|\x1b\][^\x07\x1b]*(?:\x07|\x1b\\)`)

func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	return escapeRe.ReplaceAllString(s, "")
}

// VisibleWidth is the number of terminal cells s occupies once escapes are
// removed. Grapheme clusters are measured as a unit.
func VisibleWidth(s string) int {
	plain := StripANSI(s)
	width := 0
	state := -1
	for len(plain) > 0 {
		var cluster string
		cluster, plain, _, state = uniseg.FirstGraphemeClusterInString(plain, state)
		width += runewidth.StringWidth(cluster)
	}
	return width
}

// Truncate shortens s to at most w cells. When it has to cut and the
// ellipsis fits, the ellipsis replaces the tail.
func Truncate(s string, w int, ellipsis string) string {
	if w <= 0 {
		return ""
	}
	if VisibleWidth(s) <= w {
		return s
	}
	budget := w
	ellW := VisibleWidth(ellipsis)
	if ellipsis != "" && ellW <= w {
		budget = w - ellW
	} else {
		ellipsis = ""
	}
	var b strings.Builder
	used := 0
	g := uniseg.NewGraphemes(StripANSI(s))
	for g.Next() {
		cw := runewidth.StringWidth(g.Str())
		if used+cw > budget {
			break
		}
		b.WriteString(g.Str())
		used += cw
	}
	return b.String() + ellipsis
}

func PadRight(s string, w int) string {
	return s + strings.Repeat(" ", max(0, w-VisibleWidth(s)))
}

func PadLeft(s string, w int) string {
	return strings.Repeat(" ", max(0, w-VisibleWidth(s))) + s
}

// Center splits the padding evenly, putting the odd cell on the right.
func Center(s string, w int) string {
	pad := max(0, w-VisibleWidth(s))
	left := pad / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", pad-left)
}

// ColumnWidths returns, per column, the widest visible cell across rows.
// Short rows are allowed.
func ColumnWidths(rows [][]string) []int {
	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			if i >= len(widths) {
				widths = append(widths, 0)
			}
			widths[i] = max(widths[i], VisibleWidth(cell))
		}
	}
	return widths
}
