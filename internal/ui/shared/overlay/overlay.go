// Package overlay composites a centered surface on top of a background
// view and exposes the surface geometry for pointer hit-testing.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
)

// Rect describes the placement of an overlay surface in viewport cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Contains reports whether the viewport cell (x, y) falls on the
// surface. Used to distinguish backdrop clicks from surface clicks.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center computes the placement of a fg-sized surface centered in the
// viewport. Negative origins are clamped to zero for oversized
// surfaces.
func Center(fgWidth, fgHeight, vpWidth, vpHeight int) Rect {
	x := (vpWidth - fgWidth) / 2
	y := (vpHeight - fgHeight) / 2
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return Rect{X: x, Y: y, Width: fgWidth, Height: fgHeight}
}

// Composite renders fg centered over bg in a vpWidth x vpHeight
// viewport. Background rows outside the surface are kept; on surface
// rows the background right of the surface is blanked.
func Composite(fg, bg string, vpWidth, vpHeight int) string {
	if vpWidth <= 0 || vpHeight <= 0 {
		return fg
	}

	fgLines := strings.Split(fg, "\n")
	fgWidth := lipgloss.Width(fg)
	rect := Center(fgWidth, len(fgLines), vpWidth, vpHeight)

	bgLines := strings.Split(bg, "\n")
	out := make([]string, vpHeight)
	for row := 0; row < vpHeight; row++ {
		var bgLine string
		if row < len(bgLines) {
			bgLine = bgLines[row]
		}

		fgRow := row - rect.Y
		if fgRow < 0 || fgRow >= len(fgLines) {
			out[row] = bgLine
			continue
		}

		left := truncate.String(bgLine, uint(rect.X))
		pad := rect.X - ansi.PrintableRuneWidth(left)
		if pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		out[row] = left + fgLines[fgRow]
	}

	return strings.Join(out, "\n")
}
