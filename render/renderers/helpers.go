package renderers

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/vmath"
)

// fillBox paints a game-space box as solid background cells, clipped to the play field
// Returns the cell rectangle used, for label placement
func fillBox(ctx render.RenderContext, buf *render.RenderBuffer, box vmath.Rect, color tcell.Color) (x0, y0, x1, y1 int) {
	x0, y0, x1, y1 = ctx.CellRect(box)
	y1 = min(y1, ctx.FieldHeight-1)
	if y0 > y1 {
		return x0, y0, x1, y1
	}
	buf.FillRect(x0, y0, x1, y1, ' ', render.BaseStyle.Background(color))
	return x0, y0, x1, y1
}

// labelBox writes text centered in a cell rectangle, keeping the underlying background
func labelBox(buf *render.RenderBuffer, x0, y0, x1, y1 int, text string, fg, bg tcell.Color) {
	cx := (x0 + x1 + 1) / 2
	cy := (y0 + y1) / 2
	buf.SetStringCentered(cx, cy, text, render.BaseStyle.Foreground(fg).Background(bg))
}
