package renderers

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
	"github.com/lixenwraith/road-fighter/vmath"
)

// RoadRenderer draws the perspective road surface and its side barriers, one field row at a time
type RoadRenderer struct{}

// NewRoadRenderer creates a road renderer
func NewRoadRenderer() *RoadRenderer {
	return &RoadRenderer{}
}

// Render implements SystemRenderer
func (r *RoadRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	p := ctx.Projection
	roadStyle := render.BaseStyle.Background(render.RgbRoad)
	barrierStyle := render.BaseStyle.Background(render.RgbBarrier)
	horizonRow := ctx.CellY(p.HorizonY)

	for row := 0; row < ctx.FieldHeight; row++ {
		y := ctx.GameY(row)
		if row == horizonRow {
			buf.FillRect(0, row, ctx.Width-1, row, '─', render.BaseStyle.Foreground(render.RgbHorizon))
		}
		if y < p.HorizonY {
			continue
		}

		// Barriers widen from half width at the horizon to full width at the bottom
		bw := vmath.Lerp(ctx.Config.Screen.BarrierWidth/2, ctx.Config.Screen.BarrierWidth, vmath.Clamp(p.Depth(y), 0, 1))
		left, right := p.RoadLeft(y), p.RoadRight(y)

		buf.FillRect(ctx.CellX(left-bw), row, ctx.CellX(left)-1, row, constants.FillChar, barrierStyle)
		buf.FillRect(ctx.CellX(left), row, ctx.CellX(right)-1, row, constants.FillChar, roadStyle)
		buf.FillRect(ctx.CellX(right), row, ctx.CellX(right+bw)-1, row, constants.FillChar, barrierStyle)
	}
}
