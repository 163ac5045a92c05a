package renderers

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
)

// PlayerRenderer draws every formation instance with a shadow row beneath it
type PlayerRenderer struct{}

// NewPlayerRenderer creates a player renderer
func NewPlayerRenderer() *PlayerRenderer {
	return &PlayerRenderer{}
}

// Render implements SystemRenderer
func (r *PlayerRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	snap := ctx.Snapshot
	shadowStyle := render.BaseStyle.Foreground(render.RgbShadow).Background(render.RgbRoad)

	for _, o := range snap.Formation {
		box := ctx.Geometry.InstanceBox(o, snap.PlayerX, snap.PlayerY)
		x0, _, x1, y1 := fillBox(ctx, buf, box, render.RgbPlayer)

		shadowRow := y1 + 1
		if !ctx.FieldRow(shadowRow) {
			continue
		}
		for x := x0; x <= x1; x++ {
			// Shadows never cover other instances
			if _, bg, _ := buf.Get(x, shadowRow).Style.Decompose(); bg == render.RgbPlayer {
				continue
			}
			buf.Set(x, shadowRow, constants.ShadowChar, shadowStyle)
		}
	}
}
