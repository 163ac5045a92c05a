package renderers

import (
	"strconv"

	"github.com/lixenwraith/road-fighter/render"
)

// PowerupRenderer draws pickups with their blinking signed value
type PowerupRenderer struct{}

// NewPowerupRenderer creates a powerup renderer
func NewPowerupRenderer() *PowerupRenderer {
	return &PowerupRenderer{}
}

// Render implements SystemRenderer
func (r *PowerupRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	period := ctx.Config.Powerup.FlashPeriod

	for _, pu := range ctx.Snapshot.Powerups {
		x0, y0, x1, y1 := fillBox(ctx, buf, ctx.Geometry.PowerupBox(pu), render.RgbPowerup)
		if y0 > y1 || !pu.ValueVisible(period) {
			continue
		}
		label := strconv.Itoa(pu.Value)
		if pu.Value > 0 {
			label = "+" + label
		}
		labelBox(buf, x0, y0, x1, y1, label, render.RgbPowerupText, render.RgbPowerup)
	}
}
