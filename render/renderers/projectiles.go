package renderers

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/render"
)

// ProjectileRenderer draws projectiles as a single glyph, they are narrower than a cell
type ProjectileRenderer struct{}

// NewProjectileRenderer creates a projectile renderer
func NewProjectileRenderer() *ProjectileRenderer {
	return &ProjectileRenderer{}
}

// Render implements SystemRenderer
func (r *ProjectileRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	for _, p := range ctx.Snapshot.Projectiles {
		x, y := ctx.CellX(p.X), ctx.CellY(p.Y)
		if !ctx.FieldRow(y) {
			continue
		}
		bg := buf.Get(x, y).Style
		_, cellBg, _ := bg.Decompose()
		buf.Set(x, y, constants.ProjectileChar, render.BaseStyle.Foreground(render.RgbProjectile).Background(cellBg))
	}
}
