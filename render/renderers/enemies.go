package renderers

import (
	"strconv"

	"github.com/lixenwraith/road-fighter/render"
)

// EnemyRenderer draws regular enemies and bosses with their remaining health
type EnemyRenderer struct{}

// NewEnemyRenderer creates an enemy renderer
func NewEnemyRenderer() *EnemyRenderer {
	return &EnemyRenderer{}
}

// Render implements SystemRenderer
// Entities nearer the horizon are drawn first so closer ones cover them
func (r *EnemyRenderer) Render(ctx render.RenderContext, buf *render.RenderBuffer) {
	g := ctx.Geometry

	for _, e := range ctx.Snapshot.Enemies {
		fillBox(ctx, buf, g.EnemyBox(e), render.RgbEnemy)
	}

	for _, b := range ctx.Snapshot.Bosses {
		x0, y0, x1, y1 := fillBox(ctx, buf, g.BossBox(b), render.RgbBoss)
		if y0 <= y1 && ctx.FieldRow((y0+y1)/2) {
			labelBox(buf, x0, y0, x1, y1, strconv.Itoa(b.Health), render.RgbBossHealth, render.RgbBoss)
		}
	}
}
