package engine

import (
	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/formation"
	"github.com/lixenwraith/road-fighter/vmath"
)

// Geometry builds perspective-scaled boxes centered on each entity's screen position
// Collision and rendering share it, so what is drawn is what collides
type Geometry struct {
	cfg  Config
	proj vmath.Projection
}

// NewGeometry creates the box builder for cfg
func NewGeometry(cfg Config) Geometry {
	return Geometry{cfg: cfg, proj: cfg.Projection()}
}

// EnemyBox returns the collision box of a regular enemy
func (g Geometry) EnemyBox(e components.Enemy) vmath.Rect {
	s := g.proj.Scale(e.Y)
	return vmath.CenteredRect(g.proj.ScreenX(e.NX, e.Y), e.Y, g.cfg.Enemy.Width*s, g.cfg.Enemy.Height*s)
}

// BossBox returns the collision box of a boss, the enemy box enlarged by the boss size multiplier
func (g Geometry) BossBox(b components.Boss) vmath.Rect {
	s := g.proj.Scale(b.Y) * g.cfg.Boss.SizeMultiplier
	return vmath.CenteredRect(g.proj.ScreenX(b.NX, b.Y), b.Y, g.cfg.Enemy.Width*s, g.cfg.Enemy.Height*s)
}

// ProjectileBox returns the collision box of a projectile at its cached screen x
func (g Geometry) ProjectileBox(pr components.Projectile) vmath.Rect {
	s := g.proj.Scale(pr.Y)
	return vmath.CenteredRect(pr.X, pr.Y, g.cfg.Projectile.Width*s, g.cfg.Projectile.Height*s)
}

// PowerupBox returns the collision box of a powerup
func (g Geometry) PowerupBox(pu components.Powerup) vmath.Rect {
	s := g.proj.Scale(pu.Y)
	return vmath.CenteredRect(g.proj.ScreenX(pu.NX, pu.Y), pu.Y, g.cfg.Powerup.Width*s, g.cfg.Powerup.Height*s)
}

// InstanceBoxes returns one collision box per formation instance around the anchor
// Ring capacity uses the instance width scaled at the anchor depth
func (g Geometry) InstanceBoxes(count int, anchorX, anchorY float64) []vmath.Rect {
	s := g.proj.Scale(anchorY)
	w := g.cfg.Player.Width * s
	h := g.cfg.Player.Height * s

	offsets := formation.Layout(count, g.cfg.Player.CircleRadius, w)
	boxes := make([]vmath.Rect, len(offsets))
	for i, o := range offsets {
		boxes[i] = vmath.CenteredRect(anchorX+o.DX, anchorY+o.DY, w, h)
	}
	return boxes
}

// DrawOffsets returns the formation layout used for drawing and firing, based on the unscaled width
func (g Geometry) DrawOffsets(count int) []formation.Offset {
	return formation.Layout(count, g.cfg.Player.CircleRadius, g.cfg.Player.Width)
}

// InstanceBox returns the drawn box of one instance at its offset from the anchor
func (g Geometry) InstanceBox(o formation.Offset, anchorX, anchorY float64) vmath.Rect {
	s := g.proj.Scale(anchorY)
	return vmath.CenteredRect(anchorX+o.DX, anchorY+o.DY, g.cfg.Player.Width*s, g.cfg.Player.Height*s)
}

// EnemyBox returns the collision box of e
func (gs *GameState) EnemyBox(e components.Enemy) vmath.Rect {
	return gs.Geometry.EnemyBox(e)
}

// BossBox returns the collision box of b
func (gs *GameState) BossBox(b components.Boss) vmath.Rect {
	return gs.Geometry.BossBox(b)
}

// ProjectileBox returns the collision box of pr
func (gs *GameState) ProjectileBox(pr components.Projectile) vmath.Rect {
	return gs.Geometry.ProjectileBox(pr)
}

// PowerupBox returns the collision box of pu
func (gs *GameState) PowerupBox(pu components.Powerup) vmath.Rect {
	return gs.Geometry.PowerupBox(pu)
}

// InstanceBoxes returns the collision boxes of the current formation
func (gs *GameState) InstanceBoxes() []vmath.Rect {
	return gs.Geometry.InstanceBoxes(gs.Instances, gs.PlayerX, gs.PlayerY)
}

// DrawOffsets returns the drawing and firing layout of the current formation
func (gs *GameState) DrawOffsets() []formation.Offset {
	return gs.Geometry.DrawOffsets(gs.Instances)
}
