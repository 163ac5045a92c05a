package systems

import (
	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/vmath"
)

// CollisionResolver applies the outcome of contacts between entities and the formation
// Projectiles are always tested before the formation, and each test stops at the first hit
type CollisionResolver struct{}

// NewCollisionResolver creates a new collision resolver
func NewCollisionResolver() *CollisionResolver {
	return &CollisionResolver{}
}

// ResolveEnemies resolves every live enemy in collection order
func (r *CollisionResolver) ResolveEnemies(gs *engine.GameState) {
	for i := range gs.Enemies {
		if gs.IsGameOver() {
			return
		}
		r.ResolveEnemy(gs, &gs.Enemies[i])
	}
}

// ResolveBosses resolves every live boss in collection order
func (r *CollisionResolver) ResolveBosses(gs *engine.GameState) {
	for i := range gs.Bosses {
		if gs.IsGameOver() {
			return
		}
		r.ResolveBoss(gs, &gs.Bosses[i])
	}
}

// ResolvePowerups resolves every live powerup in collection order
func (r *CollisionResolver) ResolvePowerups(gs *engine.GameState) {
	for i := range gs.Powerups {
		if gs.IsGameOver() {
			return
		}
		r.ResolvePowerup(gs, &gs.Powerups[i])
	}
}

// ResolveEnemy destroys the enemy on the first projectile hit for score,
// otherwise costs one instance on the first formation contact
func (r *CollisionResolver) ResolveEnemy(gs *engine.GameState, e *components.Enemy) {
	if e.Dead {
		return
	}
	box := gs.EnemyBox(*e)

	if pr := r.firstProjectileHit(gs, box); pr != nil {
		pr.Dead = true
		e.Dead = true
		gs.AddScore(gs.Config.Combat.EnemyScore)
		gs.Emit(engine.EventEnemyDestroyed, gs.Config.Combat.EnemyScore)
		return
	}

	if r.touchesFormation(gs, box) {
		e.Dead = true
		gs.LoseInstances(1)
	}
}

// ResolveBoss consumes at most one projectile per call, one health each
// A boss still alive that touches the formation costs its full remaining health in instances
func (r *CollisionResolver) ResolveBoss(gs *engine.GameState, b *components.Boss) {
	if b.Dead {
		return
	}
	box := gs.BossBox(*b)

	if pr := r.firstProjectileHit(gs, box); pr != nil {
		pr.Dead = true
		b.Health--
		if b.Health <= 0 {
			b.Dead = true
			gs.AddScore(gs.Config.Combat.BossScore)
			gs.Emit(engine.EventBossDestroyed, gs.Config.Combat.BossScore)
			return
		}
		gs.Emit(engine.EventBossHit, b.Health)
	}

	if r.touchesFormation(gs, box) {
		b.Dead = true
		gs.LoseInstances(b.Health)
	}
}

// ResolvePowerup applies the powerup's delta on the first formation contact
func (r *CollisionResolver) ResolvePowerup(gs *engine.GameState, pu *components.Powerup) {
	if pu.Dead {
		return
	}
	if r.touchesFormation(gs, gs.PowerupBox(*pu)) {
		pu.Dead = true
		gs.ApplyPowerup(pu.Value)
	}
}

// firstProjectileHit returns the first live projectile overlapping box, or nil
func (r *CollisionResolver) firstProjectileHit(gs *engine.GameState, box vmath.Rect) *components.Projectile {
	buffer := gs.Config.Combat.CollisionBuffer
	for i := range gs.Projectiles {
		pr := &gs.Projectiles[i]
		if pr.Dead {
			continue
		}
		if gs.ProjectileBox(*pr).Overlaps(box, buffer) {
			return pr
		}
	}
	return nil
}

// touchesFormation reports whether any formation instance overlaps box
func (r *CollisionResolver) touchesFormation(gs *engine.GameState, box vmath.Rect) bool {
	if gs.Instances <= 0 {
		return false
	}
	buffer := gs.Config.Combat.CollisionBuffer
	for _, inst := range gs.InstanceBoxes() {
		if inst.Overlaps(box, buffer) {
			return true
		}
	}
	return false
}
