package systems

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// EnemySystem advances regular enemies toward the viewer, homing on the formation
// Each enemy is moved and then resolved before the next one is processed
type EnemySystem struct {
	resolver *CollisionResolver
}

// NewEnemySystem creates an enemy system resolving contacts with resolver
func NewEnemySystem(resolver *CollisionResolver) *EnemySystem {
	return &EnemySystem{resolver: resolver}
}

// Priority returns the system's priority
func (s *EnemySystem) Priority() int {
	return constants.PriorityEnemy
}

// Update moves, bounds-checks and resolves every live enemy
func (s *EnemySystem) Update(gs *engine.GameState) {
	p := gs.Projection
	cfg := gs.Config.Enemy

	for i := range gs.Enemies {
		e := &gs.Enemies[i]
		if e.Dead {
			continue
		}

		e.Y += cfg.Speed * speedScale(p, e.Y)
		e.NX = homeLane(gs, e.NX, e.Y, cfg.HomingScale)

		if e.Y > p.ScreenHeight {
			e.Dead = true
			continue
		}
		if gs.IsGameOver() {
			continue
		}
		s.resolver.ResolveEnemy(gs, e)
	}
}
