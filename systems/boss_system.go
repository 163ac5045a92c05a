package systems

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// BossSystem advances bosses more slowly than regular enemies with weaker homing
type BossSystem struct {
	resolver *CollisionResolver
}

// NewBossSystem creates a boss system resolving contacts with resolver
func NewBossSystem(resolver *CollisionResolver) *BossSystem {
	return &BossSystem{resolver: resolver}
}

// Priority returns the system's priority
func (s *BossSystem) Priority() int {
	return constants.PriorityBoss
}

// Update moves, bounds-checks and resolves every live boss
func (s *BossSystem) Update(gs *engine.GameState) {
	p := gs.Projection
	speed := gs.Config.Enemy.Speed * gs.Config.Boss.SpeedFactor
	gain := gs.Config.Boss.HomingScale

	for i := range gs.Bosses {
		b := &gs.Bosses[i]
		if b.Dead {
			continue
		}

		b.Y += speed * speedScale(p, b.Y)
		b.NX = homeLane(gs, b.NX, b.Y, gain)

		if b.Y > p.ScreenHeight {
			b.Dead = true
			continue
		}
		if gs.IsGameOver() {
			continue
		}
		s.resolver.ResolveBoss(gs, b)
	}
}
