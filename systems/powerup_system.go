package systems

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// PowerupSystem advances powerups along their lane without homing and cycles their blink phase
type PowerupSystem struct {
	resolver *CollisionResolver
}

// NewPowerupSystem creates a powerup system resolving pickups with resolver
func NewPowerupSystem(resolver *CollisionResolver) *PowerupSystem {
	return &PowerupSystem{resolver: resolver}
}

// Priority returns the system's priority
func (s *PowerupSystem) Priority() int {
	return constants.PriorityPowerup
}

// Update moves, bounds-checks and resolves every live powerup
func (s *PowerupSystem) Update(gs *engine.GameState) {
	p := gs.Projection
	cfg := gs.Config.Powerup
	cycle := 2 * cfg.FlashPeriod

	for i := range gs.Powerups {
		pu := &gs.Powerups[i]
		if pu.Dead {
			continue
		}

		pu.Y += cfg.Speed * speedScale(p, pu.Y)
		if cycle > 0 {
			pu.FlashPhase = (pu.FlashPhase + 1) % cycle
		}

		if pu.Y > p.ScreenHeight {
			pu.Dead = true
			continue
		}
		if gs.IsGameOver() {
			continue
		}
		s.resolver.ResolvePowerup(gs, pu)
	}
}
