package systems

import (
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// ProjectileSystem moves projectiles toward the horizon along their lane
type ProjectileSystem struct{}

// NewProjectileSystem creates a new projectile system
func NewProjectileSystem() *ProjectileSystem {
	return &ProjectileSystem{}
}

// Priority returns the system's priority
func (s *ProjectileSystem) Priority() int {
	return constants.PriorityProjectile
}

// Update advances every live projectile and tombstones those past the horizon
func (s *ProjectileSystem) Update(gs *engine.GameState) {
	p := gs.Projection
	speed := gs.Config.Projectile.Speed

	for i := range gs.Projectiles {
		pr := &gs.Projectiles[i]
		if pr.Dead {
			continue
		}
		pr.Y -= speed
		pr.X = p.ScreenX(pr.NX, pr.Y)
		if pr.Y < p.HorizonY {
			pr.Dead = true
		}
	}
}
