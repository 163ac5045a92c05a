package systems

import (
	"slices"

	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
)

// CullSystem removes entities tombstoned during the tick
// It runs last so every other system sees removals as Dead flags in the same tick
type CullSystem struct{}

// NewCullSystem creates a new cull system
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

// Update compacts every collection, preserving the order of survivors
func (s *CullSystem) Update(gs *engine.GameState) {
	gs.Enemies = slices.DeleteFunc(gs.Enemies, func(e components.Enemy) bool { return e.Dead })
	gs.Bosses = slices.DeleteFunc(gs.Bosses, func(b components.Boss) bool { return b.Dead })
	gs.Projectiles = slices.DeleteFunc(gs.Projectiles, func(p components.Projectile) bool { return p.Dead })
	gs.Powerups = slices.DeleteFunc(gs.Powerups, func(p components.Powerup) bool { return p.Dead })
}
