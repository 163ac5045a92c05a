package systems

import (
	"math/rand"

	"github.com/lixenwraith/road-fighter/engine"
)

// NewSimulation builds a simulation with the full per-tick pipeline registered
// Spawn, projectiles, enemies, bosses, powerups, then cull
func NewSimulation(cfg engine.Config, rng *rand.Rand) *engine.Simulation {
	sim := engine.NewSimulation(cfg)
	resolver := NewCollisionResolver()

	sim.AddSystem(NewSpawnSystem(rng))
	sim.AddSystem(NewProjectileSystem())
	sim.AddSystem(NewEnemySystem(resolver))
	sim.AddSystem(NewBossSystem(resolver))
	sim.AddSystem(NewPowerupSystem(resolver))
	sim.AddSystem(NewCullSystem())

	return sim
}
