package systems

import (
	"math/rand"

	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/engine"
	"github.com/lixenwraith/road-fighter/vmath"
)

// SpawnSystem advances the frame counter and spawns waves on a fixed cadence
// Enemy waves every Spawn.EnemyInterval frames, powerup pairs every Spawn.PowerupInterval frames
type SpawnSystem struct {
	rng *rand.Rand
}

// NewSpawnSystem creates a spawn system drawing from rng
// A seeded rng makes a run reproducible
func NewSpawnSystem(rng *rand.Rand) *SpawnSystem {
	return &SpawnSystem{rng: rng}
}

// Priority returns the system's priority
func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update increments the wrapping frame counter and spawns due waves
func (s *SpawnSystem) Update(gs *engine.GameState) {
	sp := gs.Config.Spawn
	gs.FrameCount = (gs.FrameCount + 1) % sp.FrameWrap

	if gs.FrameCount%sp.EnemyInterval == 0 {
		s.SpawnEnemyWave(gs)
	}
	if gs.FrameCount%sp.PowerupInterval == 0 {
		s.SpawnPowerupPair(gs)
	}
}

// SpawnEnemyWave adds either a single boss or a cluster of regular enemies at the horizon
func (s *SpawnSystem) SpawnEnemyWave(gs *engine.GameState) {
	cfg := gs.Config
	horizon := cfg.Screen.HorizonY

	if s.rng.Float64() < cfg.Spawn.BossChance {
		gs.Bosses = append(gs.Bosses, components.Boss{
			NX:     s.rng.Float64(),
			Y:      horizon,
			Health: s.intRange(cfg.Boss.HealthMin, cfg.Boss.HealthMax),
		})
		return
	}

	spread := cfg.Spawn.ClusterSpread
	size := s.intRange(cfg.Spawn.ClusterMin, cfg.Spawn.ClusterMax)
	// Keep the center far enough from the edges for spread in both directions
	center := vmath.Clamp(s.rng.Float64(), spread, 1-spread)

	for i := 0; i < size; i++ {
		gs.Enemies = append(gs.Enemies, components.Enemy{
			NX: vmath.Clamp(center+s.floatRange(-spread, spread), 0, 1),
			Y:  horizon + s.floatRange(-cfg.Spawn.DepthJitter, cfg.Spawn.DepthJitter),
		})
	}
}

// SpawnPowerupPair adds two adjacent powerups with distinct values, each centered in its own road quarter
func (s *SpawnSystem) SpawnPowerupPair(gs *engine.GameState) {
	cfg := gs.Config
	base := s.rng.Float64() * constants.PowerupPairBaseRange
	left := base + constants.PowerupQuarterCenter
	right := left + constants.PowerupQuarterWidth

	v1 := s.intRange(cfg.Powerup.ValueMin, cfg.Powerup.ValueMax)
	v2 := s.intRange(cfg.Powerup.ValueMin, cfg.Powerup.ValueMax)
	for v2 == v1 {
		v2 = s.intRange(cfg.Powerup.ValueMin, cfg.Powerup.ValueMax)
	}

	gs.Powerups = append(gs.Powerups,
		components.Powerup{NX: left, Y: cfg.Screen.HorizonY, Value: v1},
		components.Powerup{NX: right, Y: cfg.Screen.HorizonY, Value: v2},
	)
}

// intRange returns a uniform integer in [lo, hi]
func (s *SpawnSystem) intRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// floatRange returns a uniform float in [lo, hi)
func (s *SpawnSystem) floatRange(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}
