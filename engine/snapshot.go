package engine

import (
	"slices"

	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/formation"
)

// Snapshot is a read-only copy of the visible state for one frame
// Renderers consume it without touching GameState
type Snapshot struct {
	Enemies     []components.Enemy
	Bosses      []components.Boss
	Projectiles []components.Projectile
	Powerups    []components.Powerup

	Formation []formation.Offset
	PlayerX   float64
	PlayerY   float64

	Score      int
	Instances  int
	FrameCount int
	GameOver   bool
}

// Snapshot copies the live entities; tombstoned entries are excluded
func (gs *GameState) Snapshot() Snapshot {
	return Snapshot{
		Enemies:     liveCopy(gs.Enemies, func(e components.Enemy) bool { return e.Dead }),
		Bosses:      liveCopy(gs.Bosses, func(b components.Boss) bool { return b.Dead }),
		Projectiles: liveCopy(gs.Projectiles, func(p components.Projectile) bool { return p.Dead }),
		Powerups:    liveCopy(gs.Powerups, func(p components.Powerup) bool { return p.Dead }),
		Formation:   gs.DrawOffsets(),
		PlayerX:     gs.PlayerX,
		PlayerY:     gs.PlayerY,
		Score:       gs.Score,
		Instances:   gs.Instances,
		FrameCount:  gs.FrameCount,
		GameOver:    gs.IsGameOver(),
	}
}

func liveCopy[T any](src []T, dead func(T) bool) []T {
	return slices.DeleteFunc(slices.Clone(src), dead)
}
