package engine

import (
	"github.com/lixenwraith/road-fighter/components"
	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/vmath"
)

// GamePhase is the run lifecycle
type GamePhase int

const (
	PhasePlaying GamePhase = iota
	PhaseGameOver
)

// String returns the name of the phase
func (p GamePhase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// GameState exclusively owns every entity collection and the run counters
// Single-threaded: only the goroutine driving Simulation touches it
type GameState struct {
	Config     Config
	Projection vmath.Projection
	Geometry   Geometry

	// Entity collections; removal sets Dead and CullSystem compacts at tick end
	Enemies     []components.Enemy
	Bosses      []components.Boss
	Projectiles []components.Projectile
	Powerups    []components.Powerup

	// Run counters
	Score      int
	Instances  int
	FrameCount int // Wraps at Config.Spawn.FrameWrap
	Phase      GamePhase

	// Formation anchor in screen space
	PlayerX float64
	PlayerY float64

	events []Event
}

// NewGameState creates a state in its initial playing configuration
func NewGameState(cfg Config) *GameState {
	gs := &GameState{
		Config:     cfg,
		Projection: cfg.Projection(),
		Geometry:   NewGeometry(cfg),
		events:     make([]Event, 0, constants.EventBufferCapacity),
	}
	gs.Reset()
	return gs
}

// Reset returns every collection and counter to the start of a run
func (gs *GameState) Reset() {
	gs.Enemies = gs.Enemies[:0]
	gs.Bosses = gs.Bosses[:0]
	gs.Projectiles = gs.Projectiles[:0]
	gs.Powerups = gs.Powerups[:0]

	gs.Score = 0
	gs.Instances = gs.Config.Player.StartInstances
	gs.FrameCount = 0
	gs.Phase = PhasePlaying

	gs.PlayerX = gs.Config.Screen.Width / 2
	gs.PlayerY = gs.Config.Screen.Height - gs.Config.Player.BottomOffset

	gs.events = gs.events[:0]
}

// AddScore increases the score; non-positive amounts are ignored so the score never decreases
func (gs *GameState) AddScore(points int) {
	if points > 0 {
		gs.Score += points
	}
}

// LoseInstances removes n instances, flooring at zero, and ends the run at zero
// Returns true if this call ended the run
func (gs *GameState) LoseInstances(n int) bool {
	if n <= 0 || gs.IsGameOver() {
		return false
	}
	gs.Instances = max(0, gs.Instances-n)
	gs.Emit(EventInstanceLost, n)
	return gs.CheckGameOver()
}

// ApplyPowerup changes the instance count by delta, never dropping below one
func (gs *GameState) ApplyPowerup(delta int) {
	gs.Instances = max(1, gs.Instances+delta)
	gs.Emit(EventPowerupCollected, delta)
}

// CheckGameOver transitions to PhaseGameOver when no instances remain
// Returns true only on the transition
func (gs *GameState) CheckGameOver() bool {
	if gs.Phase == PhaseGameOver || gs.Instances > 0 {
		return false
	}
	gs.Phase = PhaseGameOver
	gs.Emit(EventGameOver, gs.Score)
	return true
}

// IsGameOver reports whether the run has ended
func (gs *GameState) IsGameOver() bool {
	return gs.Phase == PhaseGameOver
}

// Emit buffers an event stamped with the current frame
func (gs *GameState) Emit(t EventType, value int) {
	gs.events = append(gs.events, Event{Type: t, Frame: gs.FrameCount, Value: value})
}

// DrainEvents returns the buffered events and clears the buffer
// The returned slice is owned by the caller
func (gs *GameState) DrainEvents() []Event {
	if len(gs.events) == 0 {
		return nil
	}
	out := make([]Event, len(gs.events))
	copy(out, gs.events)
	gs.events = gs.events[:0]
	return out
}
