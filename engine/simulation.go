package engine

import (
	"github.com/lixenwraith/road-fighter/components"
)

// System is a per-tick update step
// Systems run in ascending Priority order, lowest first
type System interface {
	Priority() int
	Update(gs *GameState)
}

// Direction is a horizontal movement command
type Direction int

const (
	DirLeft  Direction = -1
	DirRight Direction = 1
)

// TickResult reports the run counters after a Tick and the events it produced
type TickResult struct {
	Score     int
	Instances int
	GameOver  bool
	Events    []Event
}

// Simulation drives a GameState through its registered systems
// Not safe for concurrent use; one goroutine owns it
type Simulation struct {
	state   *GameState
	systems []System
}

// NewSimulation creates a simulation with no systems; callers register them with AddSystem
func NewSimulation(cfg Config) *Simulation {
	return &Simulation{
		state:   NewGameState(cfg),
		systems: make([]System, 0, 8),
	}
}

// AddSystem registers a system, keeping the list sorted by priority
// Systems with equal priority keep registration order
func (s *Simulation) AddSystem(sys System) {
	s.systems = append(s.systems, sys)
	// Insertion sort, stable
	for i := len(s.systems) - 1; i > 0; i-- {
		if s.systems[i].Priority() < s.systems[i-1].Priority() {
			s.systems[i], s.systems[i-1] = s.systems[i-1], s.systems[i]
		} else {
			break
		}
	}
}

// State exposes the underlying state for systems, tests and diagnostics
func (s *Simulation) State() *GameState {
	return s.state
}

// Fire creates one projectile per formation instance at the instance's screen position
// Lane position is recovered at the instance's own depth. Returns the number created
func (s *Simulation) Fire() int {
	gs := s.state
	if gs.IsGameOver() {
		return 0
	}

	offsets := gs.DrawOffsets()
	for _, o := range offsets {
		x := gs.PlayerX + o.DX
		y := gs.PlayerY + o.DY
		gs.Projectiles = append(gs.Projectiles, components.Projectile{
			X:  x,
			Y:  y,
			NX: gs.Projection.LaneX(x, y),
		})
	}
	if len(offsets) > 0 {
		gs.Emit(EventShot, len(offsets))
	}
	return len(offsets)
}

// MovePlayer shifts the formation anchor by the player speed
// Movement is allowed while the anchor's bottom-lane position is strictly inside (0, 1)
// in the direction of travel, so the anchor may overshoot an edge by at most one step
func (s *Simulation) MovePlayer(dir Direction) {
	gs := s.state
	if gs.IsGameOver() {
		return
	}

	p := gs.Projection
	nx := p.LaneX(gs.PlayerX, p.ScreenHeight)
	switch {
	case dir < 0 && nx > 0:
		gs.PlayerX -= gs.Config.Player.Speed
	case dir > 0 && nx < 1:
		gs.PlayerX += gs.Config.Player.Speed
	}
}

// Tick advances the simulation by deltaFrames fixed steps, at least one
// Stepping stops as soon as the run ends; a finished run does not advance
func (s *Simulation) Tick(deltaFrames int) TickResult {
	gs := s.state
	deltaFrames = max(1, deltaFrames)

	for i := 0; i < deltaFrames && !gs.IsGameOver(); i++ {
		s.step()
	}

	return TickResult{
		Score:     gs.Score,
		Instances: gs.Instances,
		GameOver:  gs.IsGameOver(),
		Events:    gs.DrainEvents(),
	}
}

func (s *Simulation) step() {
	for _, sys := range s.systems {
		sys.Update(s.state)
	}
	// Terminal check independent of which system changed the counters
	s.state.CheckGameOver()
}

// Restart clears all entities and counters and returns to the playing phase
func (s *Simulation) Restart() {
	s.state.Reset()
	s.state.Emit(EventRestart, 0)
}

// Snapshot returns a read-only copy of the current frame
func (s *Simulation) Snapshot() Snapshot {
	return s.state.Snapshot()
}

// Score returns the current score
func (s *Simulation) Score() int {
	return s.state.Score
}

// Instances returns the current formation size
func (s *Simulation) Instances() int {
	return s.state.Instances
}

// IsGameOver reports whether the run has ended
func (s *Simulation) IsGameOver() bool {
	return s.state.IsGameOver()
}
