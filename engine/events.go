// Package engine owns the simulation state of a road-fighter run and its boundary operations.
//
// Event Stream
//
// Systems never call into the presentation layer. Every gameplay outcome that a shell may want
// to react to is appended to the GameState event buffer with Emit.
// Simulation.Tick drains the buffer and hands the events to the caller in emission order.
//
// Event Flow Pattern:
//  1. A system detects an outcome during Update: state.Emit(EventEnemyDestroyed, 0)
//  2. The event is stamped with the current frame counter and buffered
//  3. Tick returns the buffered events in TickResult.Events and clears the buffer
//  4. The shell dispatches them, e.g. audio.SoundManager.HandleEvents(result.Events)
package engine

// EventType identifies a gameplay outcome
type EventType int

const (
	// EventShot signals that the formation fired
	// Value: number of projectiles created
	EventShot EventType = iota

	// EventEnemyDestroyed signals a regular enemy destroyed by a projectile
	// Value: score awarded
	EventEnemyDestroyed

	// EventBossHit signals a projectile hit on a boss that survived
	// Value: remaining health
	EventBossHit

	// EventBossDestroyed signals a boss whose health reached zero
	// Value: score awarded
	EventBossDestroyed

	// EventInstanceLost signals enemy or boss contact with the formation
	// Value: instances removed
	EventInstanceLost

	// EventPowerupCollected signals formation contact with a powerup
	// Value: the powerup's signed delta
	EventPowerupCollected

	// EventGameOver signals the formation reached zero instances
	// Value: final score
	EventGameOver

	// EventRestart signals that the run was reset
	EventRestart
)

var eventNames = map[EventType]string{
	EventShot:             "Shot",
	EventEnemyDestroyed:   "EnemyDestroyed",
	EventBossHit:          "BossHit",
	EventBossDestroyed:    "BossDestroyed",
	EventInstanceLost:     "InstanceLost",
	EventPowerupCollected: "PowerupCollected",
	EventGameOver:         "GameOver",
	EventRestart:          "Restart",
}

// String returns a human-readable name for the event type
func (e EventType) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

// Event is a single gameplay outcome
type Event struct {
	Type  EventType
	Frame int
	Value int
}
