// @focus: #constants { core }
package constants

import "time"

// Game Loop Timing
const (
	// TicksPerSecond is the fixed simulation rate; one tick advances every entity once
	TicksPerSecond = 60

	// FrameUpdateInterval is the pacer interval for one simulation tick plus render (~60 FPS)
	FrameUpdateInterval = time.Second / TicksPerSecond

	// MaxCatchUpFrames caps how many ticks a single pacer wakeup may run after a stall
	MaxCatchUpFrames = 4

	// FrameCounterWrap resets the spawn frame counter once a minute to keep it bounded
	FrameCounterWrap = 3600
)

// System Execution Priorities (lower runs first)
const (
	PrioritySpawn      = 10
	PriorityProjectile = 20
	PriorityEnemy      = 30
	PriorityBoss       = 40
	PriorityPowerup    = 50
	PriorityCleanup    = 900 // Last: sweeps tombstoned entities
)

// Event buffer sizing
const (
	// EventBufferCapacity is the initial capacity of the per-tick event buffer
	EventBufferCapacity = 64
)
