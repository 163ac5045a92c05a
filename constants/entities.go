// @focus: #constants { entities }
package constants

// --- Player Formation ---
const (
	// PlayerWidth is the base sprite width of one formation instance
	PlayerWidth = 40

	// PlayerHeight is the base sprite height of one formation instance
	PlayerHeight = 40

	// PlayerBottomOffset is the distance of the formation anchor above the screen bottom
	PlayerBottomOffset = 80

	// PlayerSpeed is the horizontal anchor movement per move command
	PlayerSpeed = 5

	// PlayerStartInstances is the formation size at the start of a run
	PlayerStartInstances = 1

	// PlayerCircleRadius is the outer ring radius of the formation
	PlayerCircleRadius = RoadWidthBottom / 6

	// FormationRingSpacing is the circumference share per instance, in instance widths
	FormationRingSpacing = 1.5

	// FormationFlatten squashes ring vertical offsets to match the oblique camera
	FormationFlatten = 0.3
)

// --- Projectile ---
const (
	ProjectileWidth  = 8
	ProjectileHeight = 15

	// ProjectileSpeed is the depth decrease per tick
	ProjectileSpeed = 7
)

// --- Enemy ---
const (
	EnemyWidth  = 40
	EnemyHeight = 40

	// EnemySpeed is the base depth increase per tick before perspective speed-up
	EnemySpeed = 1

	// EnemyHomingScale is the fraction of the lane-space delta corrected per tick
	EnemyHomingScale = 0.01
)

// --- Boss ---
const (
	// BossSizeMultiplier scales the enemy base size for bosses
	BossSizeMultiplier = 4

	// BossSpeedFactor slows bosses relative to regular enemies
	BossSpeedFactor = 0.7

	// BossHomingScale is the slower turning rate of bosses
	BossHomingScale = 0.005

	// BossHealthMin and BossHealthMax bound the random spawn health (inclusive)
	BossHealthMin = 10
	BossHealthMax = 100
)

// --- Powerup ---
const (
	PowerupWidth  = 50
	PowerupHeight = 50

	// PowerupSpeed is the base depth increase per tick
	PowerupSpeed = 2

	// PowerupValueMin and PowerupValueMax bound the formation delta (inclusive)
	PowerupValueMin = -5
	PowerupValueMax = 5

	// PowerupFlashPeriod is the number of ticks the value stays visible or hidden
	PowerupFlashPeriod = 10
)
