// @focus: #constants { gameplay }
package constants

// Spawn cadence, in ticks
const (
	// EnemySpawnInterval is the tick period of enemy waves
	EnemySpawnInterval = 60

	// PowerupSpawnInterval is the tick period of powerup pairs
	PowerupSpawnInterval = 300
)

// Enemy wave composition
const (
	// BossSpawnChance is the probability that a wave is a single boss
	BossSpawnChance = 0.05

	// ClusterSizeMin and ClusterSizeMax bound enemies per cluster (inclusive)
	ClusterSizeMin = 3
	ClusterSizeMax = 12

	// ClusterSpread is the lane-space half width of a cluster
	ClusterSpread = 0.2

	// ClusterDepthJitter is the half range of the spawn depth variation
	ClusterDepthJitter = 20
)

// Powerup pair placement, in lane space
const (
	// PowerupPairBaseRange is the exclusive upper bound of the pair base position
	PowerupPairBaseRange = 0.5

	// PowerupQuarterCenter centers a powerup in its quarter of the road
	PowerupQuarterCenter = 0.125

	// PowerupQuarterWidth separates the two powerups of a pair
	PowerupQuarterWidth = 0.25
)

// Combat
const (
	// CollisionBuffer widens every box on all sides for forgiving hits
	CollisionBuffer = 5

	// EnemyScore is awarded for destroying a regular enemy
	EnemyScore = 10

	// BossScore is awarded once when a boss reaches zero health
	BossScore = 50
)
