package engine

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/road-fighter/constants"
	"github.com/lixenwraith/road-fighter/vmath"
)

// ErrInvalidConfig is returned when a configuration describes degenerate geometry or ranges
var ErrInvalidConfig = errors.New("invalid config")

// Config holds every tunable of a run; fixed at simulation construction
type Config struct {
	Seed int64 `toml:"seed"`

	Screen     ScreenConfig     `toml:"screen"`
	Player     PlayerConfig     `toml:"player"`
	Projectile ProjectileConfig `toml:"projectile"`
	Enemy      EnemyConfig      `toml:"enemy"`
	Boss       BossConfig       `toml:"boss"`
	Powerup    PowerupConfig    `toml:"powerup"`
	Spawn      SpawnConfig      `toml:"spawn"`
	Combat     CombatConfig     `toml:"combat"`
}

// ScreenConfig describes the logical play field and road perspective
type ScreenConfig struct {
	Width           float64 `toml:"width"`
	Height          float64 `toml:"height"`
	HorizonY        float64 `toml:"horizon_y"`
	RoadWidthBottom float64 `toml:"road_width_bottom"`
	RoadWidthTop    float64 `toml:"road_width_top"`
	BarrierWidth    float64 `toml:"barrier_width"`
	MinScale        float64 `toml:"min_scale"`
	MaxScale        float64 `toml:"max_scale"`
}

type PlayerConfig struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	BottomOffset   float64 `toml:"bottom_offset"`
	Speed          float64 `toml:"speed"`
	StartInstances int     `toml:"start_instances"`
	CircleRadius   float64 `toml:"circle_radius"`
}

type ProjectileConfig struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
	Speed  float64 `toml:"speed"`
}

type EnemyConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Speed       float64 `toml:"speed"`
	HomingScale float64 `toml:"homing_scale"`
}

type BossConfig struct {
	SizeMultiplier float64 `toml:"size_multiplier"`
	SpeedFactor    float64 `toml:"speed_factor"`
	HomingScale    float64 `toml:"homing_scale"`
	HealthMin      int     `toml:"health_min"`
	HealthMax      int     `toml:"health_max"`
}

type PowerupConfig struct {
	Width       float64 `toml:"width"`
	Height      float64 `toml:"height"`
	Speed       float64 `toml:"speed"`
	ValueMin    int     `toml:"value_min"`
	ValueMax    int     `toml:"value_max"`
	FlashPeriod int     `toml:"flash_period"`
}

// SpawnConfig controls wave cadence and composition, intervals in ticks
type SpawnConfig struct {
	EnemyInterval   int     `toml:"enemy_interval"`
	PowerupInterval int     `toml:"powerup_interval"`
	FrameWrap       int     `toml:"frame_wrap"`
	BossChance      float64 `toml:"boss_chance"`
	ClusterMin      int     `toml:"cluster_min"`
	ClusterMax      int     `toml:"cluster_max"`
	ClusterSpread   float64 `toml:"cluster_spread"`
	DepthJitter     float64 `toml:"depth_jitter"`
}

type CombatConfig struct {
	CollisionBuffer float64 `toml:"collision_buffer"`
	EnemyScore      int     `toml:"enemy_score"`
	BossScore       int     `toml:"boss_score"`
}

// DefaultConfig returns the stock tuning
func DefaultConfig() Config {
	return Config{
		Screen: ScreenConfig{
			Width:           constants.ScreenWidth,
			Height:          constants.ScreenHeight,
			HorizonY:        constants.HorizonY,
			RoadWidthBottom: constants.RoadWidthBottom,
			RoadWidthTop:    constants.RoadWidthTop,
			BarrierWidth:    constants.BarrierWidth,
			MinScale:        constants.MinScale,
			MaxScale:        constants.MaxScale,
		},
		Player: PlayerConfig{
			Width:          constants.PlayerWidth,
			Height:         constants.PlayerHeight,
			BottomOffset:   constants.PlayerBottomOffset,
			Speed:          constants.PlayerSpeed,
			StartInstances: constants.PlayerStartInstances,
			CircleRadius:   constants.PlayerCircleRadius,
		},
		Projectile: ProjectileConfig{
			Width:  constants.ProjectileWidth,
			Height: constants.ProjectileHeight,
			Speed:  constants.ProjectileSpeed,
		},
		Enemy: EnemyConfig{
			Width:       constants.EnemyWidth,
			Height:      constants.EnemyHeight,
			Speed:       constants.EnemySpeed,
			HomingScale: constants.EnemyHomingScale,
		},
		Boss: BossConfig{
			SizeMultiplier: constants.BossSizeMultiplier,
			SpeedFactor:    constants.BossSpeedFactor,
			HomingScale:    constants.BossHomingScale,
			HealthMin:      constants.BossHealthMin,
			HealthMax:      constants.BossHealthMax,
		},
		Powerup: PowerupConfig{
			Width:       constants.PowerupWidth,
			Height:      constants.PowerupHeight,
			Speed:       constants.PowerupSpeed,
			ValueMin:    constants.PowerupValueMin,
			ValueMax:    constants.PowerupValueMax,
			FlashPeriod: constants.PowerupFlashPeriod,
		},
		Spawn: SpawnConfig{
			EnemyInterval:   constants.EnemySpawnInterval,
			PowerupInterval: constants.PowerupSpawnInterval,
			FrameWrap:       constants.FrameCounterWrap,
			BossChance:      constants.BossSpawnChance,
			ClusterMin:      constants.ClusterSizeMin,
			ClusterMax:      constants.ClusterSizeMax,
			ClusterSpread:   constants.ClusterSpread,
			DepthJitter:     constants.ClusterDepthJitter,
		},
		Combat: CombatConfig{
			CollisionBuffer: constants.CollisionBuffer,
			EnemyScore:      constants.EnemyScore,
			BossScore:       constants.BossScore,
		},
	}
}

// LoadConfig decodes a TOML file over the defaults and validates the result
// Keys absent from the file keep their default value
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%w: unknown key %q in %s", ErrInvalidConfig, undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects configurations that would divide by zero or sample empty ranges
func (c Config) Validate() error {
	s := c.Screen
	switch {
	case s.Width <= 0:
		return fmt.Errorf("%w: screen width must be positive", ErrInvalidConfig)
	case s.HorizonY >= s.Height:
		return fmt.Errorf("%w: horizon %.1f must be above screen bottom %.1f", ErrInvalidConfig, s.HorizonY, s.Height)
	case s.RoadWidthBottom <= 0 || s.RoadWidthTop <= 0:
		return fmt.Errorf("%w: road widths must be positive", ErrInvalidConfig)
	case s.MinScale <= 0 || s.MinScale > s.MaxScale:
		return fmt.Errorf("%w: scale bounds [%.2f, %.2f] invalid", ErrInvalidConfig, s.MinScale, s.MaxScale)
	}

	switch {
	case c.Player.Width <= 0 || c.Player.Height <= 0:
		return fmt.Errorf("%w: player size must be positive", ErrInvalidConfig)
	case c.Player.StartInstances < 1:
		return fmt.Errorf("%w: start instances must be at least 1", ErrInvalidConfig)
	case c.Player.BottomOffset < 0 || c.Player.BottomOffset >= s.Height-s.HorizonY:
		return fmt.Errorf("%w: player bottom offset %.1f outside road", ErrInvalidConfig, c.Player.BottomOffset)
	case c.Projectile.Speed <= 0 || c.Enemy.Speed <= 0 || c.Powerup.Speed <= 0:
		return fmt.Errorf("%w: entity speeds must be positive", ErrInvalidConfig)
	case c.Boss.SpeedFactor <= 0 || c.Boss.SizeMultiplier <= 0:
		return fmt.Errorf("%w: boss speed factor and size must be positive", ErrInvalidConfig)
	case c.Boss.HealthMin < 1 || c.Boss.HealthMin > c.Boss.HealthMax:
		return fmt.Errorf("%w: boss health range [%d, %d] invalid", ErrInvalidConfig, c.Boss.HealthMin, c.Boss.HealthMax)
	case c.Powerup.ValueMin >= c.Powerup.ValueMax:
		return fmt.Errorf("%w: powerup value range [%d, %d] needs two distinct values", ErrInvalidConfig, c.Powerup.ValueMin, c.Powerup.ValueMax)
	case c.Powerup.FlashPeriod < 0:
		return fmt.Errorf("%w: flash period must not be negative", ErrInvalidConfig)
	}

	sp := c.Spawn
	switch {
	case sp.EnemyInterval <= 0 || sp.PowerupInterval <= 0 || sp.FrameWrap <= 0:
		return fmt.Errorf("%w: spawn intervals must be positive", ErrInvalidConfig)
	case sp.BossChance < 0 || sp.BossChance > 1:
		return fmt.Errorf("%w: boss chance %.3f outside [0, 1]", ErrInvalidConfig, sp.BossChance)
	case sp.ClusterMin < 1 || sp.ClusterMin > sp.ClusterMax:
		return fmt.Errorf("%w: cluster size range [%d, %d] invalid", ErrInvalidConfig, sp.ClusterMin, sp.ClusterMax)
	case sp.ClusterSpread < 0 || sp.DepthJitter < 0:
		return fmt.Errorf("%w: cluster spread and depth jitter must not be negative", ErrInvalidConfig)
	}

	if c.Combat.CollisionBuffer < 0 {
		return fmt.Errorf("%w: collision buffer must not be negative", ErrInvalidConfig)
	}
	return nil
}

// Projection builds the perspective model for this configuration
func (c Config) Projection() vmath.Projection {
	return vmath.Projection{
		ScreenWidth:     c.Screen.Width,
		ScreenHeight:    c.Screen.Height,
		HorizonY:        c.Screen.HorizonY,
		RoadWidthBottom: c.Screen.RoadWidthBottom,
		RoadWidthTop:    c.Screen.RoadWidthTop,
		MinScale:        c.Screen.MinScale,
		MaxScale:        c.Screen.MaxScale,
	}
}
