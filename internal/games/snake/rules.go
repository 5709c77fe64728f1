package snake

import (
	"sync"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
)

// Features selects which mechanics a variant enables.
type Features struct {
	Obstacles bool
	PowerUps  bool
	Explosion bool
}

// Rules are the resolved, immutable parameters of a session.
type Rules struct {
	GridCount int
	CellSize  int
	Start     Cell
	StartFood Cell

	BaseCadence   time.Duration
	MinCadence    time.Duration
	CadenceStep   time.Duration
	ScoreStep     int
	Progressive   bool // Score-based speed-up enabled
	ExpiryToBase  bool // Speed boost expiry restores BaseCadence instead of the score cadence
	FrameInterval time.Duration

	FoodPoints     int
	PowerUpChance  float64
	ObstacleChance float64
	MaxObstacles   int
	SpawnAttempts  int

	SpeedTicks      int
	SpeedCadence    time.Duration
	InvincibleTicks int

	ParticlesPerCell int
	ParticleLife     int
	ParticleSpeed    float64

	Features Features
}

// AllFeatures enables every mechanic.
var AllFeatures = Features{Obstacles: true, PowerUps: true, Explosion: true}

// RulesFromConfig resolves a loaded configuration for a variant.
func RulesFromConfig(cfg config.SnakeConfig, f Features) Rules {
	ms := func(v int) time.Duration { return time.Duration(v) * time.Millisecond }

	return Rules{
		GridCount: cfg.Grid.Count,
		CellSize:  cfg.Grid.CellSize,
		Start:     Cell{X: cfg.Grid.StartX, Y: cfg.Grid.StartY},
		StartFood: Cell{X: cfg.Grid.FoodX, Y: cfg.Grid.FoodY},

		BaseCadence:   ms(cfg.Timing.BaseCadenceMS),
		MinCadence:    ms(cfg.Timing.MinCadenceMS),
		CadenceStep:   ms(cfg.Timing.StepMS),
		ScoreStep:     cfg.Timing.ScoreStep,
		Progressive:   cfg.Difficulty.Enabled,
		ExpiryToBase:  cfg.Timing.SpeedExpiry == config.SpeedExpiryBase,
		FrameInterval: ms(cfg.Timing.FrameMS),

		FoodPoints:     cfg.Spawn.FoodPoints,
		PowerUpChance:  cfg.Spawn.PowerUpChance,
		ObstacleChance: cfg.Spawn.ObstacleChance,
		MaxObstacles:   cfg.Spawn.MaxObstacles,
		SpawnAttempts:  cfg.Spawn.SpawnAttempts,

		SpeedTicks:      cfg.Effects.SpeedTicks,
		SpeedCadence:    ms(cfg.Effects.SpeedCadenceMS),
		InvincibleTicks: cfg.Effects.InvincibleTicks,

		ParticlesPerCell: cfg.Explosion.ParticlesPerCell,
		ParticleLife:     cfg.Explosion.Lifetime,
		ParticleSpeed:    cfg.Explosion.Speed,

		Features: f,
	}
}

// DefaultRules returns the default configuration with every mechanic enabled.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultSnakeConfig(), AllFeatures)
}

// ScoreCadence is the tick delay for a score: the base cadence shortened by
// one step per ScoreStep points, never below MinCadence.
func (r Rules) ScoreCadence(score int) time.Duration {
	if !r.Progressive || r.ScoreStep <= 0 {
		return r.BaseCadence
	}
	c := r.BaseCadence - time.Duration(score/r.ScoreStep)*r.CadenceStep
	return max(c, r.MinCadence)
}

// InBounds reports whether c lies on the grid.
func (r Rules) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < r.GridCount && c.Y >= 0 && c.Y < r.GridCount
}

// Package-level configuration shared by every game instance, set once by the CLI.
var (
	settingsMu sync.RWMutex
	settings   = config.DefaultSnakeConfig()
)

// SetConfig replaces the configuration used by games created afterwards.
func SetConfig(cfg config.SnakeConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// CurrentConfig returns the active configuration.
func CurrentConfig() config.SnakeConfig {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// PresetConfig returns the active configuration adjusted for a difficulty
// preset.
func PresetConfig(preset config.DifficultyPreset) config.SnakeConfig {
	cfg := CurrentConfig()
	config.ApplySnakePreset(&cfg, preset)
	return cfg
}
