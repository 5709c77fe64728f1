// Package config provides YAML-based game configuration loading and
// difficulty presets for the snake game.
package config

import (
	"errors"
	"fmt"
)

// SnakeConfig contains all configuration for the Snake game.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Spawn      SnakeSpawn       `yaml:"spawn"`
	Effects    SnakeEffects     `yaml:"effects"`
	Explosion  SnakeExplosion   `yaml:"explosion"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the play field and the starting layout.
type SnakeGrid struct {
	Count    int `yaml:"count"`
	CellSize int `yaml:"cell_size"`
	StartX   int `yaml:"start_x"`
	StartY   int `yaml:"start_y"`
	FoodX    int `yaml:"food_x"`
	FoodY    int `yaml:"food_y"`
}

// SnakeTiming defines tick cadence parameters in milliseconds.
type SnakeTiming struct {
	BaseCadenceMS int    `yaml:"base_cadence_ms"`
	MinCadenceMS  int    `yaml:"min_cadence_ms"`
	StepMS        int    `yaml:"step_ms"`
	ScoreStep     int    `yaml:"score_step"`
	FrameMS       int    `yaml:"frame_ms"`
	SpeedExpiry   string `yaml:"speed_expiry"`
}

// Speed expiry policies.
const (
	SpeedExpiryScore = "score"
	SpeedExpiryBase  = "base"
)

// SnakeSpawn defines entity spawning parameters.
type SnakeSpawn struct {
	FoodPoints     int     `yaml:"food_points"`
	PowerUpChance  float64 `yaml:"powerup_chance"`
	ObstacleChance float64 `yaml:"obstacle_chance"`
	MaxObstacles   int     `yaml:"max_obstacles"`
	SpawnAttempts  int     `yaml:"spawn_attempts"`
}

// SnakeEffects defines power-up durations in ticks.
type SnakeEffects struct {
	SpeedTicks      int `yaml:"speed_ticks"`
	SpeedCadenceMS  int `yaml:"speed_cadence_ms"`
	InvincibleTicks int `yaml:"invincible_ticks"`
}

// SnakeExplosion defines the death animation.
type SnakeExplosion struct {
	ParticlesPerCell int     `yaml:"particles_per_cell"`
	Lifetime         int     `yaml:"lifetime"`
	Speed            float64 `yaml:"speed"`
}

// DifficultyConfig toggles score-based progression.
type DifficultyConfig struct {
	Enabled bool `yaml:"enabled"`
}

// Validate reports every invalid setting joined into one error.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Count <= 0 {
		errs = append(errs, fmt.Errorf("grid.count must be positive, got %d", c.Grid.Count))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if !inGrid(c.Grid.StartX, c.Grid.Count) || !inGrid(c.Grid.StartY, c.Grid.Count) {
		errs = append(errs, fmt.Errorf("grid start (%d,%d) is outside the grid", c.Grid.StartX, c.Grid.StartY))
	}
	if !inGrid(c.Grid.FoodX, c.Grid.Count) || !inGrid(c.Grid.FoodY, c.Grid.Count) {
		errs = append(errs, fmt.Errorf("grid food (%d,%d) is outside the grid", c.Grid.FoodX, c.Grid.FoodY))
	}
	if c.Timing.BaseCadenceMS <= 0 || c.Timing.MinCadenceMS <= 0 || c.Timing.FrameMS <= 0 {
		errs = append(errs, errors.New("timing cadences must be positive"))
	}
	if c.Timing.MinCadenceMS > c.Timing.BaseCadenceMS {
		errs = append(errs, fmt.Errorf("timing.min_cadence_ms %d exceeds base %d", c.Timing.MinCadenceMS, c.Timing.BaseCadenceMS))
	}
	if c.Timing.StepMS < 0 || c.Timing.ScoreStep < 0 {
		errs = append(errs, errors.New("timing step values must not be negative"))
	}
	switch c.Timing.SpeedExpiry {
	case SpeedExpiryScore, SpeedExpiryBase:
	default:
		errs = append(errs, fmt.Errorf("timing.speed_expiry must be %q or %q, got %q", SpeedExpiryScore, SpeedExpiryBase, c.Timing.SpeedExpiry))
	}
	if !isProbability(c.Spawn.PowerUpChance) || !isProbability(c.Spawn.ObstacleChance) {
		errs = append(errs, errors.New("spawn chances must be within [0, 1]"))
	}
	if c.Spawn.MaxObstacles < 0 || c.Spawn.SpawnAttempts <= 0 {
		errs = append(errs, errors.New("spawn.max_obstacles must be >= 0 and spawn.spawn_attempts > 0"))
	}
	if c.Effects.SpeedTicks <= 0 || c.Effects.InvincibleTicks <= 0 || c.Effects.SpeedCadenceMS <= 0 {
		errs = append(errs, errors.New("effect durations must be positive"))
	}
	if c.Explosion.ParticlesPerCell < 0 || c.Explosion.Lifetime <= 0 || c.Explosion.Speed < 0 {
		errs = append(errs, errors.New("explosion settings out of range"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func inGrid(v, count int) bool {
	return v >= 0 && v < count
}

func isProbability(p float64) bool {
	return p >= 0 && p <= 1
}
