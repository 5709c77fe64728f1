package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{
			Count:    20,
			CellSize: 20,
			StartX:   8,
			StartY:   8,
			FoodX:    5,
			FoodY:    5,
		},
		Timing: SnakeTiming{
			BaseCadenceMS: 100,
			MinCadenceMS:  50,
			StepMS:        5,
			ScoreStep:     50,
			FrameMS:       16,
			SpeedExpiry:   SpeedExpiryScore,
		},
		Spawn: SnakeSpawn{
			FoodPoints:     10,
			PowerUpChance:  0.10,
			ObstacleChance: 0.05,
			MaxObstacles:   5,
			SpawnAttempts:  64,
		},
		Effects: SnakeEffects{
			SpeedTicks:      200,
			SpeedCadenceMS:  50,
			InvincibleTicks: 200,
		},
		Explosion: SnakeExplosion{
			ParticlesPerCell: 5,
			Lifetime:         30,
			Speed:            0.5,
		},
		Difficulty: DifficultyConfig{
			Enabled: true,
		},
	}
}

// DefaultSnakeYAML returns a copy of the embedded default config file.
func DefaultSnakeYAML() []byte {
	return append([]byte(nil), defaultSnakeYAML...)
}
