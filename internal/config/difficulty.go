package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplySnakePreset modifies the config based on a difficulty preset.
// Normal leaves the loaded values untouched.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	cfg.Difficulty.Enabled = !IsFixedPreset(preset)

	switch preset {
	case DifficultyEasy:
		cfg.Timing.BaseCadenceMS = 130
		cfg.Timing.MinCadenceMS = 70
		cfg.Spawn.ObstacleChance = 0.02
		cfg.Spawn.MaxObstacles = 3
	case DifficultyHard:
		cfg.Timing.BaseCadenceMS = 80
		cfg.Timing.MinCadenceMS = 40
		cfg.Spawn.ObstacleChance = 0.08
		cfg.Spawn.MaxObstacles = 8
	}
}
