package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // timings exactly as loaded
)

// ParsePreset validates a preset name. The empty string keeps the
// configured timings untouched.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// ApplyPreset scales the enemy pacing for a difficulty preset.
// Normal, fixed and the empty preset leave the config as loaded.
func ApplyPreset(cfg *InvaderConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.EnemyTickMS = cfg.Timing.EnemyTickMS * 3 / 2
		cfg.Timing.RespawnDelayMS = cfg.Timing.RespawnDelayMS * 3 / 2
	case DifficultyHard:
		cfg.Timing.EnemyTickMS = max(cfg.Timing.EnemyTickMS*2/3, 1)
		cfg.Timing.RespawnDelayMS = cfg.Timing.RespawnDelayMS / 2
	}
}
