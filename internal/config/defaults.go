package config

import (
	_ "embed"
)

//go:embed defaults/invader.yaml
var defaultInvaderYAML []byte

// DefaultInvaderConfig returns the built-in configuration. It mirrors
// defaults/invader.yaml and is used when the embedded file cannot be parsed.
func DefaultInvaderConfig() InvaderConfig {
	return InvaderConfig{
		Timing: TimingConfig{
			EnemyTickMS:    150,
			RespawnDelayMS: 2000,
			FlashStepMS:    50,
		},
		Player: PlayerConfig{
			Glyph:        "   ^\n  / \\\n<|___|>",
			Width:        7,
			Height:       3,
			BottomOffset: 5,
		},
		Enemy: EnemyConfig{
			Glyph:       "~\\o/~\n .v.",
			Width:       5,
			Height:      2,
			TopMargin:   1,
			SideMargin:  1,
			FloorOffset: 6,
		},
		Projectiles: ProjectileConfig{
			Capacity: 8,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultInvaderYAML
}
