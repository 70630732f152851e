// Package config provides YAML-based game configuration loading and
// difficulty presets for the invader game.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// InvaderConfig contains all tunable parameters of the game.
type InvaderConfig struct {
	Timing      TimingConfig     `yaml:"timing"`
	Player      PlayerConfig     `yaml:"player"`
	Enemy       EnemyConfig      `yaml:"enemy"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
}

// TimingConfig holds the wall-clock pacing of the enemy.
type TimingConfig struct {
	EnemyTickMS    int `yaml:"enemy_tick_ms"`    // Enemy AI gate interval
	RespawnDelayMS int `yaml:"respawn_delay_ms"` // Absent time before a new enemy
	FlashStepMS    int `yaml:"flash_step_ms"`    // Duration of each death-flash phase
}

// PlayerConfig defines the player sprite.
type PlayerConfig struct {
	Glyph        string `yaml:"glyph"`
	Width        int    `yaml:"width"`
	Height       int    `yaml:"height"`
	BottomOffset int    `yaml:"bottom_offset"` // Start row is lines - bottom_offset
}

// EnemyConfig defines the enemy sprite and its movement bounds.
type EnemyConfig struct {
	Glyph       string `yaml:"glyph"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	TopMargin   int    `yaml:"top_margin"`   // Lowest row the enemy may occupy
	SideMargin  int    `yaml:"side_margin"`  // Columns kept free at each side
	FloorOffset int    `yaml:"floor_offset"` // Rows kept free below the enemy
}

// ProjectileConfig defines projectile limits.
type ProjectileConfig struct {
	Capacity int `yaml:"capacity"` // Max player projectiles in flight
}

// EnemyTick returns the enemy gate interval.
func (c InvaderConfig) EnemyTick() time.Duration {
	return time.Duration(c.Timing.EnemyTickMS) * time.Millisecond
}

// RespawnDelay returns how long the enemy stays absent after destruction.
func (c InvaderConfig) RespawnDelay() time.Duration {
	return time.Duration(c.Timing.RespawnDelayMS) * time.Millisecond
}

// FlashStep returns the duration of one death-flash phase.
func (c InvaderConfig) FlashStep() time.Duration {
	return time.Duration(c.Timing.FlashStepMS) * time.Millisecond
}

// Validate reports every field that would break the simulation.
func (c InvaderConfig) Validate() error {
	var errs []error

	if c.Timing.EnemyTickMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.enemy_tick_ms must be positive, got %d", c.Timing.EnemyTickMS))
	}
	if c.Timing.RespawnDelayMS < 0 {
		errs = append(errs, fmt.Errorf("timing.respawn_delay_ms must not be negative, got %d", c.Timing.RespawnDelayMS))
	}
	if c.Timing.FlashStepMS < 0 {
		errs = append(errs, fmt.Errorf("timing.flash_step_ms must not be negative, got %d", c.Timing.FlashStepMS))
	}
	errs = append(errs, validateSprite("player", c.Player.Glyph, c.Player.Width, c.Player.Height)...)
	errs = append(errs, validateSprite("enemy", c.Enemy.Glyph, c.Enemy.Width, c.Enemy.Height)...)
	if c.Player.BottomOffset < c.Player.Height {
		errs = append(errs, fmt.Errorf("player.bottom_offset (%d) must be at least player.height (%d)", c.Player.BottomOffset, c.Player.Height))
	}
	if c.Enemy.TopMargin < 0 || c.Enemy.SideMargin < 0 || c.Enemy.FloorOffset < 0 {
		errs = append(errs, errors.New("enemy margins must not be negative"))
	}
	if c.Projectiles.Capacity < 1 {
		errs = append(errs, fmt.Errorf("projectiles.capacity must be at least 1, got %d", c.Projectiles.Capacity))
	}

	return errors.Join(errs...)
}

func validateSprite(name, glyph string, width, height int) []error {
	var errs []error
	if width < 1 || height < 1 {
		errs = append(errs, fmt.Errorf("%s size must be at least 1x1, got %dx%d", name, width, height))
		return errs
	}
	lines := strings.Split(glyph, "\n")
	if len(lines) > height {
		errs = append(errs, fmt.Errorf("%s glyph has %d lines, height is %d", name, len(lines), height))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n > width {
			errs = append(errs, fmt.Errorf("%s glyph line %d is %d wide, width is %d", name, i+1, n, width))
		}
	}
	return errs
}
