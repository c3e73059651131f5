// Package config provides YAML-based game configuration loading and
// difficulty management for the snake games.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all configuration for the snake variants.
type SnakeConfig struct {
	Grid       SnakeGrid        `yaml:"grid"`
	Timing     SnakeTiming      `yaml:"timing"`
	Levels     SnakeLevels      `yaml:"levels"`
	Worms      SnakeWorms       `yaml:"worms"`
	Tunnels    SnakeTunnels     `yaml:"tunnels"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// SnakeGrid defines the board size in cells.
type SnakeGrid struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// SnakeTiming defines every timer period, in milliseconds.
type SnakeTiming struct {
	BaseTickMS     int     `yaml:"base_tick_ms"`
	MinTickMS      int     `yaml:"min_tick_ms"`
	SpeedFactor    float64 `yaml:"speed_factor"` // Per-level multiplier on the move tick
	WormMoveMS     int     `yaml:"worm_move_ms"`
	AppleWanderMS  []int   `yaml:"apple_wander_ms"` // Base wander period per level
	WanderJitter   float64 `yaml:"wander_jitter"`
	GoldenWanderMS int     `yaml:"golden_wander_ms"`
	RespawnMinMS   int     `yaml:"respawn_min_ms"`
	RespawnMaxMS   int     `yaml:"respawn_max_ms"`
	EffectMS       int     `yaml:"effect_ms"`
}

// SnakeLevels defines the level schedule.
type SnakeLevels struct {
	Targets         []int `yaml:"targets"` // Apples per level; length is the max level
	GoldenFromLevel int   `yaml:"golden_from_level"`
	TunnelFromLevel int   `yaml:"tunnel_from_level"`
}

// SnakeWorms defines worm parameters.
type SnakeWorms struct {
	InitialLength int     `yaml:"initial_length"`
	GreedyChance  float64 `yaml:"greedy_chance"`
}

// SnakeTunnels defines tunnel placement parameters.
type SnakeTunnels struct {
	MinDistance float64 `yaml:"min_distance"`
	EdgeBuffer  int     `yaml:"edge_buffer"`
	Attempts    int     `yaml:"attempts"`
}

// Millis converts a millisecond count from the config into a duration.
func Millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// Validate reports the first setting that would make the game unplayable.
func (c SnakeConfig) Validate() error {
	switch {
	case c.Grid.Cols < 8 || c.Grid.Rows < 8:
		return fmt.Errorf("config: grid %dx%d is smaller than 8x8", c.Grid.Cols, c.Grid.Rows)
	case len(c.Levels.Targets) == 0:
		return fmt.Errorf("config: levels.targets is empty")
	case c.Timing.BaseTickMS <= 0 || c.Timing.MinTickMS <= 0:
		return fmt.Errorf("config: tick periods must be positive")
	case c.Timing.WormMoveMS <= 0 || c.Timing.GoldenWanderMS <= 0:
		return fmt.Errorf("config: worm and golden wander periods must be positive")
	case len(c.Timing.AppleWanderMS) == 0:
		return fmt.Errorf("config: timing.apple_wander_ms is empty")
	case c.Timing.RespawnMaxMS < c.Timing.RespawnMinMS:
		return fmt.Errorf("config: respawn_max_ms %d below respawn_min_ms %d",
			c.Timing.RespawnMaxMS, c.Timing.RespawnMinMS)
	case c.Worms.InitialLength < 1:
		return fmt.Errorf("config: worms.initial_length must be at least 1")
	}
	for i, t := range c.Levels.Targets {
		if t <= 0 {
			return fmt.Errorf("config: levels.targets[%d] must be positive", i)
		}
	}
	return nil
}

// DifficultyConfig defines how a preset scales the game.
type DifficultyConfig struct {
	Enabled      bool          `yaml:"enabled"`       // Per-level speedup on/off
	InitialLevel float64       `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Scaling      ScalingConfig `yaml:"scaling"`
}

// ScalingConfig defines the magnitude of difficulty changes at level 1.0.
type ScalingConfig struct {
	TickReduction     float64 `yaml:"tick_reduction"`      // Fraction removed from the base move tick
	WormTickReduction float64 `yaml:"worm_tick_reduction"` // Fraction removed from the worm tick
	GreedyBoost       float64 `yaml:"greedy_boost"`        // Added to the worms' greedy chance
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParseDifficulty validates a preset name. The empty string means normal.
func ParseDifficulty(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables per-level speedup.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
