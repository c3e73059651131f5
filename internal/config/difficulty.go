package config

import (
	"math"
	"time"
)

// DifficultyManager derives effective game parameters from the difficulty
// level. Normal difficulty leaves the configured values untouched; easier
// levels slow the game down and harder ones speed it up.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables per-level speedup.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether the move tick speeds up with each level.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled
}

// Level returns the difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level() float64 {
	return d.initialLevel
}

// offset is the signed distance from normal difficulty.
func (d *DifficultyManager) offset() float64 {
	return d.initialLevel - InitialLevelForPreset(DifficultyNormal)
}

// TickPeriod scales the base move tick.
func (d *DifficultyManager) TickPeriod(baseMS int) time.Duration {
	return scalePeriod(baseMS, 1.0-d.offset()*d.cfg.Scaling.TickReduction)
}

// WormPeriod scales the worm tick.
func (d *DifficultyManager) WormPeriod(baseMS int) time.Duration {
	return scalePeriod(baseMS, 1.0-d.offset()*d.cfg.Scaling.WormTickReduction)
}

// GreedyChance shifts the worms' pursuit probability, kept within [0, 1].
func (d *DifficultyManager) GreedyChance(base float64) float64 {
	return clampF(base+d.offset()*d.cfg.Scaling.GreedyBoost, 0.0, 1.0)
}

// SpeedFactor returns the per-level move tick multiplier.
// With progression disabled every level runs at the base tick.
func (d *DifficultyManager) SpeedFactor(base float64) float64 {
	if !d.cfg.Enabled {
		return 1.0
	}
	return base
}

func scalePeriod(baseMS int, factor float64) time.Duration {
	ms := math.Round(float64(baseMS) * math.Max(factor, 0.1))
	return time.Duration(ms) * time.Millisecond
}

// clampF restricts a float64 to [lo, hi].
func clampF(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
