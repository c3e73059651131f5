package core

import (
	"math"
	"time"
)

// Capabilities selects the feature layers of the engine.
type Capabilities struct {
	GoldenApple bool // Golden apple power-up with a timed effect window
	Tunnels     bool // Teleport tunnel pair from TunnelFromLevel
	WormGrowth  bool // Worms pursue and eat the apple; apple respawns after a delay
	Timer       bool // Session clock shown to the player and stored with records
}

// AllCapabilities enables every feature layer.
func AllCapabilities() Capabilities {
	return Capabilities{GoldenApple: true, Tunnels: true, WormGrowth: true, Timer: true}
}

// Rules holds the immutable parameters of one engine instance.
type Rules struct {
	Grid           Grid
	StartSnake     []Cell
	StartDirection Direction

	// LevelTargets is the apples-per-level schedule. Its length is the max level.
	LevelTargets []int

	BaseTick    time.Duration
	MinTick     time.Duration
	SpeedFactor float64 // Per-level multiplier applied to BaseTick

	WormMove          time.Duration
	WormInitialLength int
	GreedyChance      float64

	AppleWander  []time.Duration // Base wander interval per level
	WanderJitter float64         // Fraction of the base re-drawn on every firing
	GoldenWander time.Duration
	RespawnMin   time.Duration
	RespawnMax   time.Duration

	GoldenFromLevel int
	EffectDuration  time.Duration

	TunnelFromLevel   int
	TunnelMinDistance float64
	TunnelEdgeBuffer  int
	TunnelAttempts    int

	Caps Capabilities
}

// DefaultRules returns the stock rule set with every capability enabled.
func DefaultRules() Rules {
	return Rules{
		Grid:              Grid{Cols: 25, Rows: 20},
		StartSnake:        []Cell{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		StartDirection:    DirRight,
		LevelTargets:      []int{3, 3, 3, 3, 3},
		BaseTick:          120 * time.Millisecond,
		MinTick:           40 * time.Millisecond,
		SpeedFactor:       0.95,
		WormMove:          800 * time.Millisecond,
		WormInitialLength: 2,
		GreedyChance:      0.9,
		AppleWander: []time.Duration{
			2000 * time.Millisecond,
			1500 * time.Millisecond,
			1000 * time.Millisecond,
			500 * time.Millisecond,
			200 * time.Millisecond,
		},
		WanderJitter:      0.25,
		GoldenWander:      700 * time.Millisecond,
		RespawnMin:        300 * time.Millisecond,
		RespawnMax:        1200 * time.Millisecond,
		GoldenFromLevel:   2,
		EffectDuration:    5 * time.Second,
		TunnelFromLevel:   3,
		TunnelMinDistance: 8,
		TunnelEdgeBuffer:  2,
		TunnelAttempts:    500,
		Caps:              AllCapabilities(),
	}
}

// MaxLevel returns the highest configured level.
func (r Rules) MaxLevel() int {
	return max(1, len(r.LevelTargets))
}

// LevelTarget returns the apple target for a 1-based level.
// Levels past the schedule reuse the last entry.
func (r Rules) LevelTarget(level int) int {
	if len(r.LevelTargets) == 0 {
		return 1
	}
	idx := min(max(level-1, 0), len(r.LevelTargets)-1)
	return r.LevelTargets[idx]
}

// TickInterval returns the snake move interval for a level.
// The interval doubles while the golden-apple effect window is active.
func (r Rules) TickInterval(level int, effectActive bool) time.Duration {
	speedup := math.Pow(r.SpeedFactor, float64(max(0, level-1)))
	ms := math.Round(float64(r.BaseTick.Milliseconds()) * speedup)
	d := max(time.Duration(ms)*time.Millisecond, r.MinTick)
	if effectActive {
		d *= 2
	}
	return d
}

// AppleWanderInterval returns the next apple wander delay for a level,
// with jitter drawn from rng.
func (r Rules) AppleWanderInterval(level int, rng Rand) time.Duration {
	if len(r.AppleWander) == 0 {
		return 0
	}
	idx := min(max(level-1, 0), len(r.AppleWander)-1)
	base := float64(r.AppleWander[idx])
	jitter := r.WanderJitter * (2*rng() - 1)
	return time.Duration(base * (1 + jitter))
}

// RespawnDelay returns a random apple respawn delay in [RespawnMin, RespawnMax].
func (r Rules) RespawnDelay(rng Rand) time.Duration {
	if r.RespawnMax <= r.RespawnMin {
		return r.RespawnMin
	}
	span := float64(r.RespawnMax - r.RespawnMin)
	return r.RespawnMin + time.Duration(rng()*span)
}

// delayedRespawn reports whether an eaten apple is refilled by the host's
// respawn timer instead of inside the transition.
func (r Rules) delayedRespawn() bool {
	return r.Caps.WormGrowth
}

// tunnelsAt reports whether a level carries a tunnel pair.
func (r Rules) tunnelsAt(level int) bool {
	return r.Caps.Tunnels && level >= r.TunnelFromLevel
}

// goldenAt reports whether a level may offer a golden apple.
func (r Rules) goldenAt(level int) bool {
	return r.Caps.GoldenApple && level >= r.GoldenFromLevel
}
