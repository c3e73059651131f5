package core

import (
	"slices"
	"time"
)

// State is the complete game state. Transitions never mutate a State in
// place; they build a new one, copying any collection they change.
type State struct {
	Snake            []Cell // Head at index 0, never empty
	Direction        Direction
	PendingDirection Direction // Latched input for the next tick

	Apples      []Cell // Outstanding red apples
	ApplesEaten int    // Apples eaten in the current level
	Score       int    // Apples eaten over the whole session
	Level       int    // 1-based

	Worms   []Worm
	Tunnels []Cell // Exactly zero or two cells

	GoldenApple         Cell
	HasGoldenApple      bool
	GoldenUsedThisLevel bool
	EffectUntil         time.Duration // Effect window end on the session clock

	JustTeleported bool

	Running  bool
	Paused   bool
	GameOver bool
	Win      bool
}

// Head returns the snake's head cell.
func (s State) Head() Cell {
	return s.Snake[0]
}

// Tail returns the snake's last cell.
func (s State) Tail() Cell {
	return s.Snake[len(s.Snake)-1]
}

// Terminal reports whether the round has ended.
func (s State) Terminal() bool {
	return s.GameOver || s.Win
}

// Active reports whether ticks should advance the state.
func (s State) Active() bool {
	return s.Running && !s.Paused && !s.Terminal()
}

// EffectActive reports whether the golden-apple effect window covers now.
func (s State) EffectActive(now time.Duration) bool {
	return now < s.EffectUntil
}

// EffectRemaining returns how much of the effect window is left at now.
func (s State) EffectRemaining(now time.Duration) time.Duration {
	if !s.EffectActive(now) {
		return 0
	}
	return s.EffectUntil - now
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	s.Snake = slices.Clone(s.Snake)
	s.Apples = slices.Clone(s.Apples)
	s.Worms = slices.Clone(s.Worms)
	s.Tunnels = slices.Clone(s.Tunnels)
	return s
}

// Equal compares the logical content of two states.
// Worm animation data is ignored.
func (s State) Equal(o State) bool {
	if !slices.Equal(s.Snake, o.Snake) ||
		!slices.Equal(s.Apples, o.Apples) ||
		!slices.Equal(s.Tunnels, o.Tunnels) ||
		!slices.EqualFunc(s.Worms, o.Worms, Worm.Equal) {
		return false
	}
	return s.Direction == o.Direction &&
		s.PendingDirection == o.PendingDirection &&
		s.ApplesEaten == o.ApplesEaten &&
		s.Score == o.Score &&
		s.Level == o.Level &&
		s.GoldenApple == o.GoldenApple &&
		s.HasGoldenApple == o.HasGoldenApple &&
		s.GoldenUsedThisLevel == o.GoldenUsedThisLevel &&
		s.EffectUntil == o.EffectUntil &&
		s.JustTeleported == o.JustTeleported &&
		s.Running == o.Running &&
		s.Paused == o.Paused &&
		s.GameOver == o.GameOver &&
		s.Win == o.Win
}

// Engine applies a fixed rule set to game states.
type Engine struct {
	rules Rules
}

// NewEngine creates an engine for the given rules.
func NewEngine(rules Rules) *Engine {
	if len(rules.StartSnake) == 0 {
		rules.StartSnake = DefaultRules().StartSnake
	}
	return &Engine{rules: rules}
}

// Rules returns the engine's rule set.
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewState builds the initial, not yet running state: the start snake,
// one apple and level-1 provisioning.
func (e *Engine) NewState(rng Rand) State {
	s := State{
		Snake:            slices.Clone(e.rules.StartSnake),
		Direction:        e.rules.StartDirection,
		PendingDirection: e.rules.StartDirection,
		Level:            1,
	}
	return e.Provision(s, rng)
}

// Start sets the game running. Terminal states are left unchanged.
func Start(s State) State {
	if s.Terminal() {
		return s
	}
	s.Running = true
	s.Paused = false
	return s
}

// TogglePause flips the paused flag of a running, non-terminal game.
func TogglePause(s State) State {
	if !s.Running || s.Terminal() {
		return s
	}
	s.Paused = !s.Paused
	return s
}

// RequestDirection latches a direction change for the next tick.
// Invalid directions and reversals of the current direction are ignored.
func RequestDirection(s State, d Direction) State {
	if !d.Valid() || d == s.Direction.Opposite() {
		return s
	}
	s.PendingDirection = d
	return s
}
