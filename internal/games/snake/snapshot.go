package snake

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// Phase is the coarse lifecycle of a round.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhaseWin         Phase = "win"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the game for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	Variant   string
	Phase     Phase
	Level     int
	Score     int
	Eaten     int // Apples eaten in the current level
	SnakeLen  int
	Head      core.Cell
	Direction core.Direction
	Apples    []core.Cell
	Golden    *core.Cell
	Tunnels   []core.Cell
	Worms     int
	Elapsed   time.Duration
	GameTime  time.Duration // Virtual clock driving the timers
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	s := g.state
	snap := Snapshot{
		Tick:      g.tick,
		Variant:   g.variant.ID,
		Phase:     g.phase(),
		Level:     s.Level,
		Score:     s.Score,
		Eaten:     s.ApplesEaten,
		SnakeLen:  len(s.Snake),
		Head:      s.Head(),
		Direction: s.Direction,
		Apples:    append([]core.Cell(nil), s.Apples...),
		Tunnels:   append([]core.Cell(nil), s.Tunnels...),
		Worms:     len(s.Worms),
		Elapsed:   g.Elapsed(),
		GameTime:  g.sched.now,
	}
	if s.HasGoldenApple {
		c := s.GoldenApple
		snap.Golden = &c
	}
	return snap
}

func (g *Game) phase() Phase {
	s := g.state
	switch {
	case s.Win:
		return PhaseWin
	case s.GameOver:
		return PhaseGameOver
	case g.tooSmall:
		return PhasePausedSmall
	case s.Paused:
		return PhasePaused
	case !s.Running:
		return PhaseIdle
	default:
		return PhasePlaying
	}
}

// EngineState returns a copy of the underlying engine state.
func (g *Game) EngineState() core.State {
	return g.state.Clone()
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	snap := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Phase: %s, Score: %d, Level: %d (%d eaten)\n",
		snap.Tick, snap.Phase, snap.Score, snap.Level, snap.Eaten)
	fmt.Fprintf(&b, "Snake len: %d, Head: %s, Direction: %s\n", snap.SnakeLen, snap.Head, snap.Direction)
	fmt.Fprintf(&b, "Apples: %v, Tunnels: %v, Worms: %d\n", snap.Apples, snap.Tunnels, snap.Worms)
	if snap.Golden != nil {
		fmt.Fprintf(&b, "Golden apple: %s\n", *snap.Golden)
	}
	return b.String()
}
