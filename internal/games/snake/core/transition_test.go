package core_test

import (
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// running builds a running state on the default rules.
func running(snake []core.Cell, dir core.Direction) core.State {
	return core.State{
		Snake:            snake,
		Direction:        dir,
		PendingDirection: dir,
		Level:            1,
		Running:          true,
	}
}

func startSnake() []core.Cell {
	return []core.Cell{core.C(10, 10), core.C(9, 10), core.C(8, 10)}
}

func TestNextStateInactiveIsNoOp(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	base := running(startSnake(), core.DirRight)
	base.Apples = []core.Cell{core.C(11, 10)}

	tests := []struct {
		name  string
		state func(core.State) core.State
	}{
		{"game over", func(s core.State) core.State { s.GameOver = true; s.Running = false; return s }},
		{"not running", func(s core.State) core.State { s.Running = false; return s }},
		{"paused", func(s core.State) core.State { s.Paused = true; return s }},
		{"won", func(s core.State) core.State { s.Win = true; s.Running = false; return s }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			in := tc.state(base.Clone())
			for _, d := range core.Directions {
				out := e.NextState(in, d, core.Sequence(0.3), time.Second)
				if !out.Equal(in) {
					t.Errorf("NextState(%s) changed an inactive state", d)
				}
			}
		})
	}
}

func TestNextStateEatsApple(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)
	s.Apples = []core.Cell{core.C(11, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0.5), 0)

	want := []core.Cell{core.C(11, 10), core.C(10, 10), core.C(9, 10), core.C(8, 10)}
	if !slices.Equal(next.Snake, want) {
		t.Errorf("snake = %v, want %v", next.Snake, want)
	}
	if next.ApplesEaten != 1 {
		t.Errorf("ApplesEaten = %d, want 1", next.ApplesEaten)
	}
	if next.Score != 1 {
		t.Errorf("Score = %d, want 1", next.Score)
	}
	if core.OccupiedByApple(next, core.C(11, 10)) {
		t.Error("eaten apple should be removed")
	}
	// Delayed respawn: the host refills the slot later.
	if len(next.Apples) != 0 {
		t.Errorf("expected no apple until respawn, got %v", next.Apples)
	}
	// The input state is untouched.
	if len(s.Snake) != 3 || len(s.Apples) != 1 {
		t.Error("NextState mutated its input")
	}
}

func TestNextStateClassicRespawnsImmediately(t *testing.T) {
	rules := core.DefaultRules()
	rules.Caps = core.Capabilities{}
	e := core.NewEngine(rules)
	s := running(startSnake(), core.DirRight)
	s.Apples = []core.Cell{core.C(11, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0.42), 0)

	if len(next.Apples) != 1 {
		t.Fatalf("expected one replacement apple, got %v", next.Apples)
	}
	if core.OccupiedBySnake(next, next.Apples[0]) {
		t.Errorf("replacement apple %v placed on snake", next.Apples[0])
	}
}

func TestNextStateWallIsFatal(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	cols := e.Rules().Grid.Cols
	snake := []core.Cell{core.C(cols-1, 5), core.C(cols-2, 5), core.C(cols-3, 5)}
	s := running(snake, core.DirRight)

	next := e.NextState(s, core.DirRight, core.Sequence(0), 0)

	if !next.GameOver || next.Running {
		t.Errorf("GameOver=%v Running=%v, want true/false", next.GameOver, next.Running)
	}
	if !slices.Equal(next.Snake, snake) {
		t.Errorf("snake moved on fatal transition: %v", next.Snake)
	}
}

func TestNextStateWallUpdatesDirection(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	snake := []core.Cell{core.C(4, 0), core.C(3, 0), core.C(2, 0)}
	s := running(snake, core.DirRight)

	next := e.NextState(s, core.DirUp, core.Sequence(0), 0)

	if !next.GameOver {
		t.Fatal("moving up from row 0 should end the game")
	}
	if next.Direction != core.DirUp {
		t.Errorf("Direction = %s, want up", next.Direction)
	}
	if !slices.Equal(next.Snake, snake) {
		t.Errorf("snake = %v, want %v", next.Snake, snake)
	}
}

func TestNextStateRejectsReversal(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	for _, d := range core.Directions {
		s := running(startSnake(), d)
		// Keep the body out of the way: a 1-cell snake cannot self-collide.
		s.Snake = []core.Cell{core.C(12, 10)}

		next := e.NextState(s, d.Opposite(), core.Sequence(0), 0)

		if next.Direction != d {
			t.Errorf("current %s: reversal changed direction to %s", d, next.Direction)
		}
		if next.PendingDirection != d {
			t.Errorf("current %s: pending direction = %s, want %s", d, next.PendingDirection, d)
		}
	}
}

func TestNextStateIgnoresInvalidDirection(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)

	next := e.NextState(s, core.Direction(42), core.Sequence(0), 0)

	if next.Direction != core.DirRight || next.Head() != core.C(11, 10) {
		t.Errorf("invalid direction should keep moving right, got %s at %v", next.Direction, next.Head())
	}
}

func TestNextStateSelfCollision(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	snake := []core.Cell{core.C(5, 5), core.C(5, 6), core.C(6, 6), core.C(6, 5), core.C(6, 4)}
	s := running(snake, core.DirUp)

	next := e.NextState(s, core.DirRight, core.Sequence(0), 0)

	if !next.GameOver {
		t.Error("moving into the body should end the game")
	}
}

func TestNextStateTailIsExempt(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	snake := []core.Cell{core.C(5, 5), core.C(6, 5), core.C(6, 6), core.C(5, 6)}
	s := running(snake, core.DirLeft)

	next := e.NextState(s, core.DirDown, core.Sequence(0), 0)

	if next.GameOver {
		t.Fatal("moving into the vacating tail should be allowed")
	}
	want := []core.Cell{core.C(5, 6), core.C(5, 5), core.C(6, 5), core.C(6, 6)}
	if !slices.Equal(next.Snake, want) {
		t.Errorf("snake = %v, want %v", next.Snake, want)
	}
}

func TestNextStateWormCollision(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)
	// Body (12,9),(12,10): the worm's tail blocks the way.
	s.Worms = []core.Worm{core.NewWorm(core.C(12, 9), core.DirUp, 2)}
	s.Snake = []core.Cell{core.C(11, 10), core.C(10, 10), core.C(9, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0), 0)

	if !next.GameOver {
		t.Error("moving into a worm body should end the game")
	}
}

func TestNextStateLevelUp(t *testing.T) {
	rules := core.DefaultRules()
	rules.LevelTargets = []int{1, 1}
	e := core.NewEngine(rules)
	s := running(startSnake(), core.DirRight)
	s.Apples = []core.Cell{core.C(11, 10)}
	s.GoldenUsedThisLevel = true

	next := e.NextState(s, core.DirRight, core.Sequence(0.5), 0)

	if next.Level != 2 {
		t.Errorf("Level = %d, want 2", next.Level)
	}
	if next.ApplesEaten != 0 {
		t.Errorf("ApplesEaten = %d, want 0", next.ApplesEaten)
	}
	if len(next.Worms) != 1 {
		t.Errorf("expected exactly one new worm, got %d", len(next.Worms))
	}
	if next.GoldenUsedThisLevel {
		t.Error("golden-apple usage should reset on level up")
	}
	if next.Win || next.GameOver || !next.Running {
		t.Errorf("level up should keep playing: win=%v over=%v running=%v", next.Win, next.GameOver, next.Running)
	}
}

func TestNextStateWinOnLastLevel(t *testing.T) {
	rules := core.DefaultRules()
	rules.LevelTargets = []int{1, 1}
	e := core.NewEngine(rules)
	s := running(startSnake(), core.DirRight)
	s.Level = 2
	s.Apples = []core.Cell{core.C(11, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0.5), 0)

	if !next.Win || next.Running || next.GameOver {
		t.Errorf("win=%v running=%v over=%v, want true/false/false", next.Win, next.Running, next.GameOver)
	}
	if next.Level != 2 {
		t.Errorf("Level = %d, want 2", next.Level)
	}
	if len(next.Worms) != 0 {
		t.Error("winning should not spawn a worm")
	}
}

func TestNextStateTeleportAndSuppression(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running([]core.Cell{core.C(11, 10), core.C(10, 10), core.C(9, 10)}, core.DirRight)
	s.Tunnels = []core.Cell{core.C(12, 10), core.C(12, 11)}

	first := e.NextState(s, core.DirRight, core.Sequence(0), 0)
	if first.Head() != core.C(12, 11) {
		t.Fatalf("head = %v, want teleport exit (12,11)", first.Head())
	}
	if !first.JustTeleported {
		t.Error("JustTeleported should be set after a teleport")
	}

	// Stepping up lands on the entry tunnel again; it must not re-teleport.
	second := e.NextState(first, core.DirUp, core.Sequence(0), 0)
	if second.GameOver {
		t.Fatal("unexpected game over")
	}
	if second.Head() != core.C(12, 10) {
		t.Errorf("head = %v, want (12,10) without teleport", second.Head())
	}
	if second.JustTeleported {
		t.Error("suppression should last exactly one tick")
	}
}

func TestNextStateTeleportNeedsPair(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)
	s.Tunnels = []core.Cell{core.C(11, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0), 0)
	if next.Head() != core.C(11, 10) || next.JustTeleported {
		t.Errorf("a lone tunnel should not teleport, head=%v", next.Head())
	}
}

func TestNextStateGoldenApple(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := running(startSnake(), core.DirRight)
	s.Level = 2
	s.GoldenApple = core.C(11, 10)
	s.HasGoldenApple = true

	now := time.Second
	next := e.NextState(s, core.DirRight, core.Sequence(0), now)

	if next.HasGoldenApple {
		t.Error("golden apple should be consumed")
	}
	if !next.GoldenUsedThisLevel {
		t.Error("golden apple should be marked used")
	}
	if want := now + e.Rules().EffectDuration; next.EffectUntil != want {
		t.Errorf("EffectUntil = %v, want %v", next.EffectUntil, want)
	}
	if !next.EffectActive(now + time.Second) {
		t.Error("effect should be active shortly after eating")
	}
	if len(next.Snake) != 3 {
		t.Errorf("golden apple should not grow the snake, len=%d", len(next.Snake))
	}
	ev := core.Diff(s, next)
	if !ev.AteGolden || ev.Ate {
		t.Errorf("events = %+v, want AteGolden only", ev)
	}
}

func TestDiffEvents(t *testing.T) {
	rules := core.DefaultRules()
	rules.LevelTargets = []int{1, 1}
	e := core.NewEngine(rules)
	s := running(startSnake(), core.DirRight)
	s.Apples = []core.Cell{core.C(11, 10)}

	next := e.NextState(s, core.DirRight, core.Sequence(0.5), 0)
	ev := core.Diff(s, next)
	if !ev.Moved || !ev.Ate || !ev.LevelUp || ev.Died || ev.Won {
		t.Errorf("events = %+v", ev)
	}

	dead := e.NextState(running([]core.Cell{core.C(0, 0)}, core.DirLeft), core.DirLeft, core.Sequence(0), 0)
	if ev := core.Diff(running([]core.Cell{core.C(0, 0)}, core.DirLeft), dead); !ev.Died || ev.Moved {
		t.Errorf("events = %+v, want Died only", ev)
	}
}

func TestControlIntents(t *testing.T) {
	s := running(startSnake(), core.DirRight)
	s.Running = false

	s = core.Start(s)
	if !s.Running {
		t.Fatal("Start should set Running")
	}
	s = core.TogglePause(s)
	if !s.Paused {
		t.Fatal("TogglePause should pause a running game")
	}
	s = core.TogglePause(s)
	if s.Paused {
		t.Fatal("TogglePause should resume")
	}

	s = core.RequestDirection(s, core.DirLeft)
	if s.PendingDirection != core.DirRight {
		t.Error("reversal request should be ignored")
	}
	s = core.RequestDirection(s, core.Direction(9))
	if s.PendingDirection != core.DirRight {
		t.Error("invalid request should be ignored")
	}
	s = core.RequestDirection(s, core.DirUp)
	if s.PendingDirection != core.DirUp {
		t.Error("valid request should latch")
	}

	over := s
	over.GameOver = true
	over.Running = false
	if got := core.Start(over); got.Running {
		t.Error("Start on a terminal state should be a no-op")
	}
	if got := core.TogglePause(over); got.Paused != over.Paused {
		t.Error("TogglePause on a terminal state should be a no-op")
	}
}

func TestNewStateIsProvisioned(t *testing.T) {
	e := core.NewEngine(core.DefaultRules())
	s := e.NewState(core.Sequence(0.1, 0.7, 0.4))

	if s.Running || s.GameOver || s.Win {
		t.Errorf("initial state should be idle: %+v", s)
	}
	if s.Level != 1 || s.Direction != core.DirRight {
		t.Errorf("Level=%d Direction=%s", s.Level, s.Direction)
	}
	if len(s.Apples) != 1 {
		t.Fatalf("expected one apple, got %v", s.Apples)
	}
	if core.OccupiedBySnake(s, s.Apples[0]) {
		t.Error("apple placed on snake")
	}
	if len(s.Tunnels) != 0 || s.HasGoldenApple {
		t.Error("level 1 should have no tunnels or golden apple")
	}
}
