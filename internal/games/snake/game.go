// Package snake hosts the snake engine on the platform: it owns the timers,
// maps input to intents and renders the board.
package snake

import (
	"math/rand"
	"time"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

// Game runs one variant of the snake game.
type Game struct {
	variant Variant
	rules   core.Rules
	engine  *core.Engine
	rng     *rand.Rand
	draw    core.Rand
	state   core.State

	sched scheduler     // Gameplay clock: only advances while the round is active
	wall  time.Duration // Session clock: advances every frame
	frame time.Duration
	clock core.Clock
	tick  uint64

	fb       feedback
	settings settings
	startAt  int // Per-instance start level, overrides the package setting

	screenW  int
	screenH  int
	tooSmall bool
}

func init() {
	for _, v := range Variants {
		registry.Register(v.ID, func() registry.Game {
			return New(v)
		})
	}
}

// New creates a game for the given variant.
func New(v Variant) *Game {
	return &Game{variant: v}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.variant.ID
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.variant.Title
}

// Description returns the one-line summary.
func (g *Game) Description() string {
	return g.variant.Description
}

// StartAt makes new rounds of this instance begin at level. It takes
// effect on the next Reset or restart.
func (g *Game) StartAt(level int) {
	g.startAt = level
}

// Rules returns the active rule set.
func (g *Game) Rules() core.Rules {
	return g.rules
}

// Reset loads the configuration and starts a fresh, idle round.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.settings = currentSettings()
	g.fb = feedback{logger: g.settings.logger.With("game", g.variant.ID)}

	rules, err := LoadRules(g.settings.configPath, g.settings.preset, g.variant.Caps)
	if err != nil {
		g.fb.logger.Warn("using default config", "error", err)
	}
	g.rules = rules
	g.engine = core.NewEngine(rules)
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.draw = g.rng.Float64
	g.frame = cfg.FrameDuration()
	g.resize(cfg.ScreenW, cfg.ScreenH)

	g.newRound()
}

// newRound replaces the state with a fresh idle one and re-arms the timers.
func (g *Game) newRound() {
	g.state = g.engine.NewState(g.draw)
	lvl := g.settings.startLevel
	if g.startAt > 0 {
		lvl = g.startAt
	}
	if lvl = min(lvl, g.rules.MaxLevel()); lvl > 1 {
		g.state = g.skipToLevel(g.state, lvl)
	}

	g.sched.reset()
	g.clock.Reset()
	g.wall = 0
	g.tick = 0
	g.fb.clear()

	g.sched.arm(timerWorms, g.rules.WormMove)
	g.sched.arm(timerAppleWander, g.rules.AppleWanderInterval(g.state.Level, g.draw))
	g.armGoldenWander()

	g.fb.logger.Debug("new round", "level", g.state.Level, "worms", len(g.state.Worms))
}

// skipToLevel starts a round at a later level, with the worms that
// would have spawned on the way.
func (g *Game) skipToLevel(s core.State, level int) core.State {
	for s.Level < level {
		s.Level++
		if w, ok := g.engine.SpawnWorm(s, g.draw); ok {
			s.Worms = append(s.Worms, w)
		}
	}
	return g.engine.Provision(s, g.draw)
}

// Step advances the game by one platform frame.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	g.wall += g.frame

	g.handleInput(in)

	if g.state.Active() && !g.tooSmall {
		g.sched.advance(g.frame)
		g.runTimers()
	}
	g.syncClock()

	return platformcore.StepResult{State: g.State()}
}

// handleInput applies the frame's intents to the state.
func (g *Game) handleInput(in platformcore.InputFrame) {
	if in.Has(platformcore.ActionRestart) {
		g.newRound()
	}
	if in.Has(platformcore.ActionPause) {
		g.state = core.TogglePause(g.state)
	}
	if in.Has(platformcore.ActionStart) {
		g.start()
	}

	dir, ok := directionFor(in.LastMove)
	if !ok {
		return
	}
	switch {
	case g.state.Terminal():
		g.newRound()
		g.state = core.RequestDirection(g.state, dir)
		g.start()
	case !g.state.Running:
		g.state = core.RequestDirection(g.state, dir)
		g.start()
	default:
		g.state = core.RequestDirection(g.state, dir)
	}
}

func directionFor(a platformcore.Action) (core.Direction, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	default:
		return 0, false
	}
}

// start sets the round running and arms the move timer if it is idle.
func (g *Game) start() {
	if g.state.Terminal() {
		return
	}
	g.state = core.Start(g.state)
	if !g.sched.armed(timerMove) {
		g.sched.arm(timerMove, g.moveInterval())
	}
}

func (g *Game) moveInterval() time.Duration {
	return g.rules.TickInterval(g.state.Level, g.state.EffectActive(g.sched.now))
}

// runTimers fires every due timer in a fixed order.
func (g *Game) runTimers() {
	if g.sched.fire(timerMove) {
		g.onMove()
	}
	if g.sched.fire(timerWorms) {
		g.onWorms()
	}
	if g.sched.fire(timerAppleWander) {
		g.onAppleWander()
	}
	if g.sched.fire(timerGoldenWander) {
		g.onGoldenWander()
	}
	if g.sched.fire(timerRespawn) {
		g.onRespawn()
	}
}

func (g *Game) onMove() {
	prev := g.state
	next := g.engine.NextState(prev, prev.PendingDirection, g.draw, g.sched.now)
	ev := core.Diff(prev, next)
	g.state = next

	if ev.Ate {
		g.scheduleRespawn()
	}
	if ev.AteGolden {
		g.sched.cancel(timerGoldenWander)
	}
	if ev.LevelUp {
		g.state = g.engine.Provision(g.state, g.draw)
		g.armGoldenWander()
	}
	g.fb.transition(ev, g.state, LevelName(g.state.Level), g.wall)

	if g.state.Active() {
		g.sched.repeat(timerMove, g.moveInterval())
	}
}

func (g *Game) onWorms() {
	next, out := g.engine.MoveWorms(g.state, g.draw)
	g.state = next

	if out.AteApple {
		g.scheduleRespawn()
	}
	if out.AteGolden {
		g.sched.cancel(timerGoldenWander)
	}
	g.fb.worms(out, g.state, g.wall)

	g.sched.repeat(timerWorms, g.rules.WormMove)
}

func (g *Game) onAppleWander() {
	g.state = g.engine.WanderApple(g.state, g.draw)
	g.sched.repeat(timerAppleWander, g.rules.AppleWanderInterval(g.state.Level, g.draw))
}

func (g *Game) onGoldenWander() {
	if !g.state.HasGoldenApple {
		return
	}
	g.state = g.engine.WanderGoldenApple(g.state, g.draw)
	g.sched.repeat(timerGoldenWander, g.rules.GoldenWander)
}

func (g *Game) onRespawn() {
	g.state = g.engine.EnsureApple(g.state, g.draw)
}

// scheduleRespawn arms the one-shot apple refill when the apple slot is
// empty and none is pending.
func (g *Game) scheduleRespawn() {
	if len(g.state.Apples) > 0 || g.sched.armed(timerRespawn) {
		return
	}
	g.sched.arm(timerRespawn, g.rules.RespawnDelay(g.draw))
}

// armGoldenWander starts the golden apple's drift when one is outstanding.
func (g *Game) armGoldenWander() {
	if g.state.HasGoldenApple && !g.sched.armed(timerGoldenWander) {
		g.sched.arm(timerGoldenWander, g.rules.GoldenWander)
	}
}

// syncClock runs the session clock only while the round is being played.
func (g *Game) syncClock() {
	if g.state.Active() && !g.tooSmall {
		g.clock.Start(g.wall)
	} else {
		g.clock.Pause(g.wall)
	}
}

// Elapsed returns the play time of the current round.
func (g *Game) Elapsed() time.Duration {
	return g.clock.Elapsed(g.wall)
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	gs := platformcore.GameState{
		Score:    g.state.Score,
		Level:    g.state.Level,
		Running:  g.state.Running,
		GameOver: g.state.Terminal(),
		Won:      g.state.Win,
		Paused:   g.state.Paused,
	}
	if g.variant.Caps.Timer {
		gs.Elapsed = g.Elapsed()
	}
	return gs
}
