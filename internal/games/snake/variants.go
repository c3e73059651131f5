package snake

import (
	"io"
	"slices"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

// Variant is a registered flavour of the game: one engine, one capability set.
type Variant struct {
	ID          string
	Title       string
	Description string
	Caps        core.Capabilities
}

// Variants lists the playable variants, simplest first.
var Variants = []Variant{
	{
		ID:          "snake_classic",
		Title:       "Snake Classic",
		Description: "Walls and apples. Worms roam but never eat.",
	},
	{
		ID:          "snake_timed",
		Title:       "Snake Time Trial",
		Description: "Classic rules against the clock.",
		Caps:        core.Capabilities{Timer: true},
	},
	{
		ID:          "snake",
		Title:       "Snake",
		Description: "Golden apples, tunnels and hungry worms.",
		Caps:        core.AllCapabilities(),
	},
}

// LookupVariant finds a variant by ID.
func LookupVariant(id string) (Variant, bool) {
	i := slices.IndexFunc(Variants, func(v Variant) bool { return v.ID == id })
	if i < 0 {
		return Variant{}, false
	}
	return Variants[i], true
}

// Package-level settings applied on the next Reset, like the CLI flags.
var (
	settingsMu       sync.RWMutex
	configPath       string
	difficultyPreset = config.DifficultyNormal
	startLevel       int
	logger           = log.New(io.Discard)
)

// SetConfigPath sets the YAML config file used on the next Reset.
func SetConfigPath(path string) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	difficultyPreset = preset
}

// SetStartLevel sets the level new rounds begin at. 0 or 1 means the first level.
func SetStartLevel(level int) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	startLevel = level
}

// GetStartLevel returns the currently selected start level.
func GetStartLevel() int {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return startLevel
}

// SetLogger routes gameplay events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

type settings struct {
	configPath string
	preset     config.DifficultyPreset
	startLevel int
	logger     *log.Logger
}

func currentSettings() settings {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings{
		configPath: configPath,
		preset:     difficultyPreset,
		startLevel: startLevel,
		logger:     logger,
	}
}

// LoadRules builds the engine rules for a capability set from the YAML
// configuration and difficulty preset. A broken config file is reported
// and replaced by the built-in defaults.
func LoadRules(path string, preset config.DifficultyPreset, caps core.Capabilities) (core.Rules, error) {
	cfg, err := config.LoadSnake(path)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	config.ApplySnakePreset(&cfg, preset)
	return BuildRules(cfg, caps), err
}

// BuildRules converts a configuration into engine rules.
func BuildRules(cfg config.SnakeConfig, caps core.Capabilities) core.Rules {
	d := config.NewDifficultyManager(cfg.Difficulty)
	t := cfg.Timing

	r := core.DefaultRules()
	r.Grid = core.Grid{Cols: cfg.Grid.Cols, Rows: cfg.Grid.Rows}
	r.StartSnake = startSnake(r.Grid)
	r.LevelTargets = slices.Clone(cfg.Levels.Targets)

	r.BaseTick = d.TickPeriod(t.BaseTickMS)
	r.MinTick = min(config.Millis(t.MinTickMS), r.BaseTick)
	r.SpeedFactor = d.SpeedFactor(t.SpeedFactor)

	r.WormMove = d.WormPeriod(t.WormMoveMS)
	r.WormInitialLength = cfg.Worms.InitialLength
	r.GreedyChance = d.GreedyChance(cfg.Worms.GreedyChance)

	r.AppleWander = r.AppleWander[:0:0]
	for _, ms := range t.AppleWanderMS {
		r.AppleWander = append(r.AppleWander, config.Millis(ms))
	}
	r.WanderJitter = t.WanderJitter
	r.GoldenWander = config.Millis(t.GoldenWanderMS)
	r.RespawnMin = config.Millis(t.RespawnMinMS)
	r.RespawnMax = config.Millis(t.RespawnMaxMS)

	r.GoldenFromLevel = cfg.Levels.GoldenFromLevel
	r.EffectDuration = config.Millis(t.EffectMS)
	r.TunnelFromLevel = cfg.Levels.TunnelFromLevel
	r.TunnelMinDistance = cfg.Tunnels.MinDistance
	r.TunnelEdgeBuffer = cfg.Tunnels.EdgeBuffer
	r.TunnelAttempts = cfg.Tunnels.Attempts

	r.Caps = caps
	return r
}

// startSnake lays a three-cell snake facing right, a little left of center.
// On the 25x20 board this is (10,10),(9,10),(8,10).
func startSnake(g core.Grid) []core.Cell {
	x := max(2, g.Cols*2/5)
	y := g.Rows / 2
	return []core.Cell{core.C(x, y), core.C(x-1, y), core.C(x-2, y)}
}
