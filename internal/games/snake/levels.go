package snake

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

var levelNames = []string{
	"Orchard",
	"Golden Hour",
	"Underpass",
	"Infestation",
	"Frenzy",
}

// LevelName returns the display name of a 1-based level.
func LevelName(level int) string {
	if level >= 1 && level <= len(levelNames) {
		return levelNames[level-1]
	}
	return fmt.Sprintf("Level %d", level)
}

// LevelInfo describes what a level holds under a rule set.
type LevelInfo struct {
	Number      int
	Name        string
	Target      int           // Apples to clear the level
	Tick        time.Duration // Snake move interval
	AppleWander time.Duration // Base apple drift interval
	Worms       int           // Worms alive on arrival (one spawns per level-up)
	GoldenApple bool
	Tunnels     bool
}

// Levels describes every level of a rule set.
func Levels(r core.Rules) []LevelInfo {
	infos := make([]LevelInfo, 0, r.MaxLevel())
	for lvl := 1; lvl <= r.MaxLevel(); lvl++ {
		wander := time.Duration(0)
		if len(r.AppleWander) > 0 {
			wander = r.AppleWander[min(lvl, len(r.AppleWander))-1]
		}
		infos = append(infos, LevelInfo{
			Number:      lvl,
			Name:        LevelName(lvl),
			Target:      r.LevelTarget(lvl),
			Tick:        r.TickInterval(lvl, false),
			AppleWander: wander,
			Worms:       lvl - 1,
			GoldenApple: r.Caps.GoldenApple && lvl >= r.GoldenFromLevel,
			Tunnels:     r.Caps.Tunnels && lvl >= r.TunnelFromLevel,
		})
	}
	return infos
}

// LevelCount returns the number of levels under the current config and
// difficulty settings.
func LevelCount() int {
	s := currentSettings()
	r, _ := LoadRules(s.configPath, s.preset, core.AllCapabilities())
	return r.MaxLevel()
}
