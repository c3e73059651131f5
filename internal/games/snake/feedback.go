package snake

import (
	"time"

	"github.com/charmbracelet/log"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

const flashDuration = 1200 * time.Millisecond

// flash is a short status line shown in the HUD.
type flash struct {
	text  string
	color platformcore.Color
	until time.Duration
}

// feedback turns state deltas into log lines and HUD flashes.
// It never feeds back into the game state.
type feedback struct {
	logger  *log.Logger
	current flash
}

func (f *feedback) show(text string, c platformcore.Color, now time.Duration) {
	f.current = flash{text: text, color: c, until: now + flashDuration}
}

// active returns the flash visible at now.
func (f *feedback) active(now time.Duration) (flash, bool) {
	if f.current.text == "" || now >= f.current.until {
		return flash{}, false
	}
	return f.current, true
}

func (f *feedback) clear() {
	f.current = flash{}
}

// transition reports the events of one snake move.
func (f *feedback) transition(ev core.Events, s core.State, levelName string, now time.Duration) {
	if !ev.Any() {
		return
	}
	kv := []any{"level", s.Level, "score", s.Score, "head", s.Head()}

	switch {
	case ev.Died:
		f.logger.Info("snake died", kv...)
		f.show("Crash!", platformcore.ColorBrightRed, now)
	case ev.Won:
		f.logger.Info("round won", kv...)
		f.show("All levels cleared!", platformcore.ColorBrightYellow, now)
	case ev.LevelUp:
		f.logger.Info("level up", append(kv, "name", levelName, "worms", len(s.Worms))...)
		f.show("Level "+levelName+"!", platformcore.ColorBrightCyan, now)
	case ev.AteGolden:
		f.logger.Debug("golden apple", kv...)
		f.show("Golden apple: slow motion!", platformcore.ColorBrightYellow, now)
	case ev.Ate:
		f.logger.Debug("apple", kv...)
		f.show("+1", platformcore.ColorBrightGreen, now)
	case ev.Teleported:
		f.logger.Debug("teleport", kv...)
		f.show("Whoosh!", platformcore.ColorCyan, now)
	default:
		f.logger.Debug("move", kv...)
	}
}

// worms reports what the worms did in one worm tick.
func (f *feedback) worms(out core.WormOutcome, s core.State, now time.Duration) {
	if out.AteApple {
		f.logger.Debug("worm ate apple", "level", s.Level, "worms", len(s.Worms))
		f.show("A worm got the apple", platformcore.ColorMagenta, now)
	}
	if out.AteGolden {
		f.logger.Debug("worm ate golden apple", "level", s.Level, "spawned", out.Spawned)
		f.show("The worms are multiplying!", platformcore.ColorBrightMagenta, now)
	}
}
