package snake

import (
	"fmt"

	platformcore "github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

const (
	hudHeight = 2
	cellWidth = 2 // Each board cell is drawn two columns wide
)

// Two-column glyphs for board cells.
var (
	glyphEmpty     = []rune(" ·")
	glyphHead      = []rune("██")
	glyphBody      = []rune("▓▓")
	glyphApple     = []rune("()")
	glyphGolden    = []rune("<>")
	glyphWormHead  = []rune("@@")
	glyphWormBody  = []rune("~~")
	glyphWormBody2 = []rune("≈≈")
	glyphTunnel    = []rune("[]")
)

// boardSize returns the framed board's size in screen cells.
func (g *Game) boardSize() (w, h int) {
	return g.rules.Grid.Cols*cellWidth + 2, g.rules.Grid.Rows + 2
}

// Resize adapts the game to a new terminal size. Play is suspended while
// the board does not fit.
func (g *Game) Resize(w, h int) {
	g.resize(w, h)
}

func (g *Game) resize(w, h int) {
	g.screenW, g.screenH = w, h
	bw, bh := g.boardSize()
	g.tooSmall = w < bw || h < bh+hudHeight
}

// boardRect returns the framed board, centered below the HUD.
func (g *Game) boardRect(dst *platformcore.Screen) platformcore.Rect {
	bw, bh := g.boardSize()
	r := platformcore.CenteredRect(dst.Width(), dst.Height()-hudHeight, bw, bh)
	r.Y += hudHeight
	return r
}

// Render draws the game to the screen.
func (g *Game) Render(dst *platformcore.Screen) {
	if dst.Width() != g.screenW || dst.Height() != g.screenH {
		g.resize(dst.Width(), dst.Height())
	}

	g.renderHUD(dst)

	if g.tooSmall {
		bw, bh := g.boardSize()
		g.renderOverlay(dst, platformcore.ColorBrightRed,
			"Window too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", bw, bh+hudHeight, dst.Width(), dst.Height()))
		return
	}

	board := g.boardRect(dst)
	dst.DrawBox(board, platformcore.ColorWhite)
	g.renderBoard(dst, board.Inset(1))

	switch {
	case g.state.Win:
		g.renderOverlay(dst, platformcore.ColorBrightYellow,
			"You Win!",
			fmt.Sprintf("Score %d in %s", g.state.Score, core.FormatElapsed(g.Elapsed())),
			"R or an arrow to play again")
	case g.state.GameOver:
		g.renderOverlay(dst, platformcore.ColorBrightRed,
			"Game Over",
			fmt.Sprintf("Score %d, level %d", g.state.Score, g.state.Level),
			"R or an arrow to play again")
	case g.state.Paused:
		g.renderOverlay(dst, platformcore.ColorBrightCyan, "Paused", "P to continue")
	case !g.state.Running:
		g.renderOverlay(dst, platformcore.ColorBrightGreen,
			g.variant.Title,
			fmt.Sprintf("Level %d: %s", g.state.Level, LevelName(g.state.Level)),
			"Arrows or Space to start")
	}
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *platformcore.Screen) {
	s := g.state
	hud := fmt.Sprintf(" %s  Score: %d  Level: %d/%d  Apples: %d/%d",
		g.variant.Title, s.Score, s.Level, g.rules.MaxLevel(), s.ApplesEaten, g.rules.LevelTarget(s.Level))
	if g.variant.Caps.Timer {
		hud += "  Time: " + core.FormatElapsed(g.Elapsed())
	}
	if len(s.Worms) > 0 {
		hud += fmt.Sprintf("  Worms: %d", len(s.Worms))
	}
	dst.DrawTextColor(0, 0, hud, platformcore.ColorBrightWhite)

	if rem := s.EffectRemaining(g.sched.now); rem > 0 {
		status := fmt.Sprintf("Slow motion %.1fs ", rem.Seconds())
		dst.DrawTextColor(dst.Width()-len(status), 0, status, platformcore.ColorBrightYellow)
	} else if f, ok := g.fb.active(g.wall); ok {
		text := f.text + " "
		dst.DrawTextColor(dst.Width()-len([]rune(text)), 0, text, f.color)
	}

	dst.DrawHLine(0, 1, dst.Width(), '─', platformcore.ColorGray)
}

// renderBoard draws the cells inside the frame. Later layers win.
func (g *Game) renderBoard(dst *platformcore.Screen, area platformcore.Rect) {
	s := g.state
	put := func(c core.Cell, glyph []rune, color platformcore.Color) {
		x := area.X + c.X*cellWidth
		y := area.Y + c.Y
		for i, r := range glyph {
			dst.SetColor(x+i, y, r, color)
		}
	}

	for _, c := range g.rules.Grid.Cells() {
		put(c, glyphEmpty, platformcore.ColorGray)
	}
	for _, t := range s.Tunnels {
		put(t, glyphTunnel, platformcore.ColorCyan)
	}
	for _, a := range s.Apples {
		put(a, glyphApple, platformcore.ColorBrightRed)
	}
	if s.HasGoldenApple {
		put(s.GoldenApple, glyphGolden, platformcore.ColorBrightYellow)
	}

	for _, w := range s.Worms {
		color, body := platformcore.ColorMagenta, glyphWormBody
		if w.Anim.Phase >= 0.5 {
			color, body = platformcore.ColorBrightMagenta, glyphWormBody2
		}
		for i, c := range w.Body() {
			if !g.rules.Grid.InBounds(c) {
				continue
			}
			if i == 0 {
				put(c, glyphWormHead, color)
			} else {
				put(c, body, color)
			}
		}
	}

	headColor := platformcore.ColorBrightGreen
	if s.EffectActive(g.sched.now) {
		headColor = platformcore.ColorBrightYellow
	}
	for i := len(s.Snake) - 1; i >= 0; i-- {
		if i == 0 {
			put(s.Snake[i], glyphHead, headColor)
		} else {
			put(s.Snake[i], glyphBody, platformcore.ColorGreen)
		}
	}
}

// renderOverlay draws a framed message box in the middle of the screen.
func (g *Game) renderOverlay(dst *platformcore.Screen, c platformcore.Color, title string, lines ...string) {
	w := len([]rune(title))
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	box := platformcore.CenteredRect(dst.Width(), dst.Height(), w+4, len(lines)+4)
	dst.DrawRect(box, ' ', platformcore.ColorDefault)
	dst.DrawBox(box, c)

	dst.DrawTextCenteredColor(box.Y+1, title, c)
	for i, l := range lines {
		dst.DrawTextCenteredColor(box.Y+3+i, l, platformcore.ColorWhite)
	}
}
