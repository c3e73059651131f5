package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: snake).

Controls:
  Arrows/WASD  - Steer (also starts; restarts after game over)
  Space/Enter  - Start or resume
  P/Esc        - Pause
  R            - Restart
  Ctrl+S       - Save a screenshot to ~/.tui-snake/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower snake, lazier worms
  normal - Configured speeds
  hard   - Faster snake, hungrier worms
  fixed  - Normal speeds, no per-level speedup

Examples:
  snake play
  snake play snake_timed --difficulty hard
  snake play snake --level 3 --seed 42
  snake play snake_classic --config ./my-snake.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "snake"
	if len(args) > 0 {
		gameID = args[0]
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("%w (run 'snake list' to see the variants)", err)
	}

	store, err := storage.Shared()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: records disabled: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	if _, err := tui.Run(game, store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
