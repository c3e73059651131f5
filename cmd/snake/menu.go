package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/platform/tui"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick variants interactively",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to pick a variant, Left/Right to pick the start
level, Enter to play and Tab to open the records board. After a round,
press B to return to the menu.

Records are kept for as long as the program runs.

Examples:
  snake menu
  snake menu --fps 30
  snake menu --difficulty hard --level 2`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store, err := storage.Shared()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: records disabled: %v\n", err)
		store = nil
	}

	if err := tui.RunSession(store, runtimeConfig(), logger); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
