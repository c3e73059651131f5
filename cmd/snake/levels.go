package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	snakecore "github.com/vovakirdan/tui-snake/internal/games/snake/core"
)

var levelsCmd = &cobra.Command{
	Use:   "levels [variant]",
	Short: "Show what each level holds",
	Long: `Prints the level schedule for a variant (default: snake) under the
current config and difficulty: apples to clear, move interval, apple
drift and which hazards appear.

Examples:
  snake levels
  snake levels snake_classic --difficulty hard`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, args []string) error {
	id := "snake"
	if len(args) > 0 {
		id = args[0]
	}
	v, ok := snake.LookupVariant(id)
	if !ok {
		return fmt.Errorf("unknown variant %q (run 'snake list' to see the variants)", id)
	}

	preset, err := config.ParseDifficulty(flagDifficulty)
	if err != nil {
		return err
	}
	rules, err := snake.LoadRules(flagConfig, preset, v.Caps)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s - %dx%d board, %s difficulty\n\n", v.Title, rules.Grid.Cols, rules.Grid.Rows, preset)
	fmt.Fprintf(out, "  %-3s  %-12s  %-6s  %-6s  %-7s  %-5s  %s\n",
		"#", "Name", "Apples", "Tick", "Drift", "Worms", "Extras")
	for _, l := range snake.Levels(rules) {
		extras := ""
		if l.GoldenApple {
			extras += "golden apple "
		}
		if l.Tunnels {
			extras += "tunnels"
		}
		fmt.Fprintf(out, "  %-3d  %-12s  %-6d  %-6s  %-7s  %-5d  %s\n",
			l.Number, l.Name, l.Target, l.Tick, l.AppleWander, l.Worms, extras)
	}

	if v.Caps.GoldenApple {
		fmt.Fprintf(out, "\nGolden apple: move interval doubles for %s.\n",
			snakecore.FormatElapsed(rules.EffectDuration))
	}
	return nil
}
