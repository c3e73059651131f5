package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the built-in snake configuration.
// It matches defaults/snake.yaml and backs it up if the embed is unreadable.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: SnakeGrid{Cols: 25, Rows: 20},
		Timing: SnakeTiming{
			BaseTickMS:     120,
			MinTickMS:      40,
			SpeedFactor:    0.95,
			WormMoveMS:     800,
			AppleWanderMS:  []int{2000, 1500, 1000, 500, 200},
			WanderJitter:   0.25,
			GoldenWanderMS: 700,
			RespawnMinMS:   300,
			RespawnMaxMS:   1200,
			EffectMS:       5000,
		},
		Levels: SnakeLevels{
			Targets:         []int{3, 3, 3, 3, 3},
			GoldenFromLevel: 2,
			TunnelFromLevel: 3,
		},
		Worms: SnakeWorms{
			InitialLength: 2,
			GreedyChance:  0.9,
		},
		Tunnels: SnakeTunnels{
			MinDistance: 8,
			EdgeBuffer:  2,
			Attempts:    500,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.3,
			Scaling: ScalingConfig{
				TickReduction:     0.3,
				WormTickReduction: 0.4,
				GreedyBoost:       0.1,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "snake":
		return defaultSnakeYAML
	default:
		return nil
	}
}
