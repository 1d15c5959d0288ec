package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/games/pipes"
	"github.com/vovakirdan/tui-puzzles/internal/games/slide"
	"github.com/vovakirdan/tui-puzzles/internal/platform/tui"
	"github.com/vovakirdan/tui-puzzles/internal/registry"
)

var (
	flagConfig string
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play <puzzle>",
	Short: "Play a puzzle",
	Long: `Start playing the specified puzzle.

Controls:
  Arrows/WASD  - Move the cursor
  Enter/Space  - Rotate the corner / slide the tile under the cursor
  Mouse click  - Same as Enter on the clicked cell
  F            - Shuffle
  R            - Reset (pipes) / new board (slide)
  H            - Toggle hint highlight
  E            - Helper move (slide, 3s cooldown)
  N            - Next level (pipes)
  Q/Ctrl+C     - Quit

Examples:
  puzzles play pipes
  puzzles play pipes --level 2
  puzzles play slide --seed 7
  puzzles play slide --config ./my-slide.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom puzzle config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Pipe puzzle level to start on (0 = from config)")
}

// applyGameFlags passes per-game flags to the selected game before creation.
func applyGameFlags(gameID string) {
	switch gameID {
	case "pipes":
		pipes.SetConfigPath(flagConfig)
		pipes.SetStartLevel(flagLevel)
	case "slide":
		slide.SetConfigPath(flagConfig)
	}
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown puzzle %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'puzzles list' to see available puzzles.")
		os.Exit(1)
	}

	logger, closeLog, err := openLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	applyGameFlags(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating puzzle: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running puzzle: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}
