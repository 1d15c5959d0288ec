// puzzles is a terminal puzzle collection: a pipe-rotation puzzle and the
// classic 8-tile sliding puzzle.
//
// Usage:
//
//	puzzles list              - List available puzzles
//	puzzles play <puzzle>     - Play a puzzle
//	puzzles menu              - Start menu to pick puzzles interactively
//	puzzles serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 30)
//	--seed <value>     - Set RNG seed for reproducible boards
//	--log-file <path>  - Write game events to a log file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-puzzles/internal/core"

	// Import games to register them
	_ "github.com/vovakirdan/tui-puzzles/internal/games/pipes"
	_ "github.com/vovakirdan/tui-puzzles/internal/games/slide"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagLogFile string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "puzzles",
	Short: "TUI Puzzles - Play grid puzzles in your terminal",
	Long: `TUI Puzzles is a small collection of grid puzzles for the terminal.

Available commands:
  list     - Show all available puzzles
  play     - Play a specific puzzle directly
  menu     - Interactive puzzle picker menu
  serve    - Start SSH server for remote play

Examples:
  puzzles list
  puzzles play pipes --level 2
  puzzles play slide --seed 42
  puzzles menu
  puzzles serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write game events to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
}
