// rooftop is a terminal endless runner: sprint across procedurally
// generated building rooftops, jump the gaps, survive as long as you can.
//
// Usage:
//
//	rooftop play             - Play in the current terminal
//	rooftop serve            - Start SSH server for remote play
//	rooftop scores           - Show high scores
//	rooftop config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.rooftop/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/rooftop-run/internal/games/rooftop"
)

const gameID = "rooftop"

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "rooftop",
	Short: "Rooftop Run - an endless runner in your terminal",
	Long: `Rooftop Run is a terminal endless runner. The runner sprints across
procedurally generated building rooftops while the city scrolls ever
faster; your only move is a variable-height jump.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Print the default configuration

Examples:
  rooftop play
  rooftop play --seed 42
  rooftop serve --ssh :2222
  rooftop scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.rooftop/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
