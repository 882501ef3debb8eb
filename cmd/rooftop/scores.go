package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rooftop-run/internal/platform/tui"
	"github.com/vovakirdan/rooftop-run/internal/registry"
	"github.com/vovakirdan/rooftop-run/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores.

Examples:
  rooftop scores
  rooftop scores --interactive`,
	Run: runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a scrollable TUI")
}

func runScores(cmd *cobra.Command, args []string) {
	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, gameID, title, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Get top scores
	scores, err := store.TopScores(gameID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	// Display scores
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'rooftop play' to set the first high score!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-10s  %s\n", "Rank", "Score", "Date")
	fmt.Printf("  %-4s  %-10s  %s\n", "----", "-----", "----")

	// Print scores
	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %s\n", i+1, entry.Score, dateStr)
	}

	// Show high score
	fmt.Println()
	highScore, err := store.HighScore(gameID)
	if err == nil {
		fmt.Printf("Best: %d\n", highScore)
	}
}
