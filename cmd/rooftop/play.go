package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/rooftop-run/internal/audio"
	"github.com/vovakirdan/rooftop-run/internal/core"
	"github.com/vovakirdan/rooftop-run/internal/games/rooftop"
	"github.com/vovakirdan/rooftop-run/internal/platform/tui"
	"github.com/vovakirdan/rooftop-run/internal/registry"
	"github.com/vovakirdan/rooftop-run/internal/storage"
)

var (
	flagConfig string
	flagMute   bool
	flagVolume float64
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a run",
	Long: `Start a run in the current terminal.

Controls:
  Space/Up/W - Jump (hold for a higher jump)
  P/Esc      - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Examples:
  rooftop play
  rooftop play --seed 42
  rooftop play --mute
  rooftop play --config ./my-rooftop.yaml`,
	Run: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
	playCmd.Flags().Float64Var(&flagVolume, "volume", 0.6, "Sound effect volume (0.0-1.0)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.DefaultConfig()
	cfg.ScreenW = width
	cfg.ScreenH = height
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed

	rooftop.SetConfigPath(flagConfig)

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Wire sound effects into the simulation's cues
	if !flagMute {
		sound := audio.NewSoundManager(flagVolume)
		if soundErr := sound.Initialize(); soundErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audio unavailable: %v\n", soundErr)
		} else {
			defer sound.Cleanup()
			if g, ok := game.(*rooftop.Game); ok {
				g.SetCueListener(rooftop.CueFunc(func(c rooftop.Cue) {
					switch c {
					case rooftop.CueJump:
						sound.Play(audio.SoundJump)
					case rooftop.CueLand:
						sound.Play(audio.SoundLand)
					case rooftop.CueDeath:
						sound.Play(audio.SoundDeath)
					}
				}))
			}
		}
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Run the game
	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
