package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberbug/internal/platform/tui"
	"github.com/vovakirdan/bomberbug/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start BomberBug with a mode picker and arena setup",
	Long: `Start BomberBug in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a mode, then pick the
number of players, level, arena size and difficulty. Leaving a game
returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Left/Right   - Change a setup value
  Enter/Space  - Select
  Tab          - Round history
  Q            - Quit

Examples:
  bomberbug menu
  bomberbug menu --fps 30
  bomberbug menu --db ./rounds.db --mute`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cleanup, err := setupLogging()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer cleanup()

	if err := applyGameSettings(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	player := startAudio(ctx)
	defer player.Close()

	store := openStore()
	cfg := runtimeConfig()

	// Menu loop
	for {
		// Show menu and get selection
		menuResult, err := tui.RunMenu(store, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			break
		}

		// Update config with any size changes
		cfg = menuResult.Config

		// Check if user quit
		if menuResult.Quit {
			break
		}

		// Check if user wants scoreboard
		if menuResult.WantsScoreboard {
			goBack, sbErr := tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if goBack {
				continue // Back to menu
			}
			break // User quit from scoreboard
		}

		if menuResult.GameID == "" {
			break
		}

		// Create game instance
		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Arena setup
		selection, err := tui.RunSetup(game.Title(), menuResult.Mode, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			continue
		}
		if selection == nil {
			continue // Back to menu
		}
		selection.Apply(game)

		// Fresh seed for each game unless one was given
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		// Run the game
		if err := tui.Run(game, store, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		}

		// Loop back to menu
	}

	// Cleanup
	if store != nil {
		store.Close()
	}
}
