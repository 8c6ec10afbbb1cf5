package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/games/bomber"
	"github.com/vovakirdan/bomberbug/internal/platform/tui"
	"github.com/vovakirdan/bomberbug/internal/registry"
)

var (
	flagRows    int
	flagCols    int
	flagPlayers int
	flagLevel   int
)

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a game mode",
	Long: `Start a session of the given mode (bomber or bomber_cpu).

Controls:
  P1  W/A/S/D move, Q bomb
  P2  Arrows move, / bomb
  P3  U/H/J/K move, Y bomb
  P4  8/4/5/6 move, 7 bomb
  P       - Pause
  R       - Next round (after a round ends)
  Esc     - Pause, or leave a paused or finished round
  Ctrl+S  - Save a screenshot
  Ctrl+C  - Quit

Difficulty options:
  easy   - Start at level 1, levels go up after each round
  normal - Start at level 2, levels go up after each round
  hard   - Start at level 4 with a more aggressive CPU
  fixed  - No progression, stays at the configured level

Arena flags override the config file. Rows and columns are rounded up to
odd numbers; progression stops at the configured max_level.

Examples:
  bomberbug play
  bomberbug play --players 4 --rows 13 --cols 21
  bomberbug play bomber_cpu --players 3 --difficulty hard
  bomberbug play --level 5 --difficulty fixed
  bomberbug play --config ./my-bomber.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().IntVar(&flagRows, "rows", 0, "Arena rows (0 = from config)")
	playCmd.Flags().IntVar(&flagCols, "cols", 0, "Arena columns (0 = from config)")
	playCmd.Flags().IntVar(&flagPlayers, "players", 0, "Number of players, 2-4 (0 = from config)")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting arena level (0 = from config or difficulty)")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := bomber.GameID
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'bomberbug list' to see available modes.")
		os.Exit(1)
	}

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
	bomber.SetArenaOverride(config.ArenaConfig{
		Rows:    flagRows,
		Cols:    flagCols,
		Players: flagPlayers,
		Level:   flagLevel,
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	player := startAudio(ctx)
	defer player.Close()

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open round storage
	store := openStore()

	// Run the game
	runErr := tui.Run(game, store, runtimeConfig())

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
