package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber"
	"github.com/vovakirdan/bomberbug/internal/registry"
	"github.com/vovakirdan/bomberbug/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [mode]",
	Short: "Show round history for a mode",
	Long: `Display the most recent rounds and the win tally for a mode.

Examples:
  bomberbug scores
  bomberbug scores bomber_cpu --limit 25
  bomberbug scores bomber --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the mode's round history")
}

func runScores(_ *cobra.Command, args []string) {
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

	// Get game title
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	title := game.Title()

	// Open round storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rounds database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing rounds: %v\n", err)
			return
		}
		fmt.Printf("Cleared round history for %s.\n", title)
		return
	}

	rounds, err := store.RecentRounds(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rounds: %v\n", err)
		return
	}

	// Display rounds
	fmt.Printf("Round History - %s\n", title)
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'bomberbug play %s' and finish a round!\n", gameID)
		return
	}

	// Print header
	fmt.Printf("  %-5s  %-5s  %-7s  %-7s  %-6s  %s\n", "Round", "Level", "Players", "Winner", "Ticks", "Date")
	fmt.Printf("  %-5s  %-5s  %-7s  %-7s  %-6s  %s\n", "-----", "-----", "-------", "------", "-----", "----")

	// Print rounds
	for _, r := range rounds {
		winner := "Draw"
		if !r.Draw && r.Winner > 0 {
			winner = bomber.SeatName(core.PlayerID(r.Winner))
		}
		dateStr := r.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-5d  %-5d  %-7d  %-7s  %-6d  %s\n", r.Round, r.Level, r.Players, winner, r.Ticks, dateStr)
	}

	// Show tally and totals
	fmt.Println()
	if tally, err := store.WinTally(gameID); err == nil {
		fmt.Print("Wins:")
		for _, p := range core.AllPlayers {
			fmt.Printf("  %s %d", bomber.SeatName(p), tally[int(p)])
		}
		fmt.Println()
	}
	if stats, err := store.GetRoundStats(gameID); err == nil {
		fmt.Printf("Rounds: %d  Draws: %d  Highest level: %d  Longest round: %d ticks\n",
			stats.RoundsCount, stats.Draws, stats.MaxLevel, stats.LongestTick)
	}
}
