// bomberbug is a terminal grid game: up to four bugs share an arena of
// walls and bricks and try to blow each other up.
//
// Usage:
//
//	bomberbug list              - List available game modes
//	bomberbug play [mode]       - Play a mode directly (default: bomber)
//	bomberbug menu              - Start menu to pick a mode and set up the arena
//	bomberbug serve             - Start SSH server for remote play
//	bomberbug scores [mode]     - Show round history for a mode
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible rounds
//	--db <path>          - Set database path (default: ~/.bomberbug/rounds.db)
//	--config <path>      - Use a custom bomber.yaml
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--mute               - Disable sound
//	--log-file <path>    - Write debug logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/bomberbug/internal/games/bomber"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagMute       bool
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "bomberbug",
	Short: "BomberBug - blow up your friends in the terminal",
	Long: `BomberBug is a grid game for up to four players at one keyboard.
Drop bombs, break bricks for bonuses and be the last bug standing.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive menu with arena setup
  serve    - Start SSH server for remote play
  scores   - View round history

Examples:
  bomberbug list
  bomberbug play --players 3
  bomberbug play bomber_cpu --difficulty hard
  bomberbug menu
  bomberbug serve --ssh :2222
  bomberbug scores bomber`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.bomberbug/rounds.db", "Path to round history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom bomber config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable sound")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write debug logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
