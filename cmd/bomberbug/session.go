package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/bomberbug/internal/audio"
	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber"
	"github.com/vovakirdan/bomberbug/internal/storage"
)

// setupLogging routes the default logger to --log-file at debug level.
// Without it, logs are discarded: the TUI owns the terminal.
func setupLogging() (cleanup func(), err error) {
	if flagLogFile == "" {
		log.SetDefault(log.New(io.Discard))
		bomber.SetLogger(log.Default())
		return func() {}, nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
	})
	log.SetDefault(logger)
	bomber.SetLogger(logger)
	return func() { f.Close() }, nil
}

// applyGameSettings passes the config path and difficulty to the bomber
// package before games are created.
func applyGameSettings() error {
	if _, ok := config.ParsePreset(flagDifficulty); !ok {
		return fmt.Errorf("unknown difficulty %q (expected easy, normal, hard or fixed)", flagDifficulty)
	}
	bomber.SetConfigPath(flagConfig)
	bomber.SetDifficultyPreset(flagDifficulty)
	return nil
}

// startAudio starts the cue player and subscribes games to it. Audio is
// best effort: on failure the game runs silently.
func startAudio(ctx context.Context) *audio.Player {
	cfg, err := config.LoadBomber(flagConfig)
	if err != nil {
		log.Warn("using default audio settings", "err", err)
		cfg = config.DefaultBomberConfig()
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}

	player := audio.New(cfg.Audio, log.Default())
	if err := player.Start(ctx); err != nil {
		log.Warn("sound disabled", "err", err)
		return player
	}
	bomber.SetSink(player)
	return player
}

// openStore opens the round history. Best effort: games run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open rounds database: %v\n", err)
		return nil
	}
	return store
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}
