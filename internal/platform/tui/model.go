package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber"
	"github.com/vovakirdan/bomberbug/internal/multiplayer"
	"github.com/vovakirdan/bomberbug/internal/registry"
	"github.com/vovakirdan/bomberbug/internal/storage"
)

// roundReporter is implemented by games that report finished rounds.
type roundReporter interface {
	LastRound() (bomber.RoundResult, bool)
}

// seated is implemented by games that know their seat assignment.
type seated interface {
	Match() *multiplayer.Match
}

// GameModel is the Bubble Tea model for running a game, both from the
// local terminal and inside an SSH session.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.MultiInputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	standalone bool // Esc leaves the program instead of returning to a menu
	quitting   bool
	backToMenu bool
	roundSaved bool // Whether the current finished round has been saved
}

// NewGameModel creates a game model and starts the game's first round.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	game.Reset(cfg)

	humans := 1
	if s, ok := game.(seated); ok {
		humans = s.Match().Humans()
	}

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewMultiInputFrame(),
		gameState:  game.State(),
		keyMapper:  NewKeyMapper(humans),
	}
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		// The round keeps running; the game draws a notice when the arena
		// no longer fits.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil
	case TickMsg:
		return m.handleTick()
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	player, action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Esc leaves a finished or paused round, and pauses a running one
	if action == core.ActionBack {
		if !m.gameState.GameOver && !m.gameState.Paused {
			m.inputFrame.Set(player, core.ActionPause)
			return m, nil
		}
		if m.standalone {
			m.quitting = true
			return m, tea.Quit
		}
		m.backToMenu = true
		return m, nil
	}

	if action != core.ActionNone {
		m.inputFrame.Set(player, action)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	// Save each finished round once
	if m.gameState.GameOver && !m.roundSaved {
		m.saveRound()
		m.roundSaved = true
	} else if !m.gameState.GameOver {
		m.roundSaved = false
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRound stores the last finished round. Best effort: the game goes on
// without a database.
func (m *GameModel) saveRound() {
	r, ok := m.game.(roundReporter)
	if !ok || m.store == nil {
		return
	}
	res, ok := r.LastRound()
	if !ok {
		return
	}
	_, err := m.store.SaveRound(storage.RoundRecord{
		GameID:  m.game.ID(),
		Round:   res.Round,
		Level:   res.Level,
		Players: res.Players,
		Winner:  int(res.Winner),
		Draw:    res.Draw,
		Ticks:   res.Ticks,
	})
	if err != nil {
		log.Debug("could not save round", "game", m.game.ID(), "err", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	base, err := config.DataDir()
	if err != nil {
		return
	}
	dir := filepath.Join(base, "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the game state after the last tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game. Esc on a finished
// or paused round exits.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewGameModel(game, store, cfg)
	model.standalone = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
