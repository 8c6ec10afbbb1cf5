package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/multiplayer"
)

// ArenaSize is a named arena dimension.
type ArenaSize struct {
	Name string
	Rows int
	Cols int
}

// ArenaSizes lists the arena sizes offered by the setup menu.
var ArenaSizes = []ArenaSize{
	{"Small", 9, 11},
	{"Medium", 11, 15},
	{"Large", 13, 21},
}

// Setup menu rows.
const (
	setupPlayers = iota
	setupLevel
	setupArena
	setupDifficulty
	setupStart
	setupRows
)

// SetupSelection holds the user's choices from the setup menu.
type SetupSelection struct {
	Arena  config.ArenaConfig
	Preset config.DifficultyPreset
}

// configurable is implemented by games that accept a per-game setup.
type configurable interface {
	Setup(arena config.ArenaConfig, preset string)
}

// Apply passes the selection to the game if it accepts one.
func (s SetupSelection) Apply(g any) {
	if c, ok := g.(configurable); ok {
		c.Setup(s.Arena, string(s.Preset))
	}
}

// SetupModel lets users choose players, level, arena size and difficulty
// before a game starts.
type SetupModel struct {
	title     string
	mode      multiplayer.MatchMode
	cursor    int
	players   int // 2..MaxSeats, CPU seats included
	level     int // 0 = the difficulty's start level
	size      int // index into ArenaSizes
	preset    int // index into config.Presets
	width     int
	height    int
	keyMapper *KeyMapper
	choosing  bool
	quitting  bool
	back      bool
}

// NewSetupModel creates a setup menu for a game title and match mode.
func NewSetupModel(title string, mode multiplayer.MatchMode, width, height int) SetupModel {
	return SetupModel{
		title:     title,
		mode:      mode,
		cursor:    setupStart,
		players:   2,
		size:      1,
		preset:    1,
		width:     width,
		height:    height,
		keyMapper: NewKeyMapper(1),
		choosing:  true,
	}
}

// Init initializes the model.
func (m SetupModel) Init() tea.Cmd {
	return nil
}

// Update handles messages.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}
	return m, nil
}

func (m SetupModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}
	case MenuActionDown:
		if m.cursor < setupRows-1 {
			m.cursor++
		}
	case MenuActionLeft:
		m.adjust(-1)
	case MenuActionRight:
		m.adjust(1)
	case MenuActionSelect:
		if m.cursor == setupStart {
			m.choosing = false
			return m, tea.Quit
		}
		m.adjust(1)
	case MenuActionBack:
		m.back = true
		return m, tea.Quit
	}
	return m, nil
}

// adjust changes the value under the cursor, wrapping around.
func (m *SetupModel) adjust(delta int) {
	wrap := func(v, n int) int { return ((v % n) + n) % n }

	switch m.cursor {
	case setupPlayers:
		m.players = 2 + wrap(m.players-2+delta, core.MaxSeats-1)
	case setupLevel:
		m.level = wrap(m.level+delta, 10)
	case setupArena:
		m.size = wrap(m.size+delta, len(ArenaSizes))
	case setupDifficulty:
		m.preset = wrap(m.preset+delta, len(config.Presets))
	}
}

// View renders the setup menu.
func (m SetupModel) View() string {
	if m.quitting || m.back {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(strings.ToUpper(m.title), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Game setup", m.width))
	b.WriteString("\n\n")

	playersLabel := fmt.Sprintf("Players:     < %d >", m.players)
	if m.mode == multiplayer.MatchModeVsCPU {
		playersLabel = fmt.Sprintf("Opponents:   < %d >", m.players-1)
	}
	levelLabel := "Level:       < auto >"
	if m.level > 0 {
		levelLabel = fmt.Sprintf("Level:       < %d >", m.level)
	}
	size := ArenaSizes[m.size]
	rows := []string{
		playersLabel,
		levelLabel,
		fmt.Sprintf("Arena:       < %s %dx%d >", size.Name, size.Rows, size.Cols),
		fmt.Sprintf("Difficulty:  < %s >", config.Presets[m.preset]),
		"Start",
	}

	for i, row := range rows {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		b.WriteString(centerText(fmt.Sprintf("%s%-24s", cursor, row), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.mode == multiplayer.MatchModeVsCPU {
		b.WriteString(centerText("You: "+Bindings(core.Player1), m.width))
		b.WriteString("\n")
	} else {
		for i := 0; i < m.players; i++ {
			p := core.PlayerFromIndex(i)
			b.WriteString(centerText(fmt.Sprintf("%s: %s", p, Bindings(p)), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(centerText("Left/Right: Change  |  Enter: Start  |  Esc: Back  |  Q: Quit", m.width))

	return b.String()
}

// Selection returns the current choices.
func (m SetupModel) Selection() SetupSelection {
	size := ArenaSizes[m.size]
	return SetupSelection{
		Arena: config.ArenaConfig{
			Rows:    size.Rows,
			Cols:    size.Cols,
			Players: m.players,
			Level:   m.level,
		},
		Preset: config.Presets[m.preset],
	}
}

// Selected returns the selection, or nil if still choosing.
func (m SetupModel) Selected() *SetupSelection {
	if m.choosing {
		return nil
	}
	sel := m.Selection()
	return &sel
}

// IsQuitting returns true if user wants to quit.
func (m SetupModel) IsQuitting() bool {
	return m.quitting
}

// WantsBack returns true if user pressed back.
func (m SetupModel) WantsBack() bool {
	return m.back
}

// RunSetup runs the setup menu and returns the selection, or nil when the
// user backs out or quits.
func RunSetup(title string, mode multiplayer.MatchMode, cfg core.RuntimeConfig) (*SetupSelection, error) {
	model := NewSetupModel(title, mode, cfg.ScreenW, cfg.ScreenH)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(SetupModel)
	if !ok || m.IsQuitting() || m.WantsBack() {
		return nil, nil
	}

	return m.Selected(), nil
}
