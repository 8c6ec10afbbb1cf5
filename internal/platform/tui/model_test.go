package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomberbug/internal/config"
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber"
	"github.com/vovakirdan/bomberbug/internal/multiplayer"
	"github.com/vovakirdan/bomberbug/internal/storage"
)

// useDefaultConfig points the game at the embedded defaults.
func useDefaultConfig(t *testing.T) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bomber.yaml")
	if err := os.WriteFile(path, config.GetDefaultYAML(bomber.GameID), 0o644); err != nil {
		t.Fatal(err)
	}
	bomber.SetConfigPath(path)
	t.Cleanup(func() { bomber.SetConfigPath("") })
}

func send(m GameModel, msg tea.Msg) GameModel {
	next, _ := m.Update(msg)
	return next.(GameModel)
}

func TestSetupMenuAdjust(t *testing.T) {
	m := NewSetupModel("BomberBug", multiplayer.MatchModeLocal, 80, 24)
	press := func(k tea.KeyMsg) {
		next, _ := m.Update(k)
		m = next.(SetupModel)
	}

	// Cursor starts on Start; go up to Players
	for i := 0; i < setupStart; i++ {
		press(tea.KeyMsg{Type: tea.KeyUp})
	}
	press(tea.KeyMsg{Type: tea.KeyRight})
	press(tea.KeyMsg{Type: tea.KeyRight})
	if sel := m.Selection(); sel.Arena.Players != 4 {
		t.Errorf("players = %d, expected 4", sel.Arena.Players)
	}
	press(tea.KeyMsg{Type: tea.KeyRight})
	if sel := m.Selection(); sel.Arena.Players != 2 {
		t.Errorf("players should wrap to 2, got %d", sel.Arena.Players)
	}

	press(tea.KeyMsg{Type: tea.KeyDown}) // Level
	press(tea.KeyMsg{Type: tea.KeyLeft})
	press(tea.KeyMsg{Type: tea.KeyDown}) // Arena
	press(tea.KeyMsg{Type: tea.KeyLeft})
	press(tea.KeyMsg{Type: tea.KeyDown}) // Difficulty
	press(tea.KeyMsg{Type: tea.KeyRight})

	if m.Selected() != nil {
		t.Fatal("should still be choosing")
	}
	press(tea.KeyMsg{Type: tea.KeyDown})
	press(tea.KeyMsg{Type: tea.KeyEnter})

	sel := m.Selected()
	if sel == nil {
		t.Fatal("expected a selection after Start")
	}
	want := config.ArenaConfig{Rows: 9, Cols: 11, Players: 2, Level: 9}
	if sel.Arena != want || sel.Preset != config.DifficultyHard {
		t.Errorf("selection = %+v, expected %+v hard", *sel, want)
	}
}

func TestSetupMenuView(t *testing.T) {
	m := NewSetupModel("BomberBug (vs CPU)", multiplayer.MatchModeVsCPU, 80, 24)
	view := m.View()
	for _, want := range []string{"Opponents:", "< 1 >", "Medium 11x15", "normal", Bindings(core.Player1)} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestSetupApply(t *testing.T) {
	useDefaultConfig(t)
	g := bomber.New()
	SetupSelection{
		Arena:  config.ArenaConfig{Rows: 9, Cols: 11, Players: 3},
		Preset: config.DifficultyEasy,
	}.Apply(g)
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24})

	if n := len(g.Match().Seats()); n != 3 {
		t.Errorf("seats = %d, expected 3", n)
	}
	if g.State().Level != 1 {
		t.Errorf("easy should start at level 1, got %d", g.State().Level)
	}
}

func TestGameModelPause(t *testing.T) {
	useDefaultConfig(t)
	m := NewGameModel(bomber.New(), nil, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})

	// Esc pauses a running round instead of leaving it
	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	m = send(m, TickMsg{})
	if !m.State().Paused || m.BackToMenu() {
		t.Fatalf("expected paused, got %+v back=%v", m.State(), m.BackToMenu())
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc on a paused round should go back to the menu")
	}
}

func TestGameModelSavesRound(t *testing.T) {
	useDefaultConfig(t)
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	g := bomber.New()
	m := NewGameModel(g, store, core.RuntimeConfig{Seed: 5, ScreenW: 80, ScreenH: 24, TickRate: 60})

	w := g.World()
	for _, a := range w.Agents() {
		if a.Player() != 0 {
			w.Remove(a)
		}
	}
	m = send(m, TickMsg{})
	m = send(m, TickMsg{})

	if !m.State().GameOver {
		t.Fatal("expected the round to be over")
	}
	rounds, err := store.RecentRounds(bomber.GameID, 10)
	if err != nil {
		t.Fatal(err)
	}
	if len(rounds) != 1 {
		t.Fatalf("expected exactly one saved round, got %d", len(rounds))
	}
	if rounds[0].Winner != 1 || rounds[0].Round != 1 {
		t.Errorf("unexpected round record: %+v", rounds[0])
	}
}

func TestGameModelView(t *testing.T) {
	useDefaultConfig(t)
	m := NewGameModel(bomber.New(), nil, core.RuntimeConfig{Seed: 1, ScreenW: 80, ScreenH: 24, TickRate: 60})
	if view := m.View(); !strings.Contains(view, "BomberBug") {
		t.Error("view should show the title")
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || m.View() != "" {
		t.Error("ctrl+c should quit and clear the view")
	}
}

func TestScoreboardShowsRounds(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "rounds.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer store.Close()

	for _, r := range []storage.RoundRecord{
		{GameID: bomber.GameID, Round: 1, Level: 2, Players: 2, Winner: 2, Ticks: 300},
		{GameID: bomber.GameID, Round: 2, Level: 3, Players: 2, Draw: true, Ticks: 410},
	} {
		if _, err := store.SaveRound(r); err != nil {
			t.Fatal(err)
		}
	}

	m := NewScoreboardModel(store, 60, 30)
	if len(m.rounds) != 2 {
		t.Fatalf("expected 2 rounds, got %d", len(m.rounds))
	}
	if got := m.tallyLine(); got != "Wins: Blue 1" {
		t.Errorf("tallyLine() = %q", got)
	}
	if got := winnerName(m.rounds[0]); got != "Draw" {
		t.Errorf("latest round winner = %q, expected Draw", got)
	}

	view := m.View()
	if !strings.Contains(view, "ROUND HISTORY") {
		t.Error("view should show the title")
	}
}
