package multiplayer

import (
	"testing"

	"github.com/vovakirdan/bomberbug/internal/core"
)

func TestNewMatchSeats(t *testing.T) {
	tests := []struct {
		name    string
		mode    MatchMode
		players int
		seats   int
		humans  int
	}{
		{"local two", MatchModeLocal, 2, 2, 2},
		{"local four", MatchModeLocal, 4, 4, 4},
		{"vs cpu three", MatchModeVsCPU, 3, 3, 1},
		{"clamped low", MatchModeLocal, 0, 1, 1},
		{"clamped high", MatchModeVsCPU, 9, core.MaxSeats, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := NewMatch("m", tc.mode, LocalSession, tc.players)
			if len(m.Seats()) != tc.seats {
				t.Errorf("seats = %d, expected %d", len(m.Seats()), tc.seats)
			}
			if m.Humans() != tc.humans {
				t.Errorf("humans = %d, expected %d", m.Humans(), tc.humans)
			}
			for i, s := range m.Seats() {
				if s.Player != core.PlayerFromIndex(i) {
					t.Errorf("seat %d has player %v", i, s.Player)
				}
			}
		})
	}
}

func TestIsCPU(t *testing.T) {
	m := NewMatch("m", MatchModeVsCPU, LocalSession, 2)
	if m.IsCPU(core.Player1) {
		t.Error("player 1 should be human")
	}
	if !m.IsCPU(core.Player2) {
		t.Error("player 2 should be CPU")
	}
	if m.IsCPU(core.Player4) {
		t.Error("an empty seat is not a CPU")
	}
}

func TestMatchString(t *testing.T) {
	m := NewMatch("bomber-1", MatchModeLocal, LocalSession, 3)
	if got := m.String(); got != "bomber-1 Local (3 seats)" {
		t.Errorf("String() = %q", got)
	}
	if m.Mode().String() != "Local" || MatchModeVsCPU.String() != "vs CPU" {
		t.Error("unexpected mode names")
	}
	if ControllerCPU.String() != "CPU" || ControllerHuman.String() != "Human" {
		t.Error("unexpected controller names")
	}
}
