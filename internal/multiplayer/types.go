// Package multiplayer describes who sits at each seat of a match: a human
// at the shared keyboard or a CPU controller.
package multiplayer

import (
	"fmt"

	"github.com/vovakirdan/bomberbug/internal/core"
)

// PlayerID is an alias to core.PlayerID for convenience.
type PlayerID = core.PlayerID

// SessionID identifies the terminal hosting a match (local TTY or an SSH
// connection).
type SessionID string

// LocalSession is the session ID of the process's own terminal.
const LocalSession SessionID = "local"

// MatchID uniquely identifies a match.
type MatchID string

// MatchMode defines how the seats of a match are filled.
type MatchMode int

const (
	// MatchModeLocal seats every player at the same keyboard.
	MatchModeLocal MatchMode = iota

	// MatchModeVsCPU seats player 1 at the keyboard and CPU controllers
	// everywhere else.
	MatchModeVsCPU
)

// String returns a human-readable name for the match mode.
func (m MatchMode) String() string {
	switch m {
	case MatchModeLocal:
		return "Local"
	case MatchModeVsCPU:
		return "vs CPU"
	default:
		return "Unknown"
	}
}

// Controller says who drives a seat.
type Controller int

const (
	ControllerHuman Controller = iota
	ControllerCPU
)

func (c Controller) String() string {
	if c == ControllerCPU {
		return "CPU"
	}
	return "Human"
}

// Seat is one player slot.
type Seat struct {
	Player     PlayerID
	Controller Controller
}

// Match holds the seat assignment of one session's games.
type Match struct {
	id      MatchID
	mode    MatchMode
	session SessionID
	seats   []Seat
}

// NewMatch creates a match with the given number of seats, clamped to
// 1..core.MaxSeats.
func NewMatch(id MatchID, mode MatchMode, session SessionID, players int) *Match {
	players = core.Clamp(players, 1, core.MaxSeats)
	m := &Match{id: id, mode: mode, session: session}
	for i := 0; i < players; i++ {
		c := ControllerHuman
		if mode == MatchModeVsCPU && i > 0 {
			c = ControllerCPU
		}
		m.seats = append(m.seats, Seat{Player: core.PlayerFromIndex(i), Controller: c})
	}
	return m
}

// ID returns the match identifier.
func (m *Match) ID() MatchID {
	return m.id
}

// Mode returns the match mode.
func (m *Match) Mode() MatchMode {
	return m.mode
}

// Session returns the hosting session.
func (m *Match) Session() SessionID {
	return m.session
}

// Seats returns the seats in player order.
func (m *Match) Seats() []Seat {
	return m.seats
}

// IsCPU reports whether a player is driven by the computer.
func (m *Match) IsCPU(p PlayerID) bool {
	for _, s := range m.seats {
		if s.Player == p {
			return s.Controller == ControllerCPU
		}
	}
	return false
}

// Humans returns the number of keyboard seats.
func (m *Match) Humans() int {
	n := 0
	for _, s := range m.seats {
		if s.Controller == ControllerHuman {
			n++
		}
	}
	return n
}

func (m *Match) String() string {
	return fmt.Sprintf("%s %s (%d seats)", m.id, m.mode, len(m.seats))
}

// GameSnapshot is the minimal per-frame state the platform reads after a
// step: enough to show round results without knowing the game.
type GameSnapshot struct {
	Tick   uint64
	Round  int
	Level  int
	Alive  []PlayerID
	Over   bool
	Winner PlayerID // 0 for a draw or while playing
	Wins   map[PlayerID]int
}
