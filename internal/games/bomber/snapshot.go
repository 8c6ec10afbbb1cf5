package bomber

import (
	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying   GameStateType = "playing"
	StatePaused    GameStateType = "paused"
	StateRoundOver GameStateType = "round_over"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick      uint64
	WorldTick uint64
	Round     int
	Level     int
	Rows      int
	Cols      int
	Alive     []int
	Winner    core.PlayerID
	Wins      [core.MaxSeats]int
	Cells     []sim.CellView
	Agents    []sim.AgentView
	State     GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.roundOver:
		state = StateRoundOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:   g.tick,
		Round:  g.round,
		Level:  g.arena.Level,
		Rows:   g.arena.Rows,
		Cols:   g.arena.Cols,
		Winner: g.winner,
		State:  state,
	}
	for i, p := range core.AllPlayers {
		snap.Wins[i] = g.wins[p]
	}
	if g.world != nil {
		snap.WorldTick = g.world.Tick()
		snap.Alive = g.world.Alive()
		snap.Cells = g.world.Cells()
		snap.Agents = g.world.AgentViews()
	}
	return snap
}
