package sim

// DefaultMaxBombs is how many bombs a fresh agent may have on the grid.
const DefaultMaxBombs = 1

// Agent is a player-controlled bug. It moves only when asked to through
// World.MoveAgent and drops bombs through World.PlaceBomb.
type Agent struct {
	actorBase
	player       int
	maxBombs     int
	bombRadius   int
	superPending bool
	bombPending  bool
	bombs        []ActorID
	burning      bool
	dead         bool
}

func newAgent(player, maxBombs, radius int) *Agent {
	return &Agent{
		player:     player,
		maxBombs:   maxBombs,
		bombRadius: radius,
	}
}

func (*Agent) Kind() Kind { return KindAgent }

// Agents do nothing on their own; intents drive them.
func (*Agent) act(_ *World) {}

// Player returns the zero-based player index.
func (a *Agent) Player() int { return a.player }

// MaxBombs returns how many bombs the agent may have on the grid at once.
func (a *Agent) MaxBombs() int { return a.maxBombs }

// BombRadius returns the radius given to the agent's next bomb.
func (a *Agent) BombRadius() int { return a.bombRadius }

// SuperPending reports whether the next bomb will be a super bomb.
func (a *Agent) SuperPending() bool { return a.superPending }

// BombPending reports whether a drop was requested and awaits a move.
func (a *Agent) BombPending() bool { return a.bombPending }

// Alive reports whether the agent is still on the grid.
func (a *Agent) Alive() bool { return !a.dead && a.grid != nil }

// LiveBombs returns the number of owned bombs still on the grid.
func (a *Agent) LiveBombs(g *Grid) int {
	n := 0
	for _, id := range a.bombs {
		if g.Find(id) != nil {
			n++
		}
	}
	return n
}

// pruneBombs drops owned bomb IDs that are no longer resident.
func (a *Agent) pruneBombs(g *Grid) {
	live := a.bombs[:0]
	for _, id := range a.bombs {
		if g.Find(id) != nil {
			live = append(live, id)
		}
	}
	a.bombs = live
}

// apply grants a bonus modifier. Modifiers never wear off.
func (a *Agent) apply(t BonusType) {
	switch t {
	case ExpandBombRadius:
		a.bombRadius++
	case AddMoreBombs:
		a.maxBombs++
	case SuperBomb:
		a.superPending = true
	}
}
