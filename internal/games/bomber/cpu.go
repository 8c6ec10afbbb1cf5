package bomber

import (
	"math/rand"

	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
)

// dangerRange is how far (in cells, same row or column) the CPU looks for
// bombs to run from.
const dangerRange = 4

// cpuController drives one agent with randomized moves. It never reads
// hidden state: only what a player sees on screen.
type cpuController struct {
	player  int
	every   int     // ticks between decisions
	chance  float64 // chance to bomb when next to a target
	counter int
}

func newCPU(player, every int, chance float64, rng *rand.Rand) *cpuController {
	if every < 1 {
		every = 1
	}
	// Stagger CPUs so they don't all move on the same tick.
	return &cpuController{player: player, every: every, chance: chance, counter: rng.Intn(every)}
}

// decide returns the intent for this tick, if any.
func (c *cpuController) decide(w *sim.World, rng *rand.Rand) (sim.Intent, bool) {
	a := w.Agent(c.player)
	if a == nil || !a.Alive() {
		return sim.Intent{}, false
	}
	c.counter++
	if c.counter < c.every {
		return sim.Intent{}, false
	}
	c.counter = 0

	here := a.Location()
	bombs := nearbyBombs(w, here)
	moves := c.safeMoves(w, here, bombs)
	if len(moves) == 0 {
		return sim.Intent{}, false
	}

	in := sim.Intent{Player: c.player, Move: true, Dir: moves[rng.Intn(len(moves))]}
	for _, d := range moves {
		if v, ok := w.CellAt(here.Adjacent(d)); ok && v.Kind == sim.KindBonus {
			in.Dir = d
			break
		}
	}

	// Only bomb with a way out; the bomb lands on the cell being left.
	if len(bombs) == 0 && nextToTarget(w, here, c.player) &&
		a.LiveBombs(w.Grid()) < a.MaxBombs() && rng.Float64() < c.chance {
		in.Bomb = true
	}
	return in, true
}

// safeMoves lists directions onto walkable, non-burning cells, preferring
// those that step out of a bomb's line.
func (*cpuController) safeMoves(w *sim.World, here sim.Location, bombs []sim.Location) []sim.Direction {
	var walkable, clear []sim.Direction
	for _, d := range sim.Directions {
		to := here.Adjacent(d)
		if !w.Grid().IsValid(to) {
			continue
		}
		if v, ok := w.CellAt(to); ok && v.Kind != sim.KindBonus {
			continue
		}
		walkable = append(walkable, d)
		if !inLine(to, bombs) {
			clear = append(clear, d)
		}
	}
	if len(clear) > 0 {
		return clear
	}
	return walkable
}

func nearbyBombs(w *sim.World, here sim.Location) []sim.Location {
	var out []sim.Location
	for _, v := range w.Cells() {
		if v.Kind != sim.KindBomb {
			continue
		}
		if v.Loc.Row == here.Row && abs(v.Loc.Col-here.Col) <= dangerRange ||
			v.Loc.Col == here.Col && abs(v.Loc.Row-here.Row) <= dangerRange {
			out = append(out, v.Loc)
		}
	}
	return out
}

func inLine(l sim.Location, bombs []sim.Location) bool {
	for _, b := range bombs {
		if b.Row == l.Row || b.Col == l.Col {
			return true
		}
	}
	return false
}

// nextToTarget reports a brick or another agent next to here.
func nextToTarget(w *sim.World, here sim.Location, self int) bool {
	for _, d := range sim.Directions {
		v, ok := w.CellAt(here.Adjacent(d))
		if !ok {
			continue
		}
		if v.Kind == sim.KindBrick || v.Kind == sim.KindAgent && v.Player != self {
			return true
		}
	}
	return false
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
