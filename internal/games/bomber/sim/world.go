package sim

import (
	"io"
	"math/rand"
	"sort"

	"github.com/charmbracelet/log"
)

// RoamerSpec configures neutral roamers.
type RoamerSpec struct {
	BugWeight      int // relative chance of RandomBug
	CritterWeight  int // relative chance of RandomCritter
	BlockBugWeight int // relative chance of BlockBug
	BlockEvery     int // BlockBug lays a block every N moves
}

// Options configures a world.
type Options struct {
	Seed       int64
	Sink       Sink        // cue listener; nil means NopSink
	Logger     *log.Logger // nil means discard
	Bomb       BombSpec    // timer and tick scale for every dropped bomb
	MaxBombs   int         // initial bomb cap per agent
	BombRadius int         // initial bomb radius per agent
	Roamers    RoamerSpec
}

// DefaultOptions returns the standard rules.
func DefaultOptions() Options {
	return Options{
		Bomb:       DefaultBombSpec(),
		MaxBombs:   DefaultMaxBombs,
		BombRadius: DefaultBombRadius,
		Roamers: RoamerSpec{
			BugWeight:     85,
			CritterWeight: 15,
			BlockEvery:    1,
		},
	}
}

// normalize fills unset fields with defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.Sink == nil {
		o.Sink = NopSink{}
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if o.Bomb == (BombSpec{}) {
		o.Bomb = d.Bomb
	}
	if o.Bomb.TickScale < 1 {
		o.Bomb.TickScale = d.Bomb.TickScale
	}
	if o.Bomb.Timer < 0 {
		o.Bomb.Timer = 0
	}
	if o.MaxBombs < 1 {
		o.MaxBombs = d.MaxBombs
	}
	if o.BombRadius < 1 {
		o.BombRadius = d.BombRadius
	}
	r := o.Roamers
	if r.BugWeight < 0 {
		r.BugWeight = 0
	}
	if r.CritterWeight < 0 {
		r.CritterWeight = 0
	}
	if r.BlockBugWeight < 0 {
		r.BlockBugWeight = 0
	}
	if r.BugWeight+r.CritterWeight+r.BlockBugWeight == 0 {
		r.BugWeight, r.CritterWeight = d.Roamers.BugWeight, d.Roamers.CritterWeight
	}
	if r.BlockEvery < 1 {
		r.BlockEvery = d.Roamers.BlockEvery
	}
	o.Roamers = r
	return o
}

// Intent is one player's request for a tick.
type Intent struct {
	Player int
	Move   bool
	Dir    Direction
	Bomb   bool
}

// StepResult reports the outcome of a tick.
type StepResult struct {
	Tick   uint64
	Over   bool
	Winner int   // player index of the survivor, -1 if none
	Draw   bool  // round ended with no survivor
	Deaths []int // players removed during this tick
}

// World is one round: the grid, its actors and the tick counter.
// A World is not safe for concurrent use.
type World struct {
	grid    *Grid
	opts    Options
	rng     *rand.Rand
	sink    Sink
	log     *log.Logger
	tick    uint64
	nextID  ActorID
	agents  []*Agent
	intents []Intent
	deaths  []int
	over    bool
	result  StepResult
}

// NewWorld creates an empty world of the given size.
func NewWorld(rows, cols int, opts Options) *World {
	opts = opts.normalize()
	return &World{
		grid: NewGrid(rows, cols),
		opts: opts,
		rng:  rand.New(rand.NewSource(opts.Seed)),
		sink: opts.Sink,
		log:  opts.Logger,
	}
}

// Grid returns the board. Callers must not mutate it directly.
func (w *World) Grid() *Grid { return w.grid }

// Rows returns the number of grid rows.
func (w *World) Rows() int { return w.grid.rows }

// Cols returns the number of grid columns.
func (w *World) Cols() int { return w.grid.cols }

// Tick returns the number of completed steps.
func (w *World) Tick() uint64 { return w.tick }

// Over reports whether the round has ended.
func (w *World) Over() bool { return w.over }

// Result returns the last step result.
func (w *World) Result() StepResult { return w.result }

// SetSink replaces the cue listener.
func (w *World) SetSink(s Sink) {
	if s == nil {
		s = NopSink{}
	}
	w.sink = s
}

func (w *World) emit(c Cue, l Location, id ActorID) {
	w.sink.Emit(Event{Cue: c, Tick: w.tick, Loc: l, Actor: id})
}

// Spawn assigns an ID if needed and puts a detached actor into an empty
// cell. Returns false when the location is invalid or occupied, or the
// actor is already on the grid.
func (w *World) Spawn(a Actor, l Location) bool {
	if a == nil || a.InGrid() || !w.grid.IsValid(l) || w.grid.Get(l) != nil {
		return false
	}
	b := a.base()
	if b.id == 0 {
		w.nextID++
		b.id = w.nextID
	}
	w.grid.Put(l, a)
	b.grid = w.grid
	b.loc = l
	return true
}

// Remove detaches an actor from the grid and runs its removal effects:
// a brick releases its bonus, an agent dies, a block-laying roamer takes
// its blocks with it. Detached actors are ignored.
func (w *World) Remove(a Actor) {
	if a == nil || !a.InGrid() {
		return
	}
	b := a.base()
	if occ := w.grid.Get(b.loc); occ != nil && occ.ID() == b.id {
		w.grid.Remove(b.loc)
	}
	b.grid = nil

	switch v := a.(type) {
	case *Brick:
		if v.bonus != nil {
			bonus := v.bonus
			v.bonus = nil
			if w.Spawn(bonus, b.loc) {
				w.emit(CueBonusRevealed, b.loc, bonus.id)
			}
		}
	case *Agent:
		v.dead = true
		w.deaths = append(w.deaths, v.player)
		w.emit(CueDeadBug, b.loc, v.id)
	case *Roamer:
		for _, id := range v.blocks {
			w.Remove(w.grid.Find(id))
		}
		v.blocks = nil
	}
}

// relocate moves a resident actor to an empty cell.
func (w *World) relocate(a Actor, to Location) {
	b := a.base()
	if occ := w.grid.Get(b.loc); occ != nil && occ.ID() == b.id {
		w.grid.Remove(b.loc)
	}
	w.grid.Put(to, a)
	b.loc = to
}

// AddAgent spawns the next player agent at a location.
// Returns nil when the cell is not free.
func (w *World) AddAgent(l Location) *Agent {
	a := newAgent(len(w.agents), w.opts.MaxBombs, w.opts.BombRadius)
	if !w.Spawn(a, l) {
		return nil
	}
	w.agents = append(w.agents, a)
	return a
}

// AddRoamer spawns a roamer at a location. Returns nil when the cell is
// not free.
func (w *World) AddRoamer(v RoamerVariant, l Location) *Roamer {
	r := &Roamer{Variant: v}
	r.interval = w.roamInterval(v)
	if v == RandomCritter {
		r.counter = w.rng.Intn(r.interval)
	}
	if !w.Spawn(r, l) {
		return nil
	}
	return r
}

func (w *World) roamInterval(v RoamerVariant) int {
	lo, span := v.interval()
	return lo + w.rng.Intn(span)
}

// Agent returns the agent for a player index, or nil.
func (w *World) Agent(player int) *Agent {
	if player < 0 || player >= len(w.agents) {
		return nil
	}
	return w.agents[player]
}

// Agents returns every agent in player order, dead ones included.
func (w *World) Agents() []*Agent {
	out := make([]*Agent, len(w.agents))
	copy(out, w.agents)
	return out
}

// Alive returns the player indexes of resident agents.
func (w *World) Alive() []int {
	out := make([]int, 0, len(w.agents))
	for _, a := range w.agents {
		if a.Alive() {
			out = append(out, a.player)
		}
	}
	return out
}

// Queue records an intent to apply at the start of the next step.
func (w *World) Queue(in Intent) {
	w.intents = append(w.intents, in)
}

// Step advances the round by one tick:
//  1. queued intents, in ascending player order (queue order within a player)
//  2. act on every resident actor once, in ascending ID order; actors
//     created during the sweep first act next tick
//  3. agents and roamers that walked into fire are removed
//  4. the round ends when at most one agent remains
//
// Steps after the round has ended do nothing.
func (w *World) Step() StepResult {
	if w.over {
		w.intents = w.intents[:0]
		return w.result
	}
	w.tick++
	w.deaths = nil

	w.applyIntents()

	actors := w.grid.actors()
	sort.Slice(actors, func(i, j int) bool {
		return actors[i].ID() < actors[j].ID()
	})
	for _, a := range actors {
		if a.InGrid() {
			a.act(w)
		}
	}

	w.burn()

	w.result = StepResult{
		Tick:   w.tick,
		Winner: -1,
		Deaths: w.deaths,
	}
	w.checkRound()
	return w.result
}

func (w *World) applyIntents() {
	if len(w.intents) == 0 {
		return
	}
	sort.SliceStable(w.intents, func(i, j int) bool {
		return w.intents[i].Player < w.intents[j].Player
	})
	for _, in := range w.intents {
		if in.Bomb {
			w.PlaceBomb(in.Player)
		}
		if in.Move {
			w.MoveAgent(in.Player, in.Dir)
		}
	}
	w.intents = w.intents[:0]
}

// burn removes movers that stepped into fire this tick.
func (w *World) burn() {
	for _, a := range w.grid.actors() {
		switch v := a.(type) {
		case *Agent:
			if v.burning {
				w.Remove(v)
			}
		case *Roamer:
			if v.burning {
				w.Remove(v)
			}
		}
	}
}

func (w *World) checkRound() {
	if len(w.agents) == 0 {
		return
	}
	alive := w.Alive()
	if len(alive) > 1 {
		return
	}
	w.over = true
	w.result.Over = true
	if len(alive) == 1 {
		w.result.Winner = alive[0]
	} else {
		w.result.Draw = true
	}
	w.emit(CueGameOver, Location{}, 0)
	w.log.Debug("round over", "tick", w.tick, "winner", w.result.Winner, "draw", w.result.Draw)
}
