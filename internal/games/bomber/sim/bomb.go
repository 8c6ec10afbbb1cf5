package sim

// BombState is a stage of the bomb lifecycle.
type BombState int

const (
	BombArmed BombState = iota
	BombDetonating
	BombCleared
)

// String returns the state name.
func (s BombState) String() string {
	switch s {
	case BombArmed:
		return "armed"
	case BombDetonating:
		return "detonating"
	case BombCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// Default bomb parameters.
const (
	DefaultBombTimer     = 4
	DefaultBombTickScale = 40
	DefaultBombRadius    = 2
)

// BombSpec configures a new bomb.
type BombSpec struct {
	Timer     int  // countdown units before detonation
	TickScale int  // world ticks per countdown unit
	Radius    int  // pass-through hops per ray
	Super     bool // rays burn through every non-wall occupant
}

// DefaultBombSpec returns the standard bomb parameters.
func DefaultBombSpec() BombSpec {
	return BombSpec{
		Timer:     DefaultBombTimer,
		TickScale: DefaultBombTickScale,
		Radius:    DefaultBombRadius,
	}
}

// Bomb is a timed explosive. While armed it counts down; once detonating
// it extends four rays one invocation per tick until every ray is
// finished, then clears its fire and leaves the grid in the same tick.
type Bomb struct {
	actorBase
	timer     int
	tickScale int
	step      int
	radius    int
	super     bool
	state     BombState
	finished  [4]bool
	fire      []Location
	owner     ActorID
}

// NewBomb creates a detached armed bomb.
func NewBomb(spec BombSpec, owner ActorID) *Bomb {
	if spec.TickScale < 1 {
		spec.TickScale = 1
	}
	if spec.Radius < 1 {
		spec.Radius = 1
	}
	return &Bomb{
		timer:     spec.Timer,
		tickScale: spec.TickScale,
		radius:    spec.Radius,
		super:     spec.Super,
		owner:     owner,
	}
}

func (*Bomb) Kind() Kind { return KindBomb }

// State returns the lifecycle stage.
func (b *Bomb) State() BombState { return b.state }

// Timer returns the remaining countdown units.
func (b *Bomb) Timer() int { return b.timer }

// Radius returns the pass-through hop limit.
func (b *Bomb) Radius() int { return b.radius }

// IsSuper reports whether the bomb burns through non-wall obstacles.
func (b *Bomb) IsSuper() bool { return b.super }

// Owner returns the ID of the agent that dropped the bomb, zero if none.
func (b *Bomb) Owner() ActorID { return b.owner }

// Finished reports whether the ray in the given direction is done.
func (b *Bomb) Finished(d Direction) bool { return b.finished[d.Index()] }

// Fire returns the locations of fire this bomb spawned.
func (b *Bomb) Fire() []Location {
	out := make([]Location, len(b.fire))
	copy(out, b.fire)
	return out
}

func (b *Bomb) act(w *World) {
	switch b.state {
	case BombArmed:
		b.step++
		if b.step >= b.tickScale {
			b.step = 0
			b.timer--
			if cue, ok := countdownCues[b.timer]; ok && !b.super {
				w.emit(cue, b.loc, b.id)
			}
		}
		if b.timer < 0 {
			b.Detonate(w)
			b.extendAll(w)
		}
	case BombDetonating:
		if b.allFinished() {
			b.clear(w)
			return
		}
		b.extendAll(w)
	}
}

// Detonate switches an armed bomb to detonating. A bomb whose own timer
// ran out extends its rays in the same act; a bomb chained by another ray
// extends on its own act, which may fall in the next tick. Calling it on a
// bomb that is not armed does nothing.
func (b *Bomb) Detonate(w *World) {
	if b.state != BombArmed || b.grid == nil {
		return
	}
	b.state = BombDetonating
	w.emit(CueFireball, b.loc, b.id)
}

func (b *Bomb) allFinished() bool {
	for _, f := range b.finished {
		if !f {
			return false
		}
	}
	return true
}

func (b *Bomb) extendAll(w *World) {
	for _, d := range rayOrder {
		b.Extend(w, d)
	}
}

// clear removes every fire this bomb still owns and then the bomb itself.
func (b *Bomb) clear(w *World) {
	g := b.grid
	for _, l := range b.fire {
		if f, ok := g.Get(l).(*Fire); ok && f.owner == b.id {
			w.Remove(f)
		}
	}
	b.fire = nil
	b.state = BombCleared
	w.Remove(b)
}

// passable reports whether a ray continues through an occupant.
// Fire and loose bonuses always let it through; a super bomb also burns
// through everything except walls and other bombs.
func (b *Bomb) passable(a Actor) bool {
	switch a.(type) {
	case *Fire, *Bonus:
		return true
	case *Wall, *Bomb:
		return false
	default:
		return b.super
	}
}

// Extend advances the ray in one direction by a single invocation.
// The walk restarts at the bomb and passes through at most radius-1
// pass-through occupants before reaching the frontier cell, so a ray
// covers at most radius cells. A finished direction is left untouched.
func (b *Bomb) Extend(w *World, d Direction) {
	i := d.Index()
	if b.finished[i] || b.state != BombDetonating || b.grid == nil {
		return
	}
	g := b.grid
	next := b.loc.Adjacent(d)
	if !g.IsValid(next) {
		b.finished[i] = true
		return
	}
	occ := g.Get(next)

	for hops := 1; occ != nil && b.passable(occ) && hops < b.radius; hops++ {
		if f, ok := occ.(*Fire); ok {
			f.stage = maxFireStage
		} else if !b.burn(w, next, d) {
			// a released bonus stops the ray
			b.finished[i] = true
			return
		}
		next = next.Adjacent(d)
		if !g.IsValid(next) {
			b.finished[i] = true
			return
		}
		occ = g.Get(next)
	}

	switch o := occ.(type) {
	case nil:
		b.placeFire(w, next, d, 0)
		return
	case *Wall:
		// absorbed
	case *Bomb:
		o.Detonate(w)
	case *Fire:
		if o.owner != b.id {
			w.Remove(o)
			b.placeFire(w, next, d, 0)
		}
	default:
		w.Remove(o)
		if g.Get(next) == nil {
			b.placeFire(w, next, d, 0)
		}
	}
	b.finished[i] = true
}

// burn destroys a flammable occupant and replaces it with a middle fire.
// Returns false when destroying it released a bonus into the cell.
func (b *Bomb) burn(w *World, l Location, d Direction) bool {
	occ := b.grid.Get(l)
	w.Remove(occ)
	if b.grid.Get(l) != nil {
		return false
	}
	b.placeFire(w, l, d, maxFireStage)
	return true
}

func (b *Bomb) placeFire(w *World, l Location, d Direction, stage int) {
	f := newFire(b.id, d)
	f.stage = stage
	if w.Spawn(f, l) {
		b.fire = append(b.fire, l)
	}
}
