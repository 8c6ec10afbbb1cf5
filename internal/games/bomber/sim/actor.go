package sim

// ActorID identifies an actor within one world. IDs are assigned in
// creation order starting at 1 and are never reused during a round.
type ActorID uint64

// Kind is the logical variant of an actor.
type Kind int

const (
	KindWall Kind = iota
	KindBrick
	KindBonus
	KindFire
	KindBomb
	KindAgent
	KindRoamer
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	case KindBonus:
		return "bonus"
	case KindFire:
		return "fire"
	case KindBomb:
		return "bomb"
	case KindAgent:
		return "agent"
	case KindRoamer:
		return "roamer"
	default:
		return "unknown"
	}
}

// Actor is anything that occupies a grid cell.
// The set of implementations is closed: Wall, Brick, Bonus, Fire, Bomb,
// Agent and Roamer.
type Actor interface {
	ID() ActorID
	Kind() Kind
	Location() Location
	Direction() Direction
	// InGrid reports whether the actor is currently resident on a grid.
	InGrid() bool

	base() *actorBase
	act(w *World)
}

// actorBase holds the state shared by every variant.
type actorBase struct {
	id   ActorID
	grid *Grid
	loc  Location
	dir  Direction
}

func (b *actorBase) ID() ActorID          { return b.id }
func (b *actorBase) Location() Location   { return b.loc }
func (b *actorBase) Direction() Direction { return b.dir }
func (b *actorBase) InGrid() bool         { return b.grid != nil }
func (b *actorBase) base() *actorBase     { return b }

// Wall is indestructible. It blocks movement and absorbs explosion rays.
type Wall struct {
	actorBase
}

// NewWall creates a detached wall.
func NewWall() *Wall {
	return &Wall{}
}

func (*Wall) Kind() Kind    { return KindWall }
func (*Wall) act(_ *World) {}

// Brick is destructible. It may hide one Bonus which takes its place when
// the brick is destroyed.
type Brick struct {
	actorBase
	bonus *Bonus
}

// NewBrick creates a detached brick without a bonus.
func NewBrick() *Brick {
	return &Brick{}
}

func (*Brick) Kind() Kind    { return KindBrick }
func (*Brick) act(_ *World) {}

// Bonus returns the hidden bonus, or nil.
func (b *Brick) Bonus() *Bonus {
	return b.bonus
}

// Hide assigns a detached bonus to the brick. A brick holds at most one
// bonus and a resident bonus cannot be hidden. Returns false otherwise.
func (b *Brick) Hide(bonus *Bonus) bool {
	if b.bonus != nil || bonus == nil || bonus.InGrid() {
		return false
	}
	b.bonus = bonus
	return true
}

// BonusType enumerates the pickup modifiers.
type BonusType int

const (
	ExpandBombRadius BonusType = iota
	AddMoreBombs
	SuperBomb
)

// bonusTypeCount is the number of BonusType values.
const bonusTypeCount = 3

// String returns the bonus name.
func (t BonusType) String() string {
	switch t {
	case ExpandBombRadius:
		return "expand_bomb_radius"
	case AddMoreBombs:
		return "add_more_bombs"
	case SuperBomb:
		return "super_bomb"
	default:
		return "unknown"
	}
}

// Bonus is a pickup. An agent stepping on it consumes it.
// A loose bonus is flammable: explosion rays burn through it.
type Bonus struct {
	actorBase
	Type BonusType
}

// NewBonus creates a detached bonus of the given type.
func NewBonus(t BonusType) *Bonus {
	return &Bonus{Type: t}
}

func (*Bonus) Kind() Kind    { return KindBonus }
func (*Bonus) act(_ *World) {}

// Fire is one cell of an explosion. It only advances its visual stage;
// the owning bomb places and clears it.
type Fire struct {
	actorBase
	stage int
	owner ActorID
}

// maxFireStage is the last visual stage of a fire cell.
const maxFireStage = 2

func newFire(owner ActorID, dir Direction) *Fire {
	return &Fire{owner: owner, actorBase: actorBase{dir: dir}}
}

func (*Fire) Kind() Kind { return KindFire }

// Stage returns the visual stage in 0..2.
func (f *Fire) Stage() int {
	return f.stage
}

// Owner returns the ID of the bomb that spawned this fire.
func (f *Fire) Owner() ActorID {
	return f.owner
}

func (f *Fire) act(_ *World) {
	if f.stage < maxFireStage {
		f.stage++
	}
}
