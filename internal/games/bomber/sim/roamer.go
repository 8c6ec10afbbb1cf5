package sim

// RoamerVariant selects a neutral roaming behaviour.
type RoamerVariant int

const (
	// RandomBug wanders often.
	RandomBug RoamerVariant = iota
	// RandomCritter wanders rarely.
	RandomCritter
	// BlockBug wanders and leaves bricks or walls behind. Destroying it
	// removes every block it laid.
	BlockBug
)

// String returns the variant name.
func (v RoamerVariant) String() string {
	switch v {
	case RandomBug:
		return "random_bug"
	case RandomCritter:
		return "random_critter"
	case BlockBug:
		return "block_bug"
	default:
		return "unknown"
	}
}

// interval returns the range of ticks between moves as [lo, lo+span).
func (v RoamerVariant) interval() (lo, span int) {
	switch v {
	case RandomCritter:
		return 70, 70
	default:
		return 20, 50
	}
}

// Roamer is a neutral bug that wanders at random. Rays kill it like any
// agent, and it dies when it steps into fire.
type Roamer struct {
	actorBase
	Variant  RoamerVariant
	interval int
	counter  int
	moves    int
	blocks   []ActorID
	burning  bool
}

func (*Roamer) Kind() Kind { return KindRoamer }

// Blocks returns the IDs of blocks this roamer laid that may still stand.
func (r *Roamer) Blocks() []ActorID {
	out := make([]ActorID, len(r.blocks))
	copy(out, r.blocks)
	return out
}

func (r *Roamer) act(w *World) {
	r.counter++
	if r.counter < r.interval {
		return
	}
	r.counter = 0
	r.interval = w.roamInterval(r.Variant)

	for _, i := range w.rng.Perm(len(Directions)) {
		if w.moveRoamer(r, Directions[i]) {
			return
		}
	}
}
