package sim

// Cue names a fire-and-forget feedback event. Listeners may ignore any cue
// without affecting the simulation.
type Cue string

const (
	CueBombDropped       Cue = "bomb_dropped"
	CueBombArmed         Cue = "bomb_armed"
	CueTicking           Cue = "ticking"
	CueCountdown3        Cue = "countdown_3"
	CueCountdown2        Cue = "countdown_2"
	CueCountdown1        Cue = "countdown_1"
	CueFireball          Cue = "fireball"
	CueBonusRevealed     Cue = "bonus_revealed"
	CueBonusGotten       Cue = "bonus_gotten"
	CueBugStep           Cue = "bug_step"
	CueDeadBug           Cue = "dead_bug"
	CueHitWall           Cue = "hit_wall"
	CueHitBrick          Cue = "hit_brick"
	CueBump              Cue = "bump"
	CueBlocked           Cue = "blocked"
	CueGameOver          Cue = "game_over"
	CueWatchOutSuperBomb Cue = "watch_out_superbomb"
)

// AllCues lists every cue the simulation can emit.
var AllCues = []Cue{
	CueBombDropped, CueBombArmed, CueTicking,
	CueCountdown3, CueCountdown2, CueCountdown1,
	CueFireball, CueBonusRevealed, CueBonusGotten,
	CueBugStep, CueDeadBug, CueHitWall, CueHitBrick,
	CueBump, CueBlocked, CueGameOver, CueWatchOutSuperBomb,
}

// countdownCues maps a bomb timer value to its countdown cue.
var countdownCues = map[int]Cue{
	3: CueCountdown3,
	2: CueCountdown2,
	1: CueCountdown1,
}

// Event is a single cue emission.
type Event struct {
	Cue   Cue
	Tick  uint64
	Loc   Location
	Actor ActorID
}

// Sink receives cue events. Emit must not block and must not call back
// into the world.
type Sink interface {
	Emit(e Event)
}

// NopSink discards every event.
type NopSink struct{}

// Emit implements Sink.
func (NopSink) Emit(Event) {}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(Event)

// Emit implements Sink.
func (f SinkFunc) Emit(e Event) { f(e) }

// Fanout forwards every event to each sink in order.
type Fanout []Sink

// Emit implements Sink.
func (f Fanout) Emit(e Event) {
	for _, s := range f {
		if s != nil {
			s.Emit(e)
		}
	}
}

// Recorder collects events in memory.
type Recorder struct {
	Events []Event
}

// Emit implements Sink.
func (r *Recorder) Emit(e Event) {
	r.Events = append(r.Events, e)
}

// Count returns how many events with the given cue were recorded.
func (r *Recorder) Count(c Cue) int {
	n := 0
	for _, e := range r.Events {
		if e.Cue == c {
			n++
		}
	}
	return n
}

// Reset drops all recorded events.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
}
