package sim

import (
	"math/rand"
	"testing"
)

// checkOccupancy verifies the grid and every actor agree on positions.
func checkOccupancy(t *testing.T, w *World) {
	t.Helper()
	g := w.Grid()
	seen := make(map[ActorID]bool)
	for _, l := range g.Occupied() {
		a := g.Get(l)
		if seen[a.ID()] {
			t.Fatalf("tick %d: actor %d occupies two cells", w.Tick(), a.ID())
		}
		seen[a.ID()] = true
		if a.Location() != l || !a.InGrid() {
			t.Fatalf("tick %d: actor %d at %v believes it is at %v", w.Tick(), a.ID(), l, a.Location())
		}
		if g.Find(a.ID()) != a {
			t.Fatalf("tick %d: index lost actor %d", w.Tick(), a.ID())
		}
	}
	if g.Len() != len(seen) {
		t.Fatalf("tick %d: index holds %d actors, grid holds %d", w.Tick(), g.Len(), len(seen))
	}
}

func TestEndToEndTwoPlayerRound(t *testing.T) {
	rec := &Recorder{}
	opts := DefaultOptions()
	opts.Seed = 7
	opts.Sink = rec
	w := BuildArena(ArenaConfig{Rows: 5, Cols: 5, Players: 2, Level: 1}, opts)

	// clear the random bricks so the path is known
	for _, c := range w.Cells() {
		if c.Kind == KindBrick {
			w.Remove(w.Grid().Get(c.Loc))
		}
	}

	a, b := w.Agent(0), w.Agent(1)
	if a.Location() != Loc(0, 0) || b.Location() != Loc(4, 4) {
		t.Fatalf("agents should spawn in opposite corners, got %v and %v", a.Location(), b.Location())
	}

	path := []Direction{South, South, South, South, East, East}
	for _, d := range path {
		if !w.MoveAgent(0, d) {
			t.Fatalf("move %v from %v was rejected", d, a.Location())
		}
	}
	if !w.PlaceBomb(0) {
		t.Fatal("bomb request rejected")
	}
	for _, d := range []Direction{West, West, North, North} {
		if !w.MoveAgent(0, d) {
			t.Fatalf("escape move %v from %v was rejected", d, a.Location())
		}
	}
	if _, ok := w.Grid().Get(Loc(4, 2)).(*Bomb); !ok {
		t.Fatal("bomb should be armed at (4,2)")
	}

	var res StepResult
	for i := 0; i < 400 && !res.Over; i++ {
		res = w.Step()
	}

	if b.Alive() {
		t.Fatal("player 1 should be caught by the blast")
	}
	if !a.Alive() {
		t.Fatal("player 0 should have escaped")
	}
	if !res.Over || res.Draw || res.Winner != 0 {
		t.Errorf("player 0 should be the sole winner, got %+v", res)
	}
	if rec.Count(CueGameOver) != 1 {
		t.Errorf("expected one game_over cue, got %d", rec.Count(CueGameOver))
	}
}

func TestStepAfterRoundOverIsNoop(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(2, 4))
	armBomb(t, w, Loc(2, 3), BombSpec{Timer: 0, TickScale: 1, Radius: 2})
	first := w.Step()
	if !first.Over {
		t.Fatal("round should end")
	}

	tick := w.Tick()
	cells := len(w.Cells())
	again := w.Step()

	if w.Tick() != tick || len(w.Cells()) != cells {
		t.Error("step after the round ended mutated the world")
	}
	if again.Winner != first.Winner {
		t.Error("result should stay the same")
	}
	if rec.Count(CueGameOver) != 1 {
		t.Error("game_over should fire once")
	}
	if w.MoveAgent(0, West) {
		t.Error("moves are rejected after the round ended")
	}
}

func TestDrawWhenLastAgentsDieTogether(t *testing.T) {
	w, _ := twoAgents(t, 1, 5, Loc(0, 1), Loc(0, 3))
	armBomb(t, w, Loc(0, 2), BombSpec{Timer: 0, TickScale: 1, Radius: 2})

	res := w.Step()
	if !res.Over || !res.Draw || res.Winner != -1 {
		t.Errorf("expected a draw, got %+v", res)
	}
}

func TestIntentsApplyInPlayerOrder(t *testing.T) {
	w, rec := twoAgents(t, 1, 3, Loc(0, 0), Loc(0, 2))

	// queued out of order on purpose
	w.Queue(Intent{Player: 1, Move: true, Dir: West})
	w.Queue(Intent{Player: 0, Move: true, Dir: East})
	w.Step()

	if w.Agent(0).Location() != Loc(0, 1) {
		t.Errorf("player 0 should win the contested cell, at %v", w.Agent(0).Location())
	}
	if w.Agent(1).Location() != Loc(0, 2) {
		t.Errorf("player 1 should be bumped, at %v", w.Agent(1).Location())
	}
	if rec.Count(CueBump) != 1 {
		t.Error("expected a bump cue for the second mover")
	}
}

func TestIntentBombThenMove(t *testing.T) {
	w, _ := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))

	w.Queue(Intent{Player: 0, Bomb: true, Move: true, Dir: South})
	w.Step()

	if _, ok := w.Grid().Get(Loc(0, 0)).(*Bomb); !ok {
		t.Error("bomb and move in one intent should drop the bomb behind the agent")
	}
}

func TestOccupancyInvariantRandomRound(t *testing.T) {
	opts := DefaultOptions()
	opts.Seed = 42
	opts.Bomb.TickScale = 3
	w := BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 4, Level: 5}, opts)
	driver := rand.New(rand.NewSource(99))

	checkOccupancy(t, w)
	for i := 0; i < 3000 && !w.Over(); i++ {
		for p := 0; p < 4; p++ {
			w.Queue(Intent{
				Player: p,
				Move:   driver.Intn(3) == 0,
				Dir:    Directions[driver.Intn(4)],
				Bomb:   driver.Intn(10) == 0,
			})
		}
		w.Step()
		checkOccupancy(t, w)
	}
}

func TestRoamerWanders(t *testing.T) {
	w, _ := newTestWorld(5, 5)
	r := w.AddRoamer(RandomBug, Loc(2, 2))
	start := r.Location()

	moved := false
	for i := 0; i < 70; i++ {
		w.Step()
		if r.Location() != start {
			moved = true
			break
		}
	}
	if !moved {
		t.Error("random bug should move within 70 ticks")
	}
}

func TestBlockBugLaysAndTakesBlocks(t *testing.T) {
	w, _ := newTestWorld(5, 5)
	r := w.AddRoamer(BlockBug, Loc(2, 2))
	start := r.Location()

	for i := 0; i < 70 && r.Location() == start; i++ {
		w.Step()
	}
	if r.Location() == start {
		t.Fatal("block bug should move within 70 ticks")
	}

	k := w.Grid().Get(start)
	if k == nil || (k.Kind() != KindBrick && k.Kind() != KindWall) {
		t.Fatalf("block bug should leave a block behind, found %v", k)
	}
	if len(r.Blocks()) != 1 {
		t.Fatalf("Blocks() = %v, expected one", r.Blocks())
	}

	w.Remove(r)
	if w.Grid().Get(start) != nil {
		t.Error("destroying a block bug should remove its blocks")
	}
}

func TestDeterministicRounds(t *testing.T) {
	run := func() []CellView {
		opts := DefaultOptions()
		opts.Seed = 1234
		w := BuildArena(ArenaConfig{Rows: 9, Cols: 13, Players: 3, Level: 4}, opts)
		for i := 0; i < 500; i++ {
			w.Queue(Intent{Player: i % 3, Move: true, Dir: Directions[i%4], Bomb: i%17 == 0})
			w.Step()
		}
		return w.Cells()
	}

	a, b := run(), run()
	if len(a) != len(b) {
		t.Fatalf("runs diverged: %d vs %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("runs diverged at cell %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
