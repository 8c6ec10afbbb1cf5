package sim

import "testing"

// twoAgents creates a world with player 0 and player 1 at the given cells.
func twoAgents(t *testing.T, rows, cols int, a, b Location) (*World, *Recorder) {
	t.Helper()
	w, rec := newTestWorld(rows, cols)
	if w.AddAgent(a) == nil || w.AddAgent(b) == nil {
		t.Fatal("failed to add agents")
	}
	return w, rec
}

func TestMoveAgentOutcomes(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(w *World)
		dir    Direction
		moved  bool
		cue    Cue
		target Location
	}{
		{
			name:  "empty cell",
			setup: func(w *World) {},
			dir:   East, moved: true, cue: CueBugStep,
		},
		{
			name:  "grid edge",
			setup: func(w *World) {},
			dir:   North, moved: false, cue: CueBlocked,
		},
		{
			name:  "wall",
			setup: func(w *World) { w.Spawn(NewWall(), Loc(0, 1)) },
			dir:   East, moved: false, cue: CueHitWall,
		},
		{
			name:  "brick",
			setup: func(w *World) { w.Spawn(NewBrick(), Loc(0, 1)) },
			dir:   East, moved: false, cue: CueHitBrick,
		},
		{
			name:  "bomb",
			setup: func(w *World) { w.Spawn(NewBomb(DefaultBombSpec(), 0), Loc(0, 1)) },
			dir:   East, moved: false, cue: CueBlocked,
		},
		{
			name:  "roamer",
			setup: func(w *World) { w.AddRoamer(RandomCritter, Loc(0, 1)) },
			dir:   East, moved: false, cue: CueBump,
		},
		{
			name:  "bonus",
			setup: func(w *World) { w.Spawn(NewBonus(ExpandBombRadius), Loc(0, 1)) },
			dir:   East, moved: true, cue: CueBonusGotten,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))
			tc.setup(w)

			if got := w.MoveAgent(0, tc.dir); got != tc.moved {
				t.Fatalf("MoveAgent() = %v, expected %v", got, tc.moved)
			}
			if rec.Count(tc.cue) != 1 {
				t.Errorf("expected one %s cue, got %v", tc.cue, rec.Events)
			}
			a := w.Agent(0)
			if a.Direction() != tc.dir {
				t.Errorf("agent should face %v, faces %v", tc.dir, a.Direction())
			}
			if !tc.moved && a.Location() != Loc(0, 0) {
				t.Errorf("rejected move changed location to %v", a.Location())
			}
		})
	}
}

func TestMoveAgentBumpsAgent(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(0, 1))

	if w.MoveAgent(0, East) {
		t.Fatal("moving into another agent should be rejected")
	}
	if rec.Count(CueBump) != 1 {
		t.Errorf("expected a bump cue")
	}
}

func TestBonusModifiers(t *testing.T) {
	tests := []struct {
		bonus BonusType
		check func(a *Agent) bool
	}{
		{ExpandBombRadius, func(a *Agent) bool { return a.BombRadius() == DefaultBombRadius+1 }},
		{AddMoreBombs, func(a *Agent) bool { return a.MaxBombs() == DefaultMaxBombs+1 }},
		{SuperBomb, func(a *Agent) bool { return a.SuperPending() }},
	}

	for _, tc := range tests {
		t.Run(tc.bonus.String(), func(t *testing.T) {
			w, _ := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))
			bonus := NewBonus(tc.bonus)
			w.Spawn(bonus, Loc(1, 0))

			if !w.MoveAgent(0, South) {
				t.Fatal("move onto a bonus should succeed")
			}
			if bonus.InGrid() {
				t.Error("bonus should be consumed")
			}
			if !tc.check(w.Agent(0)) {
				t.Error("modifier was not applied")
			}
		})
	}
}

func TestWalkingIntoFireKills(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))
	w.Spawn(newFire(999, North), Loc(0, 1))

	w.Queue(Intent{Player: 0, Move: true, Dir: East})
	res := w.Step()

	if w.Agent(0).Alive() {
		t.Fatal("agent standing in fire should die at the end of the tick")
	}
	if len(res.Deaths) != 1 || res.Deaths[0] != 0 {
		t.Errorf("Deaths = %v, expected [0]", res.Deaths)
	}
	if rec.Count(CueDeadBug) != 1 {
		t.Errorf("expected one dead_bug cue, got %d", rec.Count(CueDeadBug))
	}
	if !res.Over || res.Winner != 1 {
		t.Errorf("player 1 should win, got %+v", res)
	}
}

func TestPlaceBombDropsOnVacatedCell(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))

	if !w.PlaceBomb(0) {
		t.Fatal("first bomb should be accepted")
	}
	if rec.Count(CueBombDropped) != 1 {
		t.Error("expected a bomb_dropped cue")
	}
	if !w.Agent(0).BombPending() {
		t.Fatal("drop should wait for a move")
	}

	w.MoveAgent(0, East)

	b, ok := w.Grid().Get(Loc(0, 0)).(*Bomb)
	if !ok {
		t.Fatalf("bomb should be armed on the vacated cell, got %v", w.Grid().Get(Loc(0, 0)))
	}
	if b.Owner() != w.Agent(0).ID() {
		t.Error("bomb owner should be the agent")
	}
	if b.Radius() != DefaultBombRadius {
		t.Errorf("Radius() = %d, expected %d", b.Radius(), DefaultBombRadius)
	}
	if rec.Count(CueBombArmed) != 1 || rec.Count(CueTicking) != 1 {
		t.Error("expected bomb_armed and ticking cues")
	}
	if w.Agent(0).BombPending() {
		t.Error("pending drop should be consumed")
	}
}

func TestPlaceBombConsumesSuperBomb(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))
	w.Spawn(NewBonus(SuperBomb), Loc(0, 1))
	w.MoveAgent(0, East)

	w.PlaceBomb(0)
	w.MoveAgent(0, East)

	b, ok := w.Grid().Get(Loc(0, 1)).(*Bomb)
	if !ok || !b.IsSuper() {
		t.Fatal("bomb should carry the pending super flag")
	}
	if w.Agent(0).SuperPending() {
		t.Error("super flag is one-shot")
	}
	if rec.Count(CueWatchOutSuperBomb) != 1 {
		t.Error("expected a watch_out_superbomb cue")
	}
}

func TestBombCapEnforced(t *testing.T) {
	w, _ := newTestWorld(7, 7)
	w.opts.Bomb = BombSpec{Timer: 0, TickScale: 1}
	w.AddAgent(Loc(2, 0))
	w.AddAgent(Loc(0, 6))

	if !w.PlaceBomb(0) {
		t.Fatal("first bomb should be accepted")
	}
	w.MoveAgent(0, East)
	if w.PlaceBomb(0) {
		t.Fatal("second bomb should be rejected while the first is live")
	}

	// walk out of range, then wait for the bomb to clear
	w.MoveAgent(0, East)
	w.MoveAgent(0, East)
	w.MoveAgent(0, East)
	for i := 0; i < 20 && w.Agent(0).LiveBombs(w.Grid()) > 0; i++ {
		w.Step()
	}
	if !w.Agent(0).Alive() {
		t.Fatal("agent should have escaped its own bomb")
	}
	if w.Agent(0).LiveBombs(w.Grid()) != 0 {
		t.Fatal("bomb should have cleared")
	}
	if !w.PlaceBomb(0) {
		t.Error("agent should be able to drop again once its bomb cleared")
	}
}

func TestPlaceBombRejectsDoubleRequest(t *testing.T) {
	w, _ := twoAgents(t, 5, 5, Loc(0, 0), Loc(4, 4))
	w.Agent(0).maxBombs = 3

	if !w.PlaceBomb(0) {
		t.Fatal("first request should be accepted")
	}
	if w.PlaceBomb(0) {
		t.Error("a second request before moving should be rejected")
	}
}

func TestRayKillsAgent(t *testing.T) {
	w, rec := twoAgents(t, 5, 5, Loc(0, 0), Loc(2, 4))
	armBomb(t, w, Loc(2, 3), BombSpec{Timer: 0, TickScale: 1, Radius: 2})

	res := w.Step()

	if w.Agent(1).Alive() {
		t.Fatal("agent next to a detonating bomb should die")
	}
	if fireAt(w, Loc(2, 4)) == nil {
		t.Error("fire should replace the dead agent")
	}
	if rec.Count(CueDeadBug) != 1 {
		t.Error("expected a dead_bug cue")
	}
	if !res.Over || res.Winner != 0 {
		t.Errorf("player 0 should win, got %+v", res)
	}
}
