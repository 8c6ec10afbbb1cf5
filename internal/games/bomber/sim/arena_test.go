package sim

import "testing"

func TestArenaConfigNormalize(t *testing.T) {
	tests := []struct {
		name     string
		in       ArenaConfig
		expected ArenaConfig
	}{
		{"already valid", ArenaConfig{9, 11, 3, 2}, ArenaConfig{9, 11, 3, 2}},
		{"even dimensions round up", ArenaConfig{8, 10, 2, 1}, ArenaConfig{9, 11, 2, 1}},
		{"too small", ArenaConfig{2, 3, 2, 1}, ArenaConfig{5, 5, 2, 1}},
		{"zero everything", ArenaConfig{}, ArenaConfig{5, 5, 2, 1}},
		{"too many players", ArenaConfig{7, 7, 9, 1}, ArenaConfig{7, 7, 4, 1}},
		{"negative level", ArenaConfig{7, 7, 2, -3}, ArenaConfig{7, 7, 2, 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.in.Normalize(); got != tc.expected {
				t.Errorf("Normalize() = %+v, expected %+v", got, tc.expected)
			}
		})
	}
}

func TestArenaWallLattice(t *testing.T) {
	w := BuildArena(ArenaConfig{Rows: 7, Cols: 9, Players: 2, Level: 1}, Options{Seed: 3})

	for r := 0; r < w.Rows(); r++ {
		for c := 0; c < w.Cols(); c++ {
			cell, ok := w.CellAt(Loc(r, c))
			isWall := ok && cell.Kind == KindWall
			if isWall != (r%2 == 1 && c%2 == 1) {
				t.Errorf("cell (%d,%d): wall=%v", r, c, isWall)
			}
		}
	}
}

func TestArenaSpawnsAndTaboo(t *testing.T) {
	for players := 2; players <= 4; players++ {
		w := BuildArena(ArenaConfig{Rows: 9, Cols: 9, Players: players, Level: 4}, Options{Seed: int64(players)})

		corners := SpawnCorners(9, 9)
		if len(w.Agents()) != players {
			t.Fatalf("players=%d: got %d agents", players, len(w.Agents()))
		}
		for i, a := range w.Agents() {
			if a.Location() != corners[i] {
				t.Errorf("players=%d: agent %d at %v, expected %v", players, i, a.Location(), corners[i])
			}
		}

		for l := range tabooCells(9, 9, players) {
			a := w.Grid().Get(l)
			if a != nil && a.Kind() != KindAgent {
				t.Errorf("players=%d: taboo cell %v holds %v", players, l, a.Kind())
			}
		}
	}
}

func TestArenaBrickQuota(t *testing.T) {
	tests := []struct {
		rows, cols, level int
		expected          int
	}{
		{5, 5, 1, 5},
		{9, 9, 1, 16},
		{9, 9, 4, 32},
		{7, 7, 2, 13},
		{5, 5, 9, 15}, // capped by the 15 free cells
	}

	for _, tc := range tests {
		w := BuildArena(ArenaConfig{Rows: tc.rows, Cols: tc.cols, Players: 2, Level: tc.level}, Options{Seed: 11})
		bricks := 0
		for _, c := range w.Cells() {
			if c.Kind == KindBrick {
				bricks++
			}
		}
		if bricks != tc.expected {
			t.Errorf("%dx%d level %d: got %d bricks, expected %d", tc.rows, tc.cols, tc.level, bricks, tc.expected)
		}
	}
}

func TestBrickQuotaRoundsOnce(t *testing.T) {
	// 49/5*sqrt(2) = 13.86
	if got := BrickQuota(7, 7, 2); got != 13 {
		t.Errorf("BrickQuota(7, 7, 2) = %d, expected 13", got)
	}
	if got := BrickQuota(9, 9, 1); got != 16 {
		t.Errorf("BrickQuota(9, 9, 1) = %d, expected 16", got)
	}
}

func TestArenaBonuses(t *testing.T) {
	count := func(w *World) (int, map[BonusType]int) {
		n := 0
		types := make(map[BonusType]int)
		for _, c := range w.Cells() {
			if c.Kind == KindBrick && c.HasBonus {
				n++
				types[c.Bonus]++
			}
		}
		return n, types
	}

	w := BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 2, Level: 1}, Options{Seed: 5})
	if n, _ := count(w); n != 0 {
		t.Errorf("level 1 should hide no bonuses, got %d", n)
	}

	w = BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 2, Level: 2}, Options{Seed: 5})
	n, types := count(w)
	if n != BonusQuota(11, 11, 2) {
		t.Errorf("level 2 hid %d bonuses, expected %d", n, BonusQuota(11, 11, 2))
	}
	if len(types) != 1 || types[ExpandBombRadius] != n {
		t.Errorf("level 2 should only use the first bonus type, got %v", types)
	}

	w = BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 2, Level: 9}, Options{Seed: 5})
	_, types = count(w)
	for bt := range types {
		if bt < ExpandBombRadius || bt > SuperBomb {
			t.Errorf("unexpected bonus type %v", bt)
		}
	}
}

func TestArenaRoamers(t *testing.T) {
	w := BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 2, Level: 2}, Options{Seed: 8})
	for _, c := range w.Cells() {
		if c.Kind == KindRoamer {
			t.Fatal("level 2 should have no roamers")
		}
	}

	w = BuildArena(ArenaConfig{Rows: 11, Cols: 11, Players: 2, Level: 4}, Options{Seed: 8})
	roamers := 0
	for _, c := range w.Cells() {
		if c.Kind == KindRoamer {
			roamers++
			if c.Roamer == BlockBug {
				t.Error("block bugs are off by default")
			}
		}
	}
	if roamers != RoamerQuota(11, 11, 4) {
		t.Errorf("got %d roamers, expected %d", roamers, RoamerQuota(11, 11, 4))
	}
}

func TestArenaDeterministic(t *testing.T) {
	cfg := ArenaConfig{Rows: 13, Cols: 15, Players: 4, Level: 5}
	a := BuildArena(cfg, Options{Seed: 77}).Cells()
	b := BuildArena(cfg, Options{Seed: 77}).Cells()

	if len(a) != len(b) {
		t.Fatalf("same seed built %d and %d cells", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at %d: %+v vs %+v", i, a[i], b[i])
		}
	}
}
