package sim

import "testing"

func TestLocationAdjacent(t *testing.T) {
	l := Loc(2, 3)
	tests := []struct {
		dir      Direction
		expected Location
	}{
		{North, Loc(1, 3)},
		{East, Loc(2, 4)},
		{South, Loc(3, 3)},
		{West, Loc(2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			if got := l.Adjacent(tc.dir); got != tc.expected {
				t.Errorf("Adjacent(%v) = %v, expected %v", tc.dir, got, tc.expected)
			}
		})
	}
}

func TestDirectionIndex(t *testing.T) {
	for i, d := range Directions {
		if d.Index() != i {
			t.Errorf("%v.Index() = %d, expected %d", d, d.Index(), i)
		}
	}
	if North.Opposite() != South || East.Opposite() != West {
		t.Error("Opposite() returned the wrong heading")
	}
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(3, 4)

	tests := []struct {
		loc   Location
		valid bool
	}{
		{Loc(0, 0), true},
		{Loc(2, 3), true},
		{Loc(-1, 0), false},
		{Loc(0, -1), false},
		{Loc(3, 0), false},
		{Loc(0, 4), false},
	}

	for _, tc := range tests {
		if got := g.IsValid(tc.loc); got != tc.valid {
			t.Errorf("IsValid(%v) = %v, expected %v", tc.loc, got, tc.valid)
		}
	}
}

func TestGridPutGetRemove(t *testing.T) {
	w := NewWorld(3, 3, Options{})
	g := w.Grid()

	wall := NewWall()
	if !w.Spawn(wall, Loc(1, 1)) {
		t.Fatal("Spawn on an empty cell should succeed")
	}
	if g.Get(Loc(1, 1)) != Actor(wall) {
		t.Error("Get should return the spawned wall")
	}
	if g.Find(wall.ID()) != Actor(wall) {
		t.Error("Find should locate the wall by ID")
	}
	if g.Put(Loc(5, 5), NewWall()) {
		t.Error("Put outside the grid should fail")
	}
	if w.Spawn(NewBrick(), Loc(1, 1)) {
		t.Error("Spawn on an occupied cell should fail")
	}

	if got := g.Remove(Loc(1, 1)); got != Actor(wall) {
		t.Errorf("Remove returned %v, expected the wall", got)
	}
	if g.Get(Loc(1, 1)) != nil {
		t.Error("cell should be empty after Remove")
	}
	if g.Find(wall.ID()) != nil {
		t.Error("Find should not locate a removed actor")
	}
	if g.Get(Loc(-1, 0)) != nil {
		t.Error("Get outside the grid should return nil")
	}
}

func TestGridPutOverwrites(t *testing.T) {
	w := NewWorld(3, 3, Options{})
	g := w.Grid()

	first := NewWall()
	w.Spawn(first, Loc(0, 0))
	second := NewBrick()
	second.id = 99
	g.Put(Loc(0, 0), second)

	if g.Get(Loc(0, 0)) != Actor(second) {
		t.Error("Put should replace the occupant")
	}
	if g.Find(first.ID()) != nil {
		t.Error("replaced occupant should no longer be indexed")
	}
	if g.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", g.Len())
	}
}

func TestGridOccupiedAndEmpty(t *testing.T) {
	w := NewWorld(2, 3, Options{})
	w.Spawn(NewWall(), Loc(0, 2))
	w.Spawn(NewWall(), Loc(1, 0))

	occ := w.Grid().Occupied()
	if len(occ) != 2 || occ[0] != Loc(0, 2) || occ[1] != Loc(1, 0) {
		t.Errorf("Occupied() = %v, expected [(0,2) (1,0)] in row-major order", occ)
	}
	if n := len(w.Grid().EmptyLocations()); n != 4 {
		t.Errorf("EmptyLocations() returned %d cells, expected 4", n)
	}
}

func TestSpawnAssignsIncreasingIDs(t *testing.T) {
	w := NewWorld(3, 3, Options{})
	a, b := NewWall(), NewWall()
	w.Spawn(a, Loc(0, 0))
	w.Spawn(b, Loc(0, 1))

	if a.ID() == 0 || b.ID() <= a.ID() {
		t.Errorf("IDs should increase in creation order, got %d then %d", a.ID(), b.ID())
	}
	if w.Spawn(a, Loc(2, 2)) {
		t.Error("Spawn of a resident actor should fail")
	}
}
