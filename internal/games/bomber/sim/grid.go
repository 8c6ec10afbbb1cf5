package sim

// Grid is the fixed-size board. Cells are stored in row-major order:
// index = row*cols + col. Each cell holds at most one actor.
type Grid struct {
	rows  int
	cols  int
	cells []Actor
	where map[ActorID]Location // resident actor positions
}

// NewGrid creates an empty grid with the given dimensions.
func NewGrid(rows, cols int) *Grid {
	if rows < 0 {
		rows = 0
	}
	if cols < 0 {
		cols = 0
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]Actor, rows*cols),
		where: make(map[ActorID]Location),
	}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	return g.cols
}

// index converts a location to a flat slice index.
func (g *Grid) index(l Location) int {
	return l.Row*g.cols + l.Col
}

// IsValid reports whether the location is inside the grid bounds.
func (g *Grid) IsValid(l Location) bool {
	return l.Row >= 0 && l.Row < g.rows && l.Col >= 0 && l.Col < g.cols
}

// Get returns the occupant of a location, or nil when the cell is empty
// or the location is out of bounds.
func (g *Grid) Get(l Location) Actor {
	if !g.IsValid(l) {
		return nil
	}
	return g.cells[g.index(l)]
}

// Put stores an actor at a location, silently replacing any occupant.
// Returns false when the location is out of bounds.
func (g *Grid) Put(l Location, a Actor) bool {
	if !g.IsValid(l) || a == nil {
		return false
	}
	i := g.index(l)
	if old := g.cells[i]; old != nil && old.ID() != a.ID() {
		delete(g.where, old.ID())
	}
	g.cells[i] = a
	g.where[a.ID()] = l
	return true
}

// Remove clears a location and returns the previous occupant.
func (g *Grid) Remove(l Location) Actor {
	if !g.IsValid(l) {
		return nil
	}
	i := g.index(l)
	old := g.cells[i]
	if old != nil {
		delete(g.where, old.ID())
	}
	g.cells[i] = nil
	return old
}

// Find returns the resident actor with the given ID, or nil.
func (g *Grid) Find(id ActorID) Actor {
	l, ok := g.where[id]
	if !ok {
		return nil
	}
	a := g.cells[g.index(l)]
	if a == nil || a.ID() != id {
		return nil
	}
	return a
}

// Len returns the number of occupied cells.
func (g *Grid) Len() int {
	return len(g.where)
}

// Occupied returns every occupied location in row-major order.
func (g *Grid) Occupied() []Location {
	out := make([]Location, 0, len(g.where))
	for i, a := range g.cells {
		if a != nil {
			out = append(out, Location{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// EmptyLocations returns every empty location in row-major order.
func (g *Grid) EmptyLocations() []Location {
	out := make([]Location, 0, len(g.cells)-len(g.where))
	for i, a := range g.cells {
		if a == nil {
			out = append(out, Location{Row: i / g.cols, Col: i % g.cols})
		}
	}
	return out
}

// actors returns every resident actor in row-major order.
func (g *Grid) actors() []Actor {
	out := make([]Actor, 0, len(g.where))
	for _, a := range g.cells {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}
