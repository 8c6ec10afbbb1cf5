package sim

import "math"

// Arena limits.
const (
	MinArenaSize = 5
	MinPlayers   = 2
	MaxPlayers   = 4
	MinLevel     = 1
)

// ArenaConfig is the per-round setup.
type ArenaConfig struct {
	Rows    int
	Cols    int
	Players int
	Level   int
}

// Normalize clamps the setup to a playable arena: odd dimensions of at
// least MinArenaSize, 2..4 players and a level of at least 1.
func (c ArenaConfig) Normalize() ArenaConfig {
	c.Rows = oddAtLeast(c.Rows, MinArenaSize)
	c.Cols = oddAtLeast(c.Cols, MinArenaSize)
	if c.Players < MinPlayers {
		c.Players = MinPlayers
	}
	if c.Players > MaxPlayers {
		c.Players = MaxPlayers
	}
	if c.Level < MinLevel {
		c.Level = MinLevel
	}
	return c
}

func oddAtLeast(n, floor int) int {
	if n%2 == 0 {
		n++
	}
	if n < floor {
		n = floor
	}
	return n
}

// SpawnCorners returns the spawn cells in player order: top-left,
// bottom-right, top-right, bottom-left.
func SpawnCorners(rows, cols int) [MaxPlayers]Location {
	return [MaxPlayers]Location{
		{Row: 0, Col: 0},
		{Row: rows - 1, Col: cols - 1},
		{Row: 0, Col: cols - 1},
		{Row: rows - 1, Col: 0},
	}
}

// tabooCells returns the spawn pocket of each corner in use: the corner
// and its two in-grid neighbours.
func tabooCells(rows, cols, players int) map[Location]bool {
	taboo := make(map[Location]bool, players*3)
	corners := SpawnCorners(rows, cols)
	for i := 0; i < players && i < len(corners); i++ {
		c := corners[i]
		dr, dc := 1, 1
		if c.Row > 0 {
			dr = -1
		}
		if c.Col > 0 {
			dc = -1
		}
		taboo[c] = true
		taboo[Location{Row: c.Row + dr, Col: c.Col}] = true
		taboo[Location{Row: c.Row, Col: c.Col + dc}] = true
	}
	return taboo
}

// isLattice reports whether a cell belongs to the fixed wall lattice.
func isLattice(l Location) bool {
	return l.Row%2 == 1 && l.Col%2 == 1
}

// BrickQuota is the number of bricks requested for an arena.
func BrickQuota(rows, cols, level int) int {
	return int(float64(rows*cols) / 5 * math.Sqrt(float64(level)))
}

// BonusQuota is the number of hidden bonuses requested for an arena.
func BonusQuota(rows, cols, level int) int {
	if level <= 1 {
		return 0
	}
	return int(math.Sqrt(float64(rows * cols)))
}

// RoamerQuota is the number of neutral roamers for an arena.
func RoamerQuota(rows, cols, level int) int {
	if level <= 2 {
		return 0
	}
	return int(float64(level-2) * math.Sqrt(float64(min(rows, cols))))
}

// BuildArena generates a round. The layout is fixed by the dimensions;
// bricks, bonuses and roamers are drawn from the world's seeded RNG so
// the same config and seed always build the same arena.
func BuildArena(cfg ArenaConfig, opts Options) *World {
	cfg = cfg.Normalize()
	w := NewWorld(cfg.Rows, cfg.Cols, opts)
	taboo := tabooCells(cfg.Rows, cfg.Cols, cfg.Players)

	for r := 0; r < cfg.Rows; r++ {
		for c := 0; c < cfg.Cols; c++ {
			if l := Loc(r, c); isLattice(l) {
				w.Spawn(NewWall(), l)
			}
		}
	}

	bricks := w.placeBricks(BrickQuota(cfg.Rows, cfg.Cols, cfg.Level), taboo)
	hidden := w.hideBonuses(bricks, BonusQuota(cfg.Rows, cfg.Cols, cfg.Level), cfg.Level)

	corners := SpawnCorners(cfg.Rows, cfg.Cols)
	for i := 0; i < cfg.Players; i++ {
		w.AddAgent(corners[i])
	}

	roamers := w.placeRoamers(RoamerQuota(cfg.Rows, cfg.Cols, cfg.Level), taboo)

	w.log.Debug("arena built",
		"rows", cfg.Rows, "cols", cfg.Cols,
		"players", cfg.Players, "level", cfg.Level,
		"bricks", len(bricks), "bonuses", hidden, "roamers", roamers)
	return w
}

// freeCells returns empty, non-taboo cells in random order.
func (w *World) freeCells(taboo map[Location]bool) []Location {
	var cells []Location
	for _, l := range w.grid.EmptyLocations() {
		if !taboo[l] && !isLattice(l) {
			cells = append(cells, l)
		}
	}
	w.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})
	return cells
}

func (w *World) placeBricks(quota int, taboo map[Location]bool) []*Brick {
	cells := w.freeCells(taboo)
	if quota > len(cells) {
		quota = len(cells)
	}
	bricks := make([]*Brick, 0, quota)
	for _, l := range cells[:quota] {
		b := NewBrick()
		if w.Spawn(b, l) {
			bricks = append(bricks, b)
		}
	}
	return bricks
}

// hideBonuses assigns bonuses to random bricks. Only the first
// min(3, level-1) bonus types are in play.
func (w *World) hideBonuses(bricks []*Brick, quota, level int) int {
	types := min(bonusTypeCount, level-1)
	if quota <= 0 || types <= 0 {
		return 0
	}
	order := w.rng.Perm(len(bricks))
	hidden := 0
	for _, i := range order {
		if hidden >= quota {
			break
		}
		if bricks[i].Hide(NewBonus(BonusType(w.rng.Intn(types)))) {
			hidden++
		}
	}
	return hidden
}

func (w *World) placeRoamers(quota int, taboo map[Location]bool) int {
	if quota <= 0 {
		return 0
	}
	cells := w.freeCells(taboo)
	placed := 0
	for _, l := range cells {
		if placed >= quota {
			break
		}
		if w.AddRoamer(w.pickRoamer(), l) != nil {
			placed++
		}
	}
	return placed
}

// pickRoamer draws a variant by the configured weights.
func (w *World) pickRoamer() RoamerVariant {
	r := w.opts.Roamers
	total := r.BugWeight + r.CritterWeight + r.BlockBugWeight
	n := w.rng.Intn(total)
	switch {
	case n < r.BugWeight:
		return RandomBug
	case n < r.BugWeight+r.CritterWeight:
		return RandomCritter
	default:
		return BlockBug
	}
}
