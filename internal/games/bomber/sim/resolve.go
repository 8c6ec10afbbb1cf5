package sim

// MoveAgent asks a player's agent to step one cell. The agent turns to
// face the direction either way. Stepping onto empty ground, a bonus or
// fire succeeds; a bonus is consumed on the spot and fire kills the agent
// at the end of the tick. Walls, bricks, bombs, other bugs and the grid
// edge reject the move with a cue.
//
// When a drop is pending, the new bomb lands on the cell the agent just
// left.
func (w *World) MoveAgent(player int, d Direction) bool {
	a := w.Agent(player)
	if a == nil || !a.InGrid() || w.over {
		return false
	}
	a.dir = d
	from := a.loc
	to := from.Adjacent(d)
	if !w.grid.IsValid(to) {
		w.emit(CueBlocked, from, a.id)
		return false
	}

	switch o := w.grid.Get(to).(type) {
	case nil:
	case *Fire:
		w.Remove(o)
		a.burning = true
	case *Bonus:
		w.Remove(o)
		a.apply(o.Type)
		w.emit(CueBonusGotten, to, a.id)
	case *Wall:
		w.emit(CueHitWall, to, a.id)
		return false
	case *Brick:
		w.emit(CueHitBrick, to, a.id)
		return false
	case *Bomb:
		w.emit(CueBlocked, to, a.id)
		return false
	default:
		w.emit(CueBump, to, a.id)
		return false
	}

	w.relocate(a, to)
	w.emit(CueBugStep, to, a.id)
	if a.bombPending {
		w.dropBomb(a, from)
	}
	return true
}

// PlaceBomb asks a player's agent to drop a bomb. The request is accepted
// only while the agent owns fewer resident bombs than its cap and no drop
// is already pending; the bomb is armed on the agent's next successful
// move, in the cell it vacates, carrying the agent's radius and any
// pending super bomb.
func (w *World) PlaceBomb(player int) bool {
	a := w.Agent(player)
	if a == nil || !a.InGrid() || w.over {
		return false
	}
	a.pruneBombs(w.grid)
	if a.bombPending || len(a.bombs) >= a.maxBombs {
		return false
	}
	a.bombPending = true
	w.emit(CueBombDropped, a.loc, a.id)
	return true
}

func (w *World) dropBomb(a *Agent, at Location) {
	a.bombPending = false
	spec := w.opts.Bomb
	spec.Radius = a.bombRadius
	spec.Super = a.superPending
	bomb := NewBomb(spec, a.id)
	if !w.Spawn(bomb, at) {
		return
	}
	a.superPending = false
	a.bombs = append(a.bombs, bomb.id)
	w.emit(CueBombArmed, at, bomb.id)
	w.emit(CueTicking, at, bomb.id)
	if bomb.super {
		w.emit(CueWatchOutSuperBomb, at, bomb.id)
	}
}

// moveRoamer steps a roamer into an empty or burning cell. A BlockBug may
// leave a brick, or sometimes a wall, behind.
func (w *World) moveRoamer(r *Roamer, d Direction) bool {
	to := r.loc.Adjacent(d)
	if !w.grid.IsValid(to) {
		return false
	}
	switch o := w.grid.Get(to).(type) {
	case nil:
	case *Fire:
		w.Remove(o)
		r.burning = true
	default:
		return false
	}

	from := r.loc
	r.dir = d
	w.relocate(r, to)

	if r.Variant == BlockBug {
		r.moves++
		if r.moves%w.opts.Roamers.BlockEvery == 0 {
			w.layBlock(r, from)
		}
	}
	return true
}

// layBlock leaves a brick three times in four, otherwise a wall.
func (w *World) layBlock(r *Roamer, at Location) {
	var block Actor
	if w.rng.Intn(4) == 0 {
		block = NewWall()
	} else {
		block = NewBrick()
	}
	if w.Spawn(block, at) {
		r.blocks = append(r.blocks, block.ID())
	}
}
