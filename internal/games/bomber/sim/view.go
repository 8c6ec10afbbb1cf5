package sim

import "strconv"

// CellView is a read-only description of one occupied cell, enough for a
// renderer to draw it without touching actors.
type CellView struct {
	Loc       Location
	ID        ActorID
	Kind      Kind
	Dir       Direction
	Player    int           // agents only, -1 otherwise
	FireStage int           // fire only
	Timer     int           // bombs only
	Super     bool          // bombs only
	Bomb      BombState     // bombs only
	Bonus     BonusType     // bonuses, and bricks hiding one
	HasBonus  bool          // brick hides a bonus
	Roamer    RoamerVariant // roamers only
}

// AgentView summarizes a player agent.
type AgentView struct {
	Player       int
	Alive        bool
	Loc          Location
	Dir          Direction
	MaxBombs     int
	BombRadius   int
	LiveBombs    int
	SuperPending bool
}

// Cells returns every occupied cell in row-major order.
func (w *World) Cells() []CellView {
	actors := w.grid.actors()
	out := make([]CellView, 0, len(actors))
	for _, a := range actors {
		out = append(out, viewOf(a))
	}
	return out
}

// CellAt returns the view of a location and whether it is occupied.
func (w *World) CellAt(l Location) (CellView, bool) {
	a := w.grid.Get(l)
	if a == nil {
		return CellView{Loc: l, Player: -1}, false
	}
	return viewOf(a), true
}

func viewOf(a Actor) CellView {
	v := CellView{
		Loc:    a.Location(),
		ID:     a.ID(),
		Kind:   a.Kind(),
		Dir:    a.Direction(),
		Player: -1,
	}
	switch o := a.(type) {
	case *Agent:
		v.Player = o.player
	case *Fire:
		v.FireStage = o.stage
	case *Bomb:
		v.Timer = o.timer
		v.Super = o.super
		v.Bomb = o.state
	case *Bonus:
		v.Bonus = o.Type
	case *Brick:
		if o.bonus != nil {
			v.HasBonus = true
			v.Bonus = o.bonus.Type
		}
	case *Roamer:
		v.Roamer = o.Variant
	}
	return v
}

// AgentViews summarizes every agent in player order.
func (w *World) AgentViews() []AgentView {
	out := make([]AgentView, 0, len(w.agents))
	for _, a := range w.agents {
		out = append(out, AgentView{
			Player:       a.player,
			Alive:        a.Alive(),
			Loc:          a.loc,
			Dir:          a.dir,
			MaxBombs:     a.maxBombs,
			BombRadius:   a.bombRadius,
			LiveBombs:    a.LiveBombs(w.grid),
			SuperPending: a.superPending,
		})
	}
	return out
}

// Suffix names the visual variant of a cell: the countdown digit or
// "SuperBomb" on an armed bomb, "CentralFire" on a detonating one,
// "Middle" on aged fire and the type of a bonus. Other cells have none.
func (v CellView) Suffix() string {
	switch v.Kind {
	case KindBomb:
		switch {
		case v.Bomb != BombArmed:
			return "CentralFire"
		case v.Super:
			return "SuperBomb"
		case v.Timer >= 1 && v.Timer <= 3:
			return strconv.Itoa(v.Timer)
		}
	case KindFire:
		if v.FireStage >= 1 {
			return "Middle"
		}
	case KindBonus:
		return v.Bonus.String()
	}
	return ""
}
