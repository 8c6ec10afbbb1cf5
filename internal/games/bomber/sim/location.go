// Package sim is the BomberBug simulation engine: the actor grid, the timed
// bomb state machine, ray propagation, movement resolution and the per-tick
// world controller. It has no rendering, input or audio dependencies; those
// collaborators observe the world through views and cue events.
package sim

import "fmt"

// Location is a cell position on the grid. Row grows downward, Col to the right.
type Location struct {
	Row int
	Col int
}

// Loc is a convenience constructor for Location.
func Loc(row, col int) Location {
	return Location{Row: row, Col: col}
}

// String returns a string representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("(%d,%d)", l.Row, l.Col)
}

// Adjacent returns the neighbouring location in the given direction.
// The result may lie outside any grid; callers check it with Grid.IsValid.
func (l Location) Adjacent(d Direction) Location {
	switch d {
	case North:
		return Location{Row: l.Row - 1, Col: l.Col}
	case East:
		return Location{Row: l.Row, Col: l.Col + 1}
	case South:
		return Location{Row: l.Row + 1, Col: l.Col}
	case West:
		return Location{Row: l.Row, Col: l.Col - 1}
	default:
		return l
	}
}

// Direction is a compass heading in degrees.
type Direction int

const (
	North Direction = 0
	East  Direction = 90
	South Direction = 180
	West  Direction = 270
)

// Directions lists the four headings clockwise from North.
var Directions = [4]Direction{North, East, South, West}

// rayOrder is the order in which a detonating bomb extends its rays.
var rayOrder = [4]Direction{North, South, East, West}

// Index maps a direction to 0..3 (North, East, South, West).
func (d Direction) Index() int {
	return ((int(d) % 360) + 360) % 360 / 90
}

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	return Directions[(d.Index()+2)%4]
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("dir(%d)", int(d))
	}
}
