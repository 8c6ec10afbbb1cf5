package core

import "fmt"

// Action is a logical input, decoupled from the physical key that
// produced it.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move north
	ActionDown           // move south
	ActionLeft           // move west
	ActionRight          // move east
	ActionBomb           // drop a bomb
	ActionConfirm        // Enter in menus
	ActionBack           // Esc, leave the game
	ActionRestart        // R, next round once the current one is over
	ActionQuit           // Ctrl+C
	ActionPause          // P
)

var actionNames = map[Action]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionBomb:    "Bomb",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionRestart: "Restart",
	ActionQuit:    "Quit",
	ActionPause:   "Pause",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "Unknown"
}

// IsMove reports whether the action is one of the four movement actions.
func (a Action) IsMove() bool {
	return a >= ActionUp && a <= ActionRight
}

// PlayerID identifies a seat at the keyboard (or an SSH session's seat).
// Seats are numbered from 1.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
	Player3
	Player4
)

// MaxSeats is the highest number of players one game accepts.
const MaxSeats = 4

// AllPlayers lists every seat in order.
var AllPlayers = [MaxSeats]PlayerID{Player1, Player2, Player3, Player4}

// PlayerFromIndex converts a zero-based index to a PlayerID.
func PlayerFromIndex(i int) PlayerID {
	return PlayerID(i + 1)
}

// Index returns the zero-based seat index.
func (p PlayerID) Index() int {
	return int(p) - 1
}

// String returns "P1".."P4".
func (p PlayerID) String() string {
	return fmt.Sprintf("P%d", int(p))
}

// InputFrame holds the actions one player triggered during a tick.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{Actions: make(map[Action]bool)}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether an action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	c := NewInputFrame()
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}

// MultiInputFrame holds every seat's input for one tick. The platform
// fills seats from the keyboard, SSH sessions or CPU controllers; games
// read it without knowing the source.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{ByPlayer: make(map[PlayerID]InputFrame)}
}

// Player returns a seat's frame, or an empty frame when it has no input.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// Set marks an action for a seat.
func (m *MultiInputFrame) Set(id PlayerID, a Action) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	frame := m.ByPlayer[id]
	frame.Set(a)
	m.ByPlayer[id] = frame
}

// SetPlayer replaces a seat's frame.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Any reports whether any seat triggered the action.
func (m MultiInputFrame) Any(a Action) bool {
	for _, f := range m.ByPlayer {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets every seat's input for the next frame.
func (m *MultiInputFrame) Clear() {
	for id, frame := range m.ByPlayer {
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	c := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		c.ByPlayer[id] = frame.Clone()
	}
	return c
}
