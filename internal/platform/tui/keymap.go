package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/bomberbug/internal/core"
)

// seatKeys holds the in-game bindings of each seat at a shared keyboard.
// Numpad keys arrive as plain digits in a terminal.
var seatKeys = [core.MaxSeats]map[string]core.Action{
	{"w": core.ActionUp, "s": core.ActionDown, "a": core.ActionLeft, "d": core.ActionRight, "q": core.ActionBomb},
	{"up": core.ActionUp, "down": core.ActionDown, "left": core.ActionLeft, "right": core.ActionRight, "/": core.ActionBomb},
	{"u": core.ActionUp, "j": core.ActionDown, "h": core.ActionLeft, "k": core.ActionRight, "y": core.ActionBomb},
	{"8": core.ActionUp, "5": core.ActionDown, "4": core.ActionLeft, "6": core.ActionRight, "7": core.ActionBomb},
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	humans int // keyboard seats; seats beyond this ignore their keys
}

// NewKeyMapper creates a key mapper for the given number of keyboard seats.
func NewKeyMapper(humans int) *KeyMapper {
	return &KeyMapper{humans: core.Clamp(humans, 1, core.MaxSeats)}
}

// MapKey translates a key message to a seat and action.
// Returns ActionNone for unbound keys and isQuit for Ctrl+C.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (player core.PlayerID, action core.Action, isQuit bool) {
	key := msg.String()

	// Global keys act for Player1
	switch key {
	case "ctrl+c":
		return core.Player1, core.ActionQuit, true
	case "p":
		return core.Player1, core.ActionPause, false
	case "r":
		return core.Player1, core.ActionRestart, false
	case "esc":
		return core.Player1, core.ActionBack, false
	case "enter":
		return core.Player1, core.ActionConfirm, false
	}

	for i := 0; i < km.humans; i++ {
		if a, ok := seatKeys[i][key]; ok {
			return core.PlayerFromIndex(i), a, false
		}
	}

	// A lone player may also use the second seat's keys
	if km.humans == 1 {
		if a, ok := seatKeys[1][key]; ok {
			return core.Player1, a, false
		}
	}

	return 0, core.ActionNone, false
}

// MapKeyToMultiFrame updates a multi-input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToMultiFrame(msg tea.KeyMsg, frame *core.MultiInputFrame) bool {
	player, action, isQuit := km.MapKey(msg)
	if action != core.ActionNone {
		frame.Set(player, action)
	}
	return isQuit
}

// Bindings returns a one-line description of a seat's keys for help text.
func Bindings(p core.PlayerID) string {
	switch p {
	case core.Player1:
		return "WASD move, Q bomb"
	case core.Player2:
		return "Arrows move, / bomb"
	case core.Player3:
		return "UHJK move, Y bomb"
	case core.Player4:
		return "8456 move, 7 bomb"
	}
	return ""
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionLeft
	MenuActionRight
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "a", "left", "h":
		return MenuActionLeft
	case "d", "right", "l":
		return MenuActionRight
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
