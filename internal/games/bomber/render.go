package bomber

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/bomberbug/internal/core"
	"github.com/vovakirdan/bomberbug/internal/games/bomber/sim"
)

// Layout constants.
const (
	cellW     = 2 // screen columns per grid cell
	hudHeight = 3 // title, player status, separator
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	arenaW := g.arena.Cols * cellW
	if dst.Width() < arenaW || dst.Height() < hudHeight+g.arena.Rows+1 {
		g.renderOverlay(dst, "Window too small",
			fmt.Sprintf("Need %dx%d", arenaW, hudHeight+g.arena.Rows+1))
		return
	}

	offX := (dst.Width() - arenaW) / 2
	g.renderArena(dst, offX, hudHeight)
	g.renderMessages(dst, hudHeight+g.arena.Rows+1)

	switch {
	case g.roundOver:
		title := "Draw!"
		if g.winner != 0 {
			title = SeatName(g.winner) + " wins!"
		}
		g.renderOverlay(dst, title, "Press R for the next round")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the title line, one status block per seat and a separator.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Round %d  Level %d  Tick %d", g.Title(), g.round, g.arena.Level, g.world.Tick())
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	x := 1
	for _, av := range g.world.AgentViews() {
		p := core.PlayerFromIndex(av.Player)
		label := fmt.Sprintf("%s %s", p, SeatName(p))
		if g.match.IsCPU(p) {
			label += " (CPU)"
		}
		var status string
		if av.Alive {
			status = fmt.Sprintf(" W%d B%d/%d R%d", g.wins[p], av.LiveBombs, av.MaxBombs, av.BombRadius)
			if av.SuperPending {
				status += " S"
			}
		} else {
			status = fmt.Sprintf(" W%d dead", g.wins[p])
		}

		color := SeatColor(p)
		if !av.Alive {
			color = core.ColorGray
		}
		dst.DrawTextColored(x, 1, label, color)
		dst.DrawTextColored(x+len([]rune(label)), 1, status, core.ColorDefault)
		x += len([]rune(label)) + len(status) + 3
	}

	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, 2, '─', core.ColorGray)
	}
}

// renderArena draws every occupied cell; empty ground is a dim dot.
func (g *Game) renderArena(dst *core.Screen, offX, offY int) {
	for r := 0; r < g.arena.Rows; r++ {
		for c := 0; c < g.arena.Cols; c++ {
			dst.SetColored(offX+c*cellW, offY+r, '·', core.ColorDarkGray)
		}
	}
	for _, v := range g.world.Cells() {
		text, color := glyph(v)
		dst.DrawTextColored(offX+v.Loc.Col*cellW, offY+v.Loc.Row, text, color)
	}
}

// glyph returns the two-column text of a cell and its color.
func glyph(v sim.CellView) (string, core.Color) {
	switch v.Kind {
	case sim.KindWall:
		return "██", core.ColorGray
	case sim.KindBrick:
		return "▒▒", core.ColorBrown
	case sim.KindBonus:
		switch v.Bonus {
		case sim.ExpandBombRadius:
			return "+R", core.ColorBrightCyan
		case sim.AddMoreBombs:
			return "+B", core.ColorBrightGreen
		default:
			return "+S", core.ColorBrightMagenta
		}
	case sim.KindFire:
		switch v.FireStage {
		case 0:
			return "**", core.ColorBrightYellow
		case 1:
			return "**", core.ColorOrange
		default:
			return "**", core.ColorRed
		}
	case sim.KindBomb:
		switch suffix := v.Suffix(); suffix {
		case "CentralFire":
			return "@@", core.ColorBrightRed
		case "SuperBomb":
			return "(S", core.ColorBrightMagenta
		case "":
			return "()", core.ColorWhite
		default:
			return "(" + suffix, core.ColorBrightWhite
		}
	case sim.KindAgent:
		return string(arrow(v.Dir)) + fmt.Sprint(v.Player+1), SeatColor(core.PlayerFromIndex(v.Player))
	case sim.KindRoamer:
		switch v.Roamer {
		case sim.RandomCritter:
			return "~~", core.ColorGreen
		case sim.BlockBug:
			return "][", core.ColorBrightCyan
		default:
			return "}{", core.ColorMagenta
		}
	}
	return "??", core.ColorDefault
}

func arrow(d sim.Direction) rune {
	switch d {
	case sim.East:
		return '▶'
	case sim.South:
		return '▼'
	case sim.West:
		return '◀'
	default:
		return '▲'
	}
}

// renderMessages draws the latest round messages under the arena.
func (g *Game) renderMessages(dst *core.Screen, y int) {
	for i, msg := range g.messages {
		if y+i >= dst.Height() {
			return
		}
		dst.DrawTextCentered(y+i, msg, core.ColorYellow)
	}
}

// renderOverlay draws a centered box with two lines.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(w, 5)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorDefault)
}

// DebugState returns a plain-text dump of the session.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Round: %d, Level: %d\n", g.tick, g.round, g.arena.Level)
	if g.world != nil {
		fmt.Fprintf(&b, "World tick: %d, Alive: %v\n", g.world.Tick(), g.world.Alive())
	}
	fmt.Fprintf(&b, "RoundOver: %v, Winner: %v, Paused: %v\n", g.roundOver, g.winner, g.paused)
	return b.String()
}
