package heist

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-heist/internal/core"
	"github.com/vovakirdan/maze-heist/internal/games/heist/sim"
)

// Render draws the current frame into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < MinWidth || dst.Height() < MinHeight {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", core.ColorAlert)
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("Need at least %dx%d", MinWidth, MinHeight), core.ColorDim)
		return
	}

	snap := g.world.Snapshot()
	switch snap.Mode {
	case sim.ModeMenu:
		g.renderMenu(dst)
		return
	case sim.ModeHelp:
		g.renderHelp(dst)
		return
	}

	g.renderHUD(dst, snap)
	g.renderMap(dst, snap)
	g.renderEntities(dst, snap)
	g.renderStatus(dst, snap)

	switch snap.Mode {
	case sim.ModeQuiz:
		if snap.Question != nil {
			g.renderQuiz(dst, *snap.Question)
		}
	case sim.ModeGameOver:
		renderOverlay(dst, core.ColorAlert, "BUSTED!", "", "[Enter] back to menu")
	case sim.ModeVictory:
		renderOverlay(dst, core.ColorSuccess, "HEIST SUCCESSFUL!",
			fmt.Sprintf("Escaped in %.1fs", snap.Stats.Elapsed), "[Enter] back to menu")
	}
}

func mapOrigin(dst *core.Screen) (int, int) {
	return (dst.Width() - mapW) / 2, hudHeight
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen, snap sim.Snapshot) {
	x := 1
	put := func(text string, c core.Color) {
		dst.DrawTextColored(x, 0, text, c)
		x += len([]rune(text)) + 2
	}

	put("MAZE HEIST", core.ColorTitle)
	got := snap.CollectiblesTotal - len(snap.Collectibles)
	put(fmt.Sprintf("◆ %d/%d", got, snap.CollectiblesTotal), core.ColorCollectible)
	put("STAMINA "+staminaBar(snap.Player.Stamina, snap.StaminaMax, 10), staminaColor(snap.Player.Stamina, snap.StaminaMax))
	if snap.Player.IsInvisible() {
		put(fmt.Sprintf("GHOST %.1f", snap.Player.Invisible), core.ColorGhost)
	}
	put(fmt.Sprintf("%.0fs", snap.Stats.Elapsed), core.ColorDim)

	dst.DrawHLine(0, 1, dst.Width(), '─', core.ColorDim)
}

func staminaBar(v, limit float64, width int) string {
	filled := 0
	if limit > 0 {
		filled = int(core.ClampF(v/limit, 0, 1) * float64(width))
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("·", width-filled) + "]"
}

func staminaColor(v, limit float64) core.Color {
	if v < limit/4 {
		return core.ColorAlert
	}
	return core.ColorAccent
}

// renderMap draws walls, floor and exits.
func (g *Game) renderMap(dst *core.Screen, snap sim.Snapshot) {
	ox, oy := mapOrigin(dst)
	grid := g.world.Grid()

	for y := 0; y < sim.Rows; y++ {
		for x := 0; x < sim.Cols; x++ {
			sx, sy := ox+x*cellWidth, oy+y
			switch grid.TileAt(sim.C(x, y)) {
			case sim.TileWall:
				dst.SetColored(sx, sy, '█', core.ColorWall)
				dst.SetColored(sx+1, sy, '█', core.ColorWall)
			case sim.TileExit:
				c := core.ColorExitLocked
				if snap.ExitOpen {
					c = core.ColorExitOpen
				}
				dst.SetColored(sx, sy, '[', c)
				dst.SetColored(sx+1, sy, ']', c)
			default:
				dst.SetColored(sx, sy, '·', core.ColorFloor)
			}
		}
	}
}

// renderEntities draws pickups, pursuers and the player, in that order.
func (g *Game) renderEntities(dst *core.Screen, snap sim.Snapshot) {
	ox, oy := mapOrigin(dst)
	draw := func(c sim.Cell, r rune, col core.Color) {
		dst.SetColored(ox+c.X*cellWidth, oy+c.Y, r, col)
		dst.SetColored(ox+c.X*cellWidth+1, oy+c.Y, ' ', col)
	}

	for _, c := range snap.Collectibles {
		draw(c, '◆', core.ColorCollectible)
	}
	for _, c := range snap.Triggers {
		draw(c, '?', core.ColorTrigger)
	}
	for _, p := range snap.Pursuers {
		if p.Fast {
			draw(p.Pos, 'G', core.ColorPursuerFast)
		} else {
			draw(p.Pos, 'g', core.ColorPursuerSlow)
		}
	}

	pc := core.ColorPlayer
	switch {
	case snap.Player.IsFrozen():
		pc = core.ColorFrozen
	case snap.Player.IsInvisible():
		pc = core.ColorGhost
	}
	draw(snap.Player.Pos, '@', pc)
}

// renderStatus draws the line under the map.
func (g *Game) renderStatus(dst *core.Screen, snap sim.Snapshot) {
	y := hudHeight + mapH
	grid := g.world.Grid()

	switch {
	case snap.Player.IsFrozen():
		dst.DrawTextCentered(y, fmt.Sprintf("FROZEN! %.1f", snap.Player.Frozen), core.ColorFrozen)
	case grid.TileAt(snap.Player.Pos) == sim.TileExit && !snap.ExitOpen:
		dst.DrawTextCentered(y, "LOCKED! Collect every diamond first", core.ColorAlert)
	case snap.Mode == sim.ModePlaying:
		dst.DrawTextCentered(y, "arrows/WASD move · shift sprint", core.ColorDim)
	}
}

func (g *Game) renderMenu(dst *core.Screen) {
	top := max(0, dst.Height()/2-9)
	dst.DrawTextCentered(top, "MAZE HEIST", core.ColorTitle)
	dst.DrawTextCentered(top+1, "a diamond heist in "+g.opts.Level.Name, core.ColorCollectible)

	spawn := g.world.Params().Spawn
	lines := []string{
		fmt.Sprintf("- Collect %d diamonds to open the exit", spawn.Collectibles),
		"- Grab ? for a trivia question",
		"- Shift sprints, but costs stamina",
		"- Avoid the guards!",
	}
	boxW := 44
	box := core.Rect{X: (dst.Width() - boxW) / 2, Y: top + 3, W: boxW, H: len(lines) + 4}
	dst.DrawBox(box, core.ColorAccent)
	dst.DrawTextCentered(box.Y+1, "MISSION OBJECTIVES", core.ColorTitle)
	for i, l := range lines {
		c := core.ColorDefault
		if i == len(lines)-1 {
			c = core.ColorPursuerFast
		}
		dst.DrawTextColored(box.X+3, box.Y+2+i, l, c)
	}

	dst.DrawTextCentered(box.Bottom()+1, "PRESS [ENTER] TO START", core.ColorDefault)
	dst.DrawTextCentered(box.Bottom()+2, "PRESS [H] FOR TIPS", core.ColorAccent)
}

func (g *Game) renderHelp(dst *core.Screen) {
	top := max(0, dst.Height()/2-8)
	dst.DrawTextCentered(top, "SURVIVAL GUIDE", core.ColorTitle)

	p := g.world.Params()
	tips := []string{
		"Use [SHIFT] to sprint out of sticky situations.",
		fmt.Sprintf("A right answer makes you a ghost for %.0f seconds.", p.InvisibleDuration),
		fmt.Sprintf("A wrong answer freezes you for %.0f seconds.", p.FreezeDuration),
		"Guards lose track of ghosts and wander instead.",
		"Fast guards (G) move quicker than slow ones (g).",
		"Don't get cornered in dead ends.",
	}
	for i, t := range tips {
		y := top + 2 + i*2
		x := max(0, (dst.Width()-len(t))/2-2)
		dst.SetColored(x, y, '◆', core.ColorCollectible)
		dst.DrawTextColored(x+2, y, t, core.ColorDefault)
	}
	dst.DrawTextCentered(top+3+len(tips)*2, "PRESS [H] OR [ENTER] TO RETURN", core.ColorDim)
}

func (g *Game) renderQuiz(dst *core.Screen, q sim.Question) {
	boxW := core.Clamp(dst.Width()-4, 24, 56)
	prompt := wrap(q.Prompt, boxW-6)
	boxH := 7 + len(prompt) + sim.OptionCount
	box := core.CenteredRect(boxW, boxH, dst.Width(), dst.Height())

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorTrigger)
	dst.DrawTextCentered(box.Y+1, "BONUS QUESTION", core.ColorTrigger)

	y := box.Y + 3
	for _, l := range prompt {
		dst.DrawTextColored(box.X+3, y, l, core.ColorDefault)
		y++
	}
	y++
	for i, opt := range q.Options {
		dst.DrawTextColored(box.X+3, y, fmt.Sprintf("%d. %s", i+1, opt), core.ColorAccent)
		y++
	}
	dst.DrawTextCentered(box.Bottom()-2, "Press 1, 2, or 3", core.ColorDim)
}

// renderOverlay draws a centered box with a title and up to two more lines.
func renderOverlay(dst *core.Screen, c core.Color, title, line, hint string) {
	w := max(len(title), len(line), len(hint)) + 8
	box := core.CenteredRect(w, 7, dst.Width(), dst.Height())
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	dst.DrawTextCentered(box.Y+1, title, c)
	if line != "" {
		dst.DrawTextCentered(box.Y+3, line, core.ColorDefault)
	}
	dst.DrawTextCentered(box.Y+5, hint, core.ColorDim)
}

// wrap splits text into lines no longer than width, breaking on spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
