package game

import (
	"fmt"
	"math"
	"strings"

	"github.com/lunarbyte/shellstorm/internal/core"
)

// Render draws the current simulation state onto the screen buffer. All
// world-to-cell mapping happens here; the simulation itself never sees
// character cells.
func (g *Game) Render(screen *core.Screen) {
	screen.Clear()

	switch g.status {
	case core.StatusIdle:
		g.renderAttract(screen)
		return
	case core.StatusPlaying, core.StatusLevelUp, core.StatusGameOver:
		g.renderWorld(screen)
	}

	g.renderHUD(screen)

	switch g.status {
	case core.StatusLevelUp:
		g.renderLevelUp(screen)
	case core.StatusGameOver:
		g.renderGameOver(screen)
	}

	if g.paused {
		screen.DrawTextCentered(screen.Height()/2, "== PAUSED ==")
	}
}

// cellX/cellY map world pixels to screen cells, folding in earthquake shake.
func (g *Game) cellX(wx float64) int {
	return int(math.Round((wx + g.event.ShakeX) / core.CellPxW))
}

func (g *Game) cellY(wy float64) int {
	return int(math.Round((wy + g.event.ShakeY) / core.CellPxH))
}

func (g *Game) renderWorld(screen *core.Screen) {
	w, h := screen.Width(), screen.Height()
	groundRow := g.cellY(g.worldH - g.cfg.Physics.GroundHeight)

	if g.flashTimer > 0 {
		screen.FillRect(0, 0, w, groundRow, '░')
	}

	g.renderLightning(screen, groundRow)

	// Ground line with burning patches overlaid
	screen.DrawHLineColored(0, groundRow, w, '▀', seasonColor(g.season()))
	for _, patch := range g.event.Patches {
		x0 := g.cellX(patch.X)
		x1 := g.cellX(patch.X + patch.Width)
		for x := x0; x <= x1; x++ {
			screen.SetColored(x, groundRow, '^', core.ColorBrightRed)
		}
	}
	for row := groundRow + 1; row < h; row++ {
		screen.DrawHLineColored(0, row, w, '█', core.ColorGray)
	}

	for _, e := range g.elements {
		g.renderElement(screen, e)
	}

	g.renderParticles(screen)
	g.renderPlayer(screen)

	for _, f := range g.floats {
		screen.DrawTextColored(g.cellX(f.X), g.cellY(f.Y), f.Text, f.Color)
	}
}

// renderLightning draws warning columns before a strike and bolt columns
// while one fires.
func (g *Game) renderLightning(screen *core.Screen, groundRow int) {
	for _, s := range g.event.Strikes {
		x0 := g.cellX(s.X)
		x1 := g.cellX(s.X + s.Width)
		if s.Struck {
			for x := x0; x <= x1; x++ {
				screen.DrawVLineColored(x, 0, groundRow, '║', core.ColorBrightYellow)
			}
			continue
		}
		for x := x0; x <= x1; x++ {
			screen.DrawVLineColored(x, 0, groundRow, '·', core.ColorYellow)
		}
	}
}

func (g *Game) renderElement(screen *core.Screen, e Element) {
	x0 := g.cellX(e.X)
	y0 := g.cellY(e.Y)
	cw := core.Max(1, int(math.Round(e.Size/core.CellPxW)))
	ch := core.Max(1, int(math.Round(e.Size/core.CellPxH)))

	var glyph rune
	var color core.Color
	switch e.Kind {
	case ElementRock:
		glyph, color = '#', core.ColorGray
	case ElementMeteor:
		glyph, color = '@', core.ColorOrange
	case ElementWater:
		glyph, color = 'o', core.ColorBrightBlue
	case ElementSnow:
		glyph, color = '*', core.ColorBrightWhite
	}

	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			screen.SetColored(x0+dx, y0+dy, glyph, color)
		}
	}
}

func (g *Game) renderPlayer(screen *core.Screen) {
	p := g.player
	box := p.hitbox(g.character, g.worldH)
	x0 := g.cellX(box.X)
	y0 := g.cellY(box.Y)
	cw := core.Max(1, int(math.Round(box.W/core.CellPxW)))
	ch := core.Max(1, int(math.Round(box.H/core.CellPxH)))

	glyph, color := '◉', core.ColorBrightGreen
	if p.Naked {
		glyph, color = 'ω', core.ColorBrightMagenta
	}
	if g.reformTimer > 0 {
		color = core.ColorBrightCyan
	}

	for dy := 0; dy < ch; dy++ {
		for dx := 0; dx < cw; dx++ {
			screen.SetColored(x0+dx, y0+dy, glyph, color)
		}
	}

	for _, piece := range g.shellPieces {
		screen.SetColored(g.cellX(piece.X), g.cellY(piece.Y), ')', core.ColorGreen)
	}
}

func (g *Game) renderParticles(screen *core.Screen) {
	for _, p := range g.particles {
		var glyph rune
		var color core.Color
		switch p.Kind {
		case ParticleDust:
			glyph, color = '.', core.ColorGray
		case ParticleImpact:
			glyph, color = '\'', core.ColorWhite
		case ParticleSplash:
			glyph, color = '~', core.ColorBrightBlue
		case ParticleDrift:
			glyph, color = '*', core.ColorBrightWhite
		case ParticleStreak:
			glyph, color = '-', core.ColorCyan
		}
		screen.SetColored(g.cellX(p.X), g.cellY(p.Y), glyph, color)
	}
}

func (g *Game) renderHUD(screen *core.Screen) {
	st := g.State()

	screen.DrawTextColored(1, 0, fmt.Sprintf("Score %d", st.Score), core.ColorBrightWhite)

	// Health bar with hearts for banked lives
	bar := healthBar(st.Health, st.MaxHealth, 12)
	barColor := core.ColorBrightGreen
	if st.Health <= st.MaxHealth/4 {
		barColor = core.ColorBrightRed
	}
	screen.DrawTextColored(1, 1, bar, barColor)
	if st.ExtraLives > 0 {
		screen.DrawTextColored(2+len(bar), 1, strings.Repeat("♥", st.ExtraLives), core.ColorBrightRed)
	}
	if g.player.Naked {
		screen.DrawTextColored(1, 2, "NAKED", core.ColorBrightMagenta)
	}

	calendar := fmt.Sprintf("Y%d M%d %s  %02.0fs", st.Year, st.Month, st.Season, st.TimeLeft)
	screen.DrawTextColored(screen.Width()-len(calendar)-1, 0, calendar, seasonColor(g.season()))

	if st.Event != "" {
		label := strings.ToUpper(st.Event)
		screen.DrawTextColored(screen.Width()-len(label)-1, 1, label, core.ColorBrightYellow)
	} else if st.Incoming != "" {
		label := "! " + st.Incoming + " incoming"
		screen.DrawTextColored(screen.Width()-len(label)-1, 1, label, core.ColorYellow)
	}
}

func healthBar(health, maxHealth, width int) string {
	if maxHealth <= 0 {
		return ""
	}
	filled := core.Clamp(health*width/maxHealth, 0, width)
	return "[" + strings.Repeat("=", filled) + strings.Repeat(" ", width-filled) + "]"
}

func seasonColor(s Season) core.Color {
	switch s {
	case SeasonSpring:
		return core.ColorBrightGreen
	case SeasonSummer:
		return core.ColorBrightYellow
	case SeasonAutumn:
		return core.ColorOrange
	case SeasonWinter:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

func (g *Game) renderAttract(screen *core.Screen) {
	h := screen.Height()
	mid := h / 2

	screen.DrawTextCentered(mid-4, "S H E L L S T O R M")
	screen.DrawTextCentered(mid-2, "Survive the falling sky.")
	screen.DrawTextCentered(mid, g.character.Name+" - "+g.character.Blurb)
	screen.DrawTextCentered(mid+2, "enter: play   c: character   q: quit")

	// Slow marquee so the attract screen visibly lives
	if int(g.idleTimer)%2 == 0 {
		screen.DrawTextCentered(mid+4, "* * *")
	}
}

func (g *Game) renderLevelUp(screen *core.Screen) {
	w := screen.Width()
	boxW := core.Min(w-4, 46)
	boxH := 5 + len(g.offers)
	x := (w - boxW) / 2
	y := (screen.Height() - boxH) / 2

	screen.FillRect(x, y, boxW, boxH, ' ')
	screen.DrawBox(x, y, boxW, boxH)

	title := fmt.Sprintf(" Month %d ", g.month)
	screen.DrawTextColored(x+(boxW-len(title))/2, y, title, core.ColorBrightYellow)
	screen.DrawText(x+2, y+1, "Choose an upgrade:")

	for i, id := range g.offers {
		line := fmt.Sprintf("%d. %-20s %s", i+1, id.Title(), id.Description())
		if len(line) > boxW-4 {
			line = line[:boxW-4]
		}
		screen.DrawTextColored(x+2, y+3+i, line, core.ColorBrightCyan)
	}
}

func (g *Game) renderGameOver(screen *core.Screen) {
	w := screen.Width()
	boxW := core.Min(w-4, 40)
	boxH := 7
	x := (w - boxW) / 2
	y := (screen.Height() - boxH) / 2

	screen.FillRect(x, y, boxW, boxH, ' ')
	screen.DrawBox(x, y, boxW, boxH)

	screen.DrawTextColored(x+(boxW-11)/2, y+1, "GAME  OVER", core.ColorBrightRed)
	screen.DrawText(x+2, y+3, fmt.Sprintf("Score %d   Months %d", g.Score(), g.month))
	screen.DrawText(x+2, y+4, fmt.Sprintf("Rocks broken %d", g.rocksDestroyed))
	screen.DrawText(x+2, y+5, "enter: save score   r: restart")
}
