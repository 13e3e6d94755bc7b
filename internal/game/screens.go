package game

import (
	"fmt"

	"github.com/tomz197/hive/internal/draw"
	"github.com/tomz197/hive/internal/object"
	"github.com/tomz197/hive/internal/physics"
)

// Full-screen backgrounds.
const (
	backgroundStart = "beeswithguns"
	backgroundWin   = "beecelebration"
)

// Screen text.
const (
	textStart   = "Click to PROTECT THE HIVE!"
	textShoot   = "Controls: SPACE or LMB to shoot"
	textMove    = "WASD or Arrow Keys to Move"
	textReloadQ = "R to reload, Q to quit"
	textWon     = "You have defended the hive and won!"
	textLost    = "You have died!"
	textRestart = "SPACE to play again, Q to quit"
	textReload  = "PRESS R TO RELOAD"
)

// Screen layout.
const (
	lineSpacing   = 50
	centerX       = physics.FieldWidth / 2
	centerY       = physics.FieldHeight / 2
	reloadPromptY = physics.FieldHeight / 4
)

// Draw renders the current phase onto s and presents it.
func (g *Game) Draw(s Surface) error {
	s.Clear()
	switch g.Phase {
	case PhaseNotStarted:
		drawStartScreen(s)
	case PhaseRunning:
		g.drawField(s)
	case PhaseWon:
		g.drawWinScreen(s)
	case PhaseLost:
		g.drawDeathScreen(s)
	}
	return s.Present()
}

func drawStartScreen(s Surface) {
	drawBackground(s, backgroundStart)
	s.SetPenColor(draw.White)
	s.DrawStringCentered(centerX, centerY, textStart, titleTextSize)
	s.DrawStringCentered(centerX, centerY+lineSpacing, textShoot, bodyTextSize)
	s.DrawStringCentered(centerX, centerY+2*lineSpacing, textMove, bodyTextSize)
	s.DrawStringCentered(centerX, centerY+3*lineSpacing, textReloadQ, bodyTextSize)
}

// drawField draws the running game: hive background, crates, the bee and
// its bullets, enemies, the HUD and the reload prompt.
func (g *Game) drawField(s Surface) {
	drawBackground(s, object.SpriteHive)
	for _, u := range g.Upgrades {
		drawEntity(s, &u.Entity)
	}
	drawEntity(s, &g.Bee.Entity)
	for _, b := range g.Bee.Bullets {
		drawEntity(s, &b.Entity)
	}
	for _, e := range g.Enemies {
		drawEntity(s, &e.Entity)
	}
	g.drawHUD(s)
	if g.ReloadPrompt {
		s.SetPenColor(draw.Black)
		s.DrawStringCentered(centerX, reloadPromptY, textReload, titleTextSize)
	}
}

// drawHUD draws the top strip with the Health, Ammo and Points panels and
// pins the bee's upper movement limit to its height.
func (g *Game) drawHUD(s Surface) {
	g.Bee.TopBoundary = HUDHeight

	s.SetPenColor(draw.DarkGray)
	s.FillRect(0, 0, physics.FieldWidth, HUDHeight)

	panelY := HUDHeight / 7
	panelH := panelY * 6
	labels := [3]string{
		fmt.Sprintf("Health: %d", g.Bee.Health),
		fmt.Sprintf("Ammo: %d", g.Bee.Ammo),
		fmt.Sprintf("Points: %d", g.Score),
	}
	for i, label := range labels {
		x := hudPanelWidth * (2*i + 1)
		s.SetPenColor(draw.Orange)
		s.FillRect(x, panelY, hudPanelWidth, panelH)
		s.SetPenColor(draw.Red)
		s.DrawStringCentered(x+hudPanelWidth/2, panelY+panelH/2, label, panelH*7/10)
	}
}

func (g *Game) drawWinScreen(s Surface) {
	drawBackground(s, backgroundWin)
	s.SetPenColor(draw.White)
	g.drawSummary(s, textWon)
}

func (g *Game) drawDeathScreen(s Surface) {
	s.SetPenColor(draw.Red)
	s.FillRect(0, 0, physics.FieldWidth, physics.FieldHeight)
	s.SetPenColor(draw.Black)
	g.drawSummary(s, textLost)
}

// drawSummary writes the outcome headline followed by the game's stats.
func (g *Game) drawSummary(s Surface, headline string) {
	st := g.Stats()
	s.DrawStringCentered(centerX, centerY, headline, titleTextSize)
	s.DrawStringCentered(centerX, centerY+lineSpacing,
		fmt.Sprintf("Points: %d  Kills: %d (%d red wasps, %d yellow jackets)",
			g.Score, st.Kills(), st.RedWaspKills, st.YellowJacketKills),
		bodyTextSize)
	s.DrawStringCentered(centerX, centerY+2*lineSpacing,
		fmt.Sprintf("Shots: %d  Upgrades: %d  Ticks: %d",
			st.ShotsFired, st.UpgradesTaken, st.TicksSurvived),
		bodyTextSize)
	s.DrawStringCentered(centerX, centerY+3*lineSpacing, textRestart, bodyTextSize)
}

func drawBackground(s Surface, ref string) {
	s.DrawImage(0, 0, ref, physics.FieldWidth, physics.FieldHeight)
}

// drawEntity draws the entity's sprite over its bounding box.
func drawEntity(s Surface, e *object.Entity) {
	s.DrawImage(e.Left(), e.Top(), e.Sprite, e.W, e.H)
}
