// Package game holds the hive defence state machine: the bee, the enemy
// swarm, upgrade crates, scoring and the fixed per-tick pipeline that
// advances them. It knows nothing about terminals; drawing goes through a
// Surface and input arrives as an input.Input snapshot.
package game

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/tomz197/hive/internal/draw"
	"github.com/tomz197/hive/internal/input"
	"github.com/tomz197/hive/internal/object"
	"github.com/tomz197/hive/internal/physics"
)

// Phase is the current game phase.
type Phase int

const (
	PhaseNotStarted Phase = iota // Start screen, waiting for a click
	PhaseRunning                 // Ticks are advancing
	PhaseWon                     // Score reached the win threshold
	PhaseLost                    // Bee health reached zero
)

// String returns the phase name for logs.
func (p Phase) String() string {
	switch p {
	case PhaseNotStarted:
		return "not_started"
	case PhaseRunning:
		return "running"
	case PhaseWon:
		return "won"
	case PhaseLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Over reports whether the phase is terminal.
func (p Phase) Over() bool {
	return p == PhaseWon || p == PhaseLost
}

// Surface is the drawing capability the game renders onto. Coordinates are
// playfield units with the origin at the top-left corner.
type Surface interface {
	Clear()
	SetPenColor(c draw.Color)
	DrawImage(x, y int, ref string, w, h int)
	FillRect(x, y, w, h int)
	DrawStringCentered(x, y int, text string, size int)
	Present() error
}

// Pointer maps a 1-based terminal cell to playfield coordinates.
// ok is false when the cell is outside the playfield.
type Pointer interface {
	ScreenToLogical(col, row int) (x, y float64, ok bool)
}

// Stats are the per-game counters shown on the end screens.
type Stats struct {
	RedWaspKills      int
	YellowJacketKills int
	UpgradesTaken     int
	ShotsFired        int
	TicksSurvived     int
}

// Kills returns the total number of enemies killed.
func (s Stats) Kills() int {
	return s.RedWaspKills + s.YellowJacketKills
}

// Options configure a new Game. Zero values select defaults.
type Options struct {
	Rand     object.Rand // Random source; time-seeded when nil
	Logger   *log.Logger // Discarded when nil
	WinScore int         // DefaultWinScore when <= 0
	Pointer  Pointer     // Maps mouse clicks; clicks are ignored when nil
}

// Game is one round of hive defence. It is not safe for concurrent use;
// the session loop owns it.
type Game struct {
	Phase        Phase
	Score        int
	Tick         int
	Bee          *object.Bee
	Enemies      []*object.Enemy
	Upgrades     []*object.Upgrade
	ReloadPrompt bool // Show "PRESS R TO RELOAD"

	stats    Stats
	winScore int
	rng      object.Rand
	pointer  Pointer
	log      *log.Logger
}

// New creates a game on its start screen.
func New(opts Options) *Game {
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.WinScore <= 0 {
		opts.WinScore = DefaultWinScore
	}
	return &Game{
		Phase:    PhaseNotStarted,
		Bee:      object.NewBee(),
		winScore: opts.WinScore,
		rng:      opts.Rand,
		pointer:  opts.Pointer,
		log:      opts.Logger,
	}
}

// SetPointer replaces the click mapper, e.g. after the terminal was resized.
func (g *Game) SetPointer(p Pointer) {
	g.pointer = p
}

// WinScore returns the score at which the game is won.
func (g *Game) WinScore() int {
	return g.winScore
}

// Stats returns the counters collected so far.
func (g *Game) Stats() Stats {
	s := g.stats
	s.ShotsFired = g.Bee.ShotsFired
	s.TicksSurvived = g.Tick
	return s
}

// Start leaves the start screen and places the bee in the middle of the
// playfield. It does nothing unless the game has not started yet.
func (g *Game) Start() {
	if g.Phase != PhaseNotStarted {
		return
	}
	g.Bee.Center = physics.Location{X: physics.FieldWidth / 2, Y: physics.FieldHeight / 2}
	g.Bee.TopBoundary = HUDHeight
	g.Phase = PhaseRunning
	g.log.Info("game started", "win_score", g.winScore)
}

// Advance counts the tick and checks the win condition. It returns false
// when the game is not (or no longer) running.
func (g *Game) Advance() bool {
	if g.Phase != PhaseRunning {
		return false
	}
	g.Tick++
	if g.Score >= g.winScore {
		g.finish(PhaseWon)
		return false
	}
	return true
}

// Update runs the simulation half of a tick, in order: bullets, enemy
// movement, collisions, dead enemies, upgrade spawn, reload countdown,
// reload prompt, enemy spawn.
func (g *Game) Update() {
	g.Bee.AdvanceBullets()
	for _, e := range g.Enemies {
		e.Remember()
		e.MoveTowards(g.Bee.Center)
	}
	g.resolveCollisions()
	g.pruneDead()
	g.maybeSpawnUpgrade()
	if g.Bee.ReloadCounter > 0 {
		if g.Bee.CountdownReload() {
			g.log.Debug("reloaded", "tick", g.Tick)
		}
	}
	g.ReloadPrompt = !g.Bee.Reloaded
	g.maybeSpawnEnemy()
}

// HandleInput applies one tick of player input: movement, keyboard fire,
// reload and mouse fire, in that order.
func (g *Game) HandleInput(in input.Input) {
	if g.Phase != PhaseRunning {
		return
	}
	bee := g.Bee
	if in.Up {
		bee.MoveUp()
	}
	if in.Down {
		bee.MoveDown()
	}
	if in.Left {
		bee.MoveLeft()
	}
	if in.Right {
		bee.MoveRight()
	}

	// A refused shot clears Reloaded; Update turns that into the prompt.
	if in.Space && bee.Reloaded {
		bee.Fire()
	}

	if in.Reload && bee.CanReload() {
		bee.Reload()
	}

	if in.Click && g.pointer != nil {
		if x, y, ok := g.pointer.ScreenToLogical(in.ClickCol, in.ClickRow); ok {
			bee.FireAt(x, y)
		}
	}
}

// CheckDeath ends the game when the bee has no health left.
func (g *Game) CheckDeath() bool {
	if g.Phase != PhaseRunning || !g.Bee.Dead() {
		return false
	}
	g.finish(PhaseLost)
	return true
}

// Step runs one full tick without drawing. It returns false once the game
// is over.
func (g *Game) Step(in input.Input) bool {
	if !g.Advance() {
		return false
	}
	g.Update()
	g.HandleInput(in)
	return !g.CheckDeath()
}

func (g *Game) finish(outcome Phase) {
	g.Phase = outcome
	st := g.Stats()
	g.log.Info("game over",
		"outcome", outcome,
		"score", g.Score,
		"ticks", st.TicksSurvived,
		"kills", st.Kills(),
		"shots", st.ShotsFired,
		"upgrades", st.UpgradesTaken,
	)
}
