package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomz197/hive/internal/input"
	"github.com/tomz197/hive/internal/object"
	"github.com/tomz197/hive/internal/physics"
)

// scriptedRand returns the queued draws in order, panicking past the end or
// when a draw does not fit the requested range.
type scriptedRand struct {
	draws []int
}

func (r *scriptedRand) IntN(n int) int {
	if len(r.draws) == 0 {
		panic("scriptedRand: out of draws")
	}
	v := r.draws[0]
	r.draws = r.draws[1:]
	if v < 0 || v >= n {
		panic("scriptedRand: draw out of range")
	}
	return v
}

// constRand always draws the same value (modulo n). With 1 no upgrade ever
// spawns and every enemy is a RedWasp at y=51.
type constRand int

func (r constRand) IntN(n int) int {
	return int(r) % n
}

type fixedPointer struct {
	x, y float64
	ok   bool
}

func (p fixedPointer) ScreenToLogical(int, int) (float64, float64, bool) {
	return p.x, p.y, p.ok
}

func newRunningGame(t *testing.T, rng object.Rand) *Game {
	t.Helper()
	g := New(Options{Rand: rng})
	g.Start()
	require.Equal(t, PhaseRunning, g.Phase)
	return g
}

func redWaspAt(x, y int) *object.Enemy {
	e := object.NewRedWasp(&scriptedRand{draws: []int{0}})
	e.Center = physics.Location{X: x, Y: y}
	e.Prev = e.Center
	return e
}

func yellowJacketAt(x, y int) *object.Enemy {
	e := object.NewYellowJacket(&scriptedRand{draws: []int{0}})
	e.Center = physics.Location{X: x, Y: y}
	e.Prev = e.Center
	return e
}

func upgradeAt(x, y int) *object.Upgrade {
	u := object.NewUpgrade(&scriptedRand{draws: []int{0, 0}})
	u.Center = physics.Location{X: x, Y: y}
	return u
}

func TestPhase(t *testing.T) {
	assert.Equal(t, "not_started", PhaseNotStarted.String())
	assert.Equal(t, "won", PhaseWon.String())
	assert.False(t, PhaseRunning.Over())
	assert.True(t, PhaseWon.Over())
	assert.True(t, PhaseLost.Over())
}

func TestGame_Start(t *testing.T) {
	g := New(Options{Rand: constRand(1)})
	assert.Equal(t, PhaseNotStarted, g.Phase)
	assert.Equal(t, DefaultWinScore, g.WinScore())

	g.Start()
	assert.Equal(t, PhaseRunning, g.Phase)
	assert.Equal(t, physics.Location{X: 640, Y: 360}, g.Bee.Center)
	assert.Equal(t, 48, g.Bee.TopBoundary)
	assert.Equal(t, object.MaxHealth, g.Bee.Health)
	assert.Equal(t, object.MaxAmmo, g.Bee.Ammo)

	g.Bee.Center.X = 100
	g.Start()
	assert.Equal(t, 100, g.Bee.Center.X, "Start only acts on the start screen")
}

func TestGame_Advance(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Score = 3999
	assert.True(t, g.Advance())
	assert.Equal(t, 1, g.Tick)

	g.Score = 4000
	assert.False(t, g.Advance())
	assert.Equal(t, 2, g.Tick, "the win check still counts the tick")
	assert.Equal(t, PhaseWon, g.Phase)

	assert.False(t, g.Advance())
	assert.Equal(t, 2, g.Tick)
}

func TestGame_CustomWinScore(t *testing.T) {
	g := New(Options{Rand: constRand(1), WinScore: 100})
	g.Start()
	g.Score = 100
	assert.False(t, g.Step(input.Input{}))
	assert.Equal(t, PhaseWon, g.Phase)
}

func TestGame_BulletsKillRedWasp(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Bee.Center = physics.Location{X: 100, Y: 360}
	wasp := redWaspAt(900, 360)
	g.Enemies = []*object.Enemy{wasp}

	for hit := 1; hit <= 3; hit++ {
		g.Bee.Bullets = append(g.Bee.Bullets, object.NewBullet(910, 370))
		g.resolveCollisions()
		assert.Equal(t, 30-10*hit, wasp.Health)
		assert.Empty(t, g.Bee.Bullets, "bullet is spent on hit")
	}

	g.pruneDead()
	assert.Empty(t, g.Enemies)
	assert.Equal(t, 100, g.Score)
	assert.Equal(t, 1, g.Stats().RedWaspKills)
}

func TestGame_BulletHitsOnlyOnce(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Bee.Center = physics.Location{X: 100, Y: 360}
	first := yellowJacketAt(900, 360)
	second := yellowJacketAt(900, 360)
	g.Enemies = []*object.Enemy{first, second}
	g.Bee.Bullets = []*object.Bullet{object.NewBullet(910, 370)}

	g.resolveCollisions()
	assert.Equal(t, 90, first.Health)
	assert.Equal(t, 100, second.Health)
	assert.Empty(t, g.Bee.Bullets)
}

func TestGame_EnemyContact(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	wasp := redWaspAt(650, 370)
	wasp.Prev = physics.Location{X: 660, Y: 380}
	g.Enemies = []*object.Enemy{wasp}

	g.resolveCollisions()
	assert.Equal(t, 95, g.Bee.Health)
	assert.Equal(t, physics.Location{X: 750, Y: 470}, wasp.Center, "knocked back 10x its last step")
}

func TestGame_UpgradeHeal(t *testing.T) {
	g := newRunningGame(t, &scriptedRand{draws: []int{0}})
	g.Bee.Health = 40
	g.Upgrades = []*object.Upgrade{upgradeAt(650, 370), upgradeAt(100, 600)}

	g.resolveCollisions()
	assert.Equal(t, object.MaxHealth, g.Bee.Health)
	require.Len(t, g.Upgrades, 1)
	assert.Equal(t, 100, g.Upgrades[0].Center.X)
	assert.Equal(t, 1, g.Stats().UpgradesTaken)
}

func TestGame_UpgradeSwarmClear(t *testing.T) {
	g := newRunningGame(t, &scriptedRand{draws: []int{1}})
	g.Upgrades = []*object.Upgrade{upgradeAt(650, 370)}
	g.Enemies = []*object.Enemy{redWaspAt(1200, 100), yellowJacketAt(1200, 600)}

	g.resolveCollisions()
	assert.Empty(t, g.Enemies)
	assert.Empty(t, g.Upgrades)
	assert.Equal(t, 400, g.Score)

	st := g.Stats()
	assert.Equal(t, 1, st.RedWaspKills)
	assert.Equal(t, 1, st.YellowJacketKills)
	assert.Equal(t, 2, st.Kills())
}

func TestGame_AdjacentUpgradesBothCollected(t *testing.T) {
	g := newRunningGame(t, &scriptedRand{draws: []int{0, 0}})
	g.Upgrades = []*object.Upgrade{upgradeAt(650, 370), upgradeAt(630, 350)}

	g.resolveCollisions()
	assert.Empty(t, g.Upgrades)
	assert.Equal(t, 2, g.Stats().UpgradesTaken)
}

func TestGame_UpgradeSpawn(t *testing.T) {
	g := newRunningGame(t, &scriptedRand{draws: []int{0, 500, 200}})
	g.Tick = 1
	g.maybeSpawnUpgrade()
	require.Len(t, g.Upgrades, 1)
	assert.Equal(t, physics.Location{X: 550, Y: 400}, g.Upgrades[0].Center)

	g.rng = &scriptedRand{draws: []int{1}}
	g.maybeSpawnUpgrade()
	assert.Len(t, g.Upgrades, 1)

	g.Upgrades = append(g.Upgrades, upgradeAt(100, 600))
	g.rng = &scriptedRand{draws: []int{0}}
	g.maybeSpawnUpgrade()
	assert.Len(t, g.Upgrades, MaxUpgrades, "no third crate")
}

func TestGame_EnemySpawnCadence(t *testing.T) {
	var draws []int
	for tick := 1; tick < 20; tick++ {
		draws = append(draws, 1) // upgrade roll
	}
	draws = append(draws, 1, 0, 0) // upgrade roll, YellowJacket, y=50
	g := newRunningGame(t, &scriptedRand{draws: draws})

	for tick := 1; tick < 20; tick++ {
		require.True(t, g.Step(input.Input{}))
		assert.Empty(t, g.Enemies)
	}
	require.True(t, g.Step(input.Input{}))
	require.Len(t, g.Enemies, 1)
	e := g.Enemies[0]
	assert.Equal(t, object.KindYellowJacket, e.Kind)
	assert.Equal(t, physics.Location{X: 1400, Y: 50}, e.Center)
}

func TestGame_EnemyCap(t *testing.T) {
	g := newRunningGame(t, &scriptedRand{draws: []int{1}})
	for range MaxEnemies {
		g.Enemies = append(g.Enemies, redWaspAt(1400, 60))
	}
	g.Tick = EnemySpawnInterval - 1

	require.True(t, g.Step(input.Input{}))
	assert.Len(t, g.Enemies, MaxEnemies)
}

func TestGame_ReloadCycle(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Bee.Ammo = 0

	require.True(t, g.Step(input.Input{Space: true}))
	assert.False(t, g.Bee.Reloaded)
	assert.False(t, g.ReloadPrompt, "the prompt follows on the next update")
	assert.Empty(t, g.Bee.Bullets)

	require.True(t, g.Step(input.Input{Reload: true}))
	assert.True(t, g.ReloadPrompt)
	assert.Equal(t, object.ReloadTicks, g.Bee.ReloadCounter)

	for i := 1; i < object.ReloadTicks; i++ {
		require.True(t, g.Step(input.Input{Reload: true, Space: true}))
		assert.Equal(t, object.ReloadTicks-i, g.Bee.ReloadCounter, "R does not restart a running reload")
		assert.True(t, g.ReloadPrompt)
	}

	require.True(t, g.Step(input.Input{}))
	assert.Zero(t, g.Bee.ReloadCounter)
	assert.True(t, g.Bee.Reloaded)
	assert.False(t, g.ReloadPrompt)
	assert.Equal(t, object.MaxAmmo, g.Bee.Ammo)

	require.True(t, g.Step(input.Input{Reload: true}))
	assert.Zero(t, g.Bee.ReloadCounter, "full clip cannot reload")
}

func TestGame_FireAndPruneBullets(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Bee.Center = physics.Location{X: 1200, Y: 360}

	require.True(t, g.Step(input.Input{Space: true}))
	require.Len(t, g.Bee.Bullets, 1)
	assert.Equal(t, 29, g.Bee.Ammo)

	require.True(t, g.Step(input.Input{}))
	require.True(t, g.Step(input.Input{}))
	assert.Equal(t, 1240, g.Bee.Bullets[0].Center.X)

	require.True(t, g.Step(input.Input{}))
	assert.Empty(t, g.Bee.Bullets, "bullet past the right edge is dropped")
	assert.Equal(t, 1, g.Stats().ShotsFired)
}

func TestGame_MouseFire(t *testing.T) {
	tests := []struct {
		name    string
		pointer Pointer
		bullets int
	}{
		{name: "inside playfield", pointer: fixedPointer{x: 1000, y: 360, ok: true}, bullets: 1},
		{name: "outside playfield", pointer: fixedPointer{ok: false}, bullets: 0},
		{name: "no pointer", pointer: nil, bullets: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(Options{Rand: constRand(1), Pointer: tt.pointer})
			g.Start()
			g.HandleInput(input.Input{Click: true, ClickCol: 10, ClickRow: 10})
			require.Len(t, g.Bee.Bullets, tt.bullets)
			if tt.bullets > 0 {
				assert.InDelta(t, 20, g.Bee.Bullets[0].VX, 1e-9)
				assert.InDelta(t, 0, g.Bee.Bullets[0].VY, 1e-9)
			}
		})
	}
}

func TestGame_HandleInputMoves(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.HandleInput(input.Input{Up: true, Left: true})
	assert.Equal(t, physics.Location{X: 620, Y: 340}, g.Bee.Center)

	g.HandleInput(input.Input{Down: true, Right: true})
	assert.Equal(t, physics.Location{X: 640, Y: 360}, g.Bee.Center)

	g.Phase = PhaseLost
	g.HandleInput(input.Input{Right: true, Space: true})
	assert.Equal(t, 640, g.Bee.Center.X, "input is ignored once the game is over")
	assert.Empty(t, g.Bee.Bullets)
}

func TestGame_DeathEndsGame(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Bee.Health = 5
	g.Enemies = []*object.Enemy{redWaspAt(660, 380)}

	assert.False(t, g.Step(input.Input{}))
	assert.Equal(t, PhaseLost, g.Phase)
	assert.LessOrEqual(t, g.Bee.Health, 0)

	tick := g.Tick
	assert.False(t, g.Step(input.Input{}))
	assert.Equal(t, tick, g.Tick, "a lost game does not tick")
	assert.False(t, g.CheckDeath())
}

func TestGame_DeathBeatsWinOnSameTick(t *testing.T) {
	g := newRunningGame(t, constRand(1))
	g.Score = DefaultWinScore - 100
	g.Bee.Health = 5
	wasp := redWaspAt(660, 380)
	wasp.Health = 0
	g.Enemies = []*object.Enemy{wasp}

	assert.False(t, g.Step(input.Input{}))
	assert.Equal(t, DefaultWinScore, g.Score, "the dying wasp still scores")
	assert.Equal(t, PhaseLost, g.Phase, "death is checked before the next win check")
	assert.LessOrEqual(t, g.Bee.Health, 0)

	assert.False(t, g.Step(input.Input{}))
	assert.Equal(t, PhaseLost, g.Phase)
}

func TestGame_SwarmOverwhelmsIdleBee(t *testing.T) {
	g := newRunningGame(t, constRand(1))

	const limit = 5000
	for i := 0; i < limit && g.Step(input.Input{}); i++ {
		require.LessOrEqual(t, len(g.Enemies), MaxEnemies)
	}
	assert.Equal(t, PhaseLost, g.Phase)
	assert.Less(t, g.Tick, limit)
	assert.Zero(t, g.Score)
	assert.Empty(t, g.Upgrades)
}
