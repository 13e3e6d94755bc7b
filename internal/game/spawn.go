package game

import (
	"github.com/tomz197/hive/internal/object"
)

// maybeSpawnUpgrade drops a crate with a 1 in UpgradeOdds chance while
// fewer than MaxUpgrades are on the field. The chance is drawn every tick.
func (g *Game) maybeSpawnUpgrade() {
	if g.rng.IntN(UpgradeOdds) != 0 || len(g.Upgrades) >= MaxUpgrades {
		return
	}
	u := object.NewUpgrade(g.rng)
	g.Upgrades = append(g.Upgrades, u)
	g.log.Debug("upgrade spawned", "x", u.Center.X, "y", u.Center.Y, "tick", g.Tick)
}

// maybeSpawnEnemy adds one enemy every EnemySpawnInterval ticks while the
// swarm is below MaxEnemies. One spawn in StrongEnemyOdds is a YellowJacket.
func (g *Game) maybeSpawnEnemy() {
	if g.Tick%EnemySpawnInterval != 0 || len(g.Enemies) >= MaxEnemies {
		return
	}
	var e *object.Enemy
	if g.rng.IntN(StrongEnemyOdds) == 0 {
		e = object.NewYellowJacket(g.rng)
	} else {
		e = object.NewRedWasp(g.rng)
	}
	g.Enemies = append(g.Enemies, e)
	g.log.Debug("enemy spawned", "kind", e.Kind, "y", e.Center.Y, "tick", g.Tick)
}
