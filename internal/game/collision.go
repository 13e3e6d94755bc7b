package game

import (
	"github.com/tomz197/hive/internal/object"
)

// resolveCollisions handles bee/enemy contact, bullet hits and upgrade
// pickups for the current tick. Bullets that hit are marked spent and
// dropped once every enemy has been checked.
func (g *Game) resolveCollisions() {
	bee := g.Bee
	for _, e := range g.Enemies {
		if bee.Overlaps(e.Box) {
			e.PushBack()
			bee.TakeDamage(e.DPH)
		}
		for _, b := range bee.Bullets {
			if b.Spent() {
				continue
			}
			if e.Overlaps(b.Box) {
				e.TakeDamage(object.BulletDamage)
				b.MarkSpent()
			}
		}
	}
	bee.DropSpent()
	g.collectUpgrades()
}

// collectUpgrades removes every crate the bee touches and applies a random
// effect for each.
func (g *Game) collectUpgrades() {
	kept := g.Upgrades[:0]
	for _, u := range g.Upgrades {
		if !g.Bee.Overlaps(u.Box) {
			kept = append(kept, u)
			continue
		}
		g.applyUpgrade(object.RollEffect(g.rng))
	}
	clear(g.Upgrades[len(kept):])
	g.Upgrades = kept
}

func (g *Game) applyUpgrade(effect object.Effect) {
	g.stats.UpgradesTaken++
	switch effect {
	case object.EffectHeal:
		g.Bee.Heal()
	case object.EffectSwarmClear:
		for _, e := range g.Enemies {
			g.Score += e.Points
			g.countKill(e.Kind)
		}
		clear(g.Enemies)
		g.Enemies = g.Enemies[:0]
	}
	g.log.Debug("upgrade collected", "effect", effect, "tick", g.Tick, "score", g.Score)
}

// pruneDead removes enemies with no health left and scores them.
func (g *Game) pruneDead() {
	kept := g.Enemies[:0]
	for _, e := range g.Enemies {
		if e.Dead() {
			g.Score += e.Points
			g.countKill(e.Kind)
			continue
		}
		kept = append(kept, e)
	}
	clear(g.Enemies[len(kept):])
	g.Enemies = kept
}

func (g *Game) countKill(kind object.Kind) {
	switch kind {
	case object.KindRedWasp:
		g.stats.RedWaspKills++
	case object.KindYellowJacket:
		g.stats.YellowJacketKills++
	}
}
