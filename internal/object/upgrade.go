package object

import "github.com/tomz197/hive/internal/physics"

// Upgrade spawn area and size.
const (
	UpgradeSize = 70
	upgradeMinX = 50
	upgradeMaxX = 1050
	upgradeMinY = 200
	upgradeMaxY = 600
)

// Effect is what an Upgrade does when the Bee picks it up.
type Effect int

const (
	EffectHeal       Effect = iota // Restore the bee to full health
	EffectSwarmClear               // Kill every live enemy, scoring each
)

// String returns the effect name for logs.
func (e Effect) String() string {
	if e == EffectHeal {
		return "heal"
	}
	return "swarm_clear"
}

// Upgrade is a stationary crate the Bee can pick up.
type Upgrade struct {
	Entity
}

// NewUpgrade creates a crate at a random position inside the spawn area.
func NewUpgrade(rng Rand) *Upgrade {
	return &Upgrade{
		Entity: Entity{
			Kind: KindUpgrade,
			Box: physics.Box{
				Center: physics.Location{
					X: randRange(rng, upgradeMinX, upgradeMaxX),
					Y: randRange(rng, upgradeMinY, upgradeMaxY),
				},
				W: UpgradeSize,
				H: UpgradeSize,
			},
			Sprite: SpriteCrate,
		},
	}
}

// RollEffect picks the pickup effect with a fair coin.
func RollEffect(rng Rand) Effect {
	if rng.IntN(2) == 0 {
		return EffectHeal
	}
	return EffectSwarmClear
}
