// Package object defines the game entities: the player's Bee, its Bullets,
// the Enemy kinds and the Upgrade crates. All of them share one geometry
// (a centred bounding box) and are told apart by their Kind.
package object

import (
	"fmt"

	"github.com/tomz197/hive/internal/physics"
)

// Kind identifies the concrete entity type.
type Kind int

const (
	KindBee Kind = iota
	KindBullet
	KindRedWasp
	KindYellowJacket
	KindUpgrade
)

// String returns a readable kind name for logs.
func (k Kind) String() string {
	switch k {
	case KindBee:
		return "bee"
	case KindBullet:
		return "bullet"
	case KindRedWasp:
		return "red_wasp"
	case KindYellowJacket:
		return "yellow_jacket"
	case KindUpgrade:
		return "upgrade"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// IsEnemy reports whether the kind is a hostile entity.
func (k Kind) IsEnemy() bool {
	return k == KindRedWasp || k == KindYellowJacket
}

// Sprite references, resolved to glyph colours by the renderer.
const (
	SpriteBee          = "pistolBee"
	SpriteBullet       = "bullet"
	SpriteRedWasp      = "redwasp"
	SpriteYellowJacket = "yellowjacket"
	SpriteCrate        = "crate"
	SpriteHive         = "beehive"
)

// Rand is the random source entities draw spawn positions from.
// *math/rand/v2.Rand satisfies it; tests inject scripted sequences.
type Rand interface {
	// IntN returns a value in [0, n).
	IntN(n int) int
}

// Entity is the state shared by every game object.
type Entity struct {
	physics.Box        // Centre location and extent
	Kind        Kind   // Concrete entity type
	Sprite      string // Image reference drawn at the box
}

// Location returns a pointer to the entity's centre so it can be moved in place.
func (e *Entity) Location() *physics.Location {
	return &e.Center
}

// randRange returns a uniform value in [lo, hi].
func randRange(rng Rand, lo, hi int) int {
	return lo + rng.IntN(hi-lo+1)
}
