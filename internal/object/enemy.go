package object

import (
	"fmt"

	"github.com/tomz197/hive/internal/physics"
)

// enemyStats holds the per-kind constants of an enemy.
type enemyStats struct {
	health int
	dph    int
	points int
	size   int
	sprite string
}

var enemyTable = map[Kind]enemyStats{
	KindRedWasp:      {health: 30, dph: 5, points: 100, size: 50, sprite: SpriteRedWasp},
	KindYellowJacket: {health: 100, dph: 10, points: 300, size: 70, sprite: SpriteYellowJacket},
}

// Enemy spawn and movement constants.
const (
	EnemySpawnX    = 1400 // Off the right edge of the playfield
	EnemySpawnMinY = 50
	EnemySpawnMaxY = 700
	EnemyStep      = 10
	KnockbackGain  = 10
	BulletDamage   = 10
)

// Enemy is a hostile entity chasing the Bee.
type Enemy struct {
	Entity
	Health int              // Death at <= 0
	DPH    int              // Damage dealt to the bee per contact tick
	Points int              // Score awarded on death
	Prev   physics.Location // Centre before this tick's move
}

// NewEnemy creates an enemy of the given kind at x=EnemySpawnX and a random y.
func NewEnemy(kind Kind, rng Rand) (*Enemy, error) {
	stats, ok := enemyTable[kind]
	if !ok {
		return nil, fmt.Errorf("object: %s is not an enemy kind", kind)
	}
	center := physics.Location{X: EnemySpawnX, Y: randRange(rng, EnemySpawnMinY, EnemySpawnMaxY)}
	return &Enemy{
		Entity: Entity{
			Kind:   kind,
			Box:    physics.Box{Center: center, W: stats.size, H: stats.size},
			Sprite: stats.sprite,
		},
		Health: stats.health,
		DPH:    stats.dph,
		Points: stats.points,
		Prev:   center,
	}, nil
}

// NewRedWasp creates the common enemy.
func NewRedWasp(rng Rand) *Enemy {
	e, _ := NewEnemy(KindRedWasp, rng)
	return e
}

// NewYellowJacket creates the strong enemy.
func NewYellowJacket(rng Rand) *Enemy {
	e, _ := NewEnemy(KindYellowJacket, rng)
	return e
}

// Remember snapshots the current centre as the pre-move location.
func (e *Enemy) Remember() {
	e.Prev = e.Center
}

// MoveTowards steps EnemyStep on each axis toward target.
// Axes move independently, so the enemy may overshoot by up to one step.
func (e *Enemy) MoveTowards(target physics.Location) {
	if e.Center.X > target.X {
		e.Center.X -= EnemyStep
	} else {
		e.Center.X += EnemyStep
	}
	if e.Center.Y > target.Y {
		e.Center.Y -= EnemyStep
	} else {
		e.Center.Y += EnemyStep
	}
}

// PushBack knocks the enemy away from its pre-move location by
// KnockbackGain times this tick's displacement.
func (e *Enemy) PushBack() {
	dx := e.Prev.X - e.Center.X
	dy := e.Prev.Y - e.Center.Y
	e.Center.X += dx * KnockbackGain
	e.Center.Y += dy * KnockbackGain
}

// TakeDamage subtracts dmg from health.
func (e *Enemy) TakeDamage(dmg int) {
	e.Health -= dmg
}

// Dead reports whether the enemy should be removed.
func (e *Enemy) Dead() bool {
	return e.Health <= 0
}
