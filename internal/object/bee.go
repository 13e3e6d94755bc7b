package object

import (
	"math"

	"github.com/tomz197/hive/internal/physics"
)

// Bee is the player-controlled character. It owns its live bullets.
type Bee struct {
	Entity
	Ammo          int       // Rounds left in the clip
	ReloadCounter int       // Ticks until the reload completes; 0 when idle
	Reloaded      bool      // False after a dry fire until the next reload completes
	Health        int       // Death at <= 0
	TopBoundary   int       // HUD height; the bee cannot move under it
	Bullets       []*Bullet // Live bullets in firing order
	ShotsFired    int       // Total bullets fired this game
}

// Bee tuning.
const (
	BeeSize       = 100
	MaxAmmo       = 30
	MaxHealth     = 100
	ReloadTicks   = 40
	BeeStep       = 20
	beeEdgeMargin = 20
	beeRightLimit = physics.FieldWidth - beeEdgeMargin
	beeLowerLimit = physics.FieldHeight - beeEdgeMargin
)

// NewBee creates a bee with a full clip and full health at the origin.
func NewBee() *Bee {
	return &Bee{
		Entity: Entity{
			Kind:   KindBee,
			Box:    physics.Box{W: BeeSize, H: BeeSize},
			Sprite: SpriteBee,
		},
		Ammo:     MaxAmmo,
		Reloaded: true,
		Health:   MaxHealth,
	}
}

// canFire reports whether a shot is allowed right now.
func (b *Bee) canFire() bool {
	return b.Ammo > 0 && b.ReloadCounter == 0
}

// Fire shoots a bullet straight right from the bee's centre.
// With an empty clip or during a reload it only clears Reloaded.
func (b *Bee) Fire() bool {
	if !b.canFire() {
		b.Reloaded = false
		return false
	}
	b.shoot(NewBullet(b.Center.X, b.Center.Y))
	return true
}

// FireAt shoots a bullet from the bee's centre toward (targetX, targetY).
//
// The angle is taken as atan2(dx, dy) and resolved as vx = v*sin, vy = v*cos,
// which points the bullet at the target with y growing downward.
func (b *Bee) FireAt(targetX, targetY float64) bool {
	if !b.canFire() {
		b.Reloaded = false
		return false
	}
	bullet := NewBullet(b.Center.X, b.Center.Y)
	angle := math.Atan2(targetX-float64(b.Center.X), targetY-float64(b.Center.Y))
	bullet.VY = math.Cos(angle) * bullet.BaseVelocity
	bullet.VX = math.Sin(angle) * bullet.BaseVelocity
	b.shoot(bullet)
	return true
}

func (b *Bee) shoot(bullet *Bullet) {
	b.Bullets = append(b.Bullets, bullet)
	b.Ammo--
	b.ShotsFired++
}

// Reload starts the reload countdown. Callers decide whether a reload is allowed.
func (b *Bee) Reload() {
	b.ReloadCounter = ReloadTicks
}

// CanReload reports whether a reload request should be honoured.
func (b *Bee) CanReload() bool {
	return b.ReloadCounter == 0 && b.Ammo < MaxAmmo
}

// CountdownReload advances an active reload by one tick.
// It returns true on the tick the clip is refilled.
func (b *Bee) CountdownReload() bool {
	if b.ReloadCounter <= 0 {
		return false
	}
	b.ReloadCounter--
	if b.ReloadCounter == 0 {
		b.Reloaded = true
		b.Ammo = MaxAmmo
		return true
	}
	return false
}

// Heal restores health to exactly MaxHealth.
func (b *Bee) Heal() {
	b.Health = MaxHealth
}

// TakeDamage subtracts dmg from health. Health may go negative.
func (b *Bee) TakeDamage(dmg int) {
	b.Health -= dmg
}

// Dead reports whether the bee has run out of health.
func (b *Bee) Dead() bool {
	return b.Health <= 0
}

// MoveLeft steps left unless the left edge is within the margin.
func (b *Bee) MoveLeft() {
	if b.Left() >= beeEdgeMargin {
		b.Center.X -= BeeStep
	}
}

// MoveRight steps right unless the right edge is past the limit.
func (b *Bee) MoveRight() {
	if b.Right() <= beeRightLimit {
		b.Center.X += BeeStep
	}
}

// MoveUp steps up unless the top edge is within the margin below the HUD.
func (b *Bee) MoveUp() {
	if b.Top() >= b.TopBoundary+beeEdgeMargin {
		b.Center.Y -= BeeStep
	}
}

// MoveDown steps down unless the bottom edge is past the limit.
func (b *Bee) MoveDown() {
	if b.Bottom() <= beeLowerLimit {
		b.Center.Y += BeeStep
	}
}

// AdvanceBullets moves every bullet and drops those that left the playfield.
func (b *Bee) AdvanceBullets() {
	kept := b.Bullets[:0]
	for _, bullet := range b.Bullets {
		bullet.Advance()
		if bullet.InsideField() {
			kept = append(kept, bullet)
		}
	}
	clear(b.Bullets[len(kept):])
	b.Bullets = kept
}

// DropSpent removes bullets marked spent during collision resolution.
func (b *Bee) DropSpent() {
	kept := b.Bullets[:0]
	for _, bullet := range b.Bullets {
		if !bullet.Spent() {
			kept = append(kept, bullet)
		}
	}
	clear(b.Bullets[len(kept):])
	b.Bullets = kept
}
