package object

import "github.com/tomz197/hive/internal/physics"

// Bullet is a projectile fired by the Bee.
type Bullet struct {
	Entity
	BaseVelocity float64 // Speed used for aimed shots
	VX, VY       float64 // Velocity in units per tick
	spent        bool    // Hit something; dropped at the end of the scan
}

// Bullet defaults.
const (
	BulletSize         = 50
	BulletBaseVelocity = 20.0
)

// NewBullet creates a bullet centred at (x, y) travelling right.
func NewBullet(x, y int) *Bullet {
	return &Bullet{
		Entity: Entity{
			Kind:   KindBullet,
			Box:    physics.Box{Center: physics.Location{X: x, Y: y}, W: BulletSize, H: BulletSize},
			Sprite: SpriteBullet,
		},
		BaseVelocity: BulletBaseVelocity,
		VX:           BulletBaseVelocity,
		VY:           0,
	}
}

// Advance moves the bullet by its velocity, truncating toward zero.
func (b *Bullet) Advance() {
	b.Center.X = int(float64(b.Center.X) + b.VX)
	b.Center.Y = int(float64(b.Center.Y) + b.VY)
}

// MarkSpent flags the bullet for removal.
func (b *Bullet) MarkSpent() {
	b.spent = true
}

// Spent reports whether the bullet already hit something this tick.
func (b *Bullet) Spent() bool {
	return b.spent
}
