package component

type ProjectileSource int

const (
	FromSpaceship ProjectileSource = iota
	FromEnemy
)

func (s ProjectileSource) String() string {
	if s == FromEnemy {
		return "enemy"
	}
	return "spaceship"
}

type Projectile struct {
	Source ProjectileSource
}

var ProjectileComponent = NewComponent[Projectile]()

// DamageArea is the rectangle left by a charged shot. Every enemy inside it is
// destroyed.
type DamageArea struct {
	Width  float64
	Height float64
}

var DamageAreaComponent = NewComponent[DamageArea]()
