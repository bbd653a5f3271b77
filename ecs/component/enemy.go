package component

type AsteroidSize int

const (
	AsteroidLarge AsteroidSize = iota
	AsteroidSmall
)

type Asteroid struct {
	Size AsteroidSize
}

var AsteroidComponent = NewComponent[Asteroid]()

// EnemyShooter fires a projectile downwards each time Interval fires.
type EnemyShooter struct {
	Interval        Timer
	ProjectileSpeed float64
}

var EnemyShooterComponent = NewComponent[EnemyShooter]()
