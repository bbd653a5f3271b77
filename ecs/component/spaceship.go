package component

// Spaceship holds the tuning of the player ship. The prefab fills it and the
// hot reload path overwrites it in place.
type Spaceship struct {
	MoveAccel       float64
	Damping         float64
	DashSpeed       float64
	DashTime        float64
	DashCooldown    float64
	ProjectileSpeed float64
	FiringCooldown  float64
	ChargeTime      float64
	ChargeCooldown  float64
	ChargeWidth     float64
	ChargeHeight    float64
	ChargeTTL       float64
	Invulnerability float64
	BlinkInterval   float64
}

var SpaceshipComponent = NewComponent[Spaceship]()
