package component

type ShootPhase int

const (
	ShootIdle ShootPhase = iota
	ShootCharging
	ShootShooting
	ShootCooldown
)

func (p ShootPhase) String() string {
	switch p {
	case ShootCharging:
		return "charging"
	case ShootShooting:
		return "shooting"
	case ShootCooldown:
		return "cooldown"
	default:
		return "idle"
	}
}

// Shoot is the spaceship firing state machine. While Shooting, Kind says
// whether a projectile or a charged shot is fired.
type Shoot struct {
	Phase ShootPhase
	Kind  EntityType
	Timer Timer
}

func (s *Shoot) IsIdle() bool {
	return s.Phase == ShootIdle
}

func (s *Shoot) IsChargingFinished() bool {
	return s.Phase == ShootCharging && s.Timer.Finished()
}

var ShootComponent = NewComponent[Shoot]()
