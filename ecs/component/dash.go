package component

type Direction int

const (
	DirectionRight Direction = iota
	DirectionLeft
)

func (d Direction) String() string {
	if d == DirectionLeft {
		return "left"
	}
	return "right"
}

type DashPhase int

const (
	DashIdle DashPhase = iota
	DashDashing
	DashCooldown
)

// Dash is the spaceship dash state machine: Idle -> Dashing -> Cooldown -> Idle.
type Dash struct {
	Phase     DashPhase
	Direction Direction
	Timer     Timer
}

func (d *Dash) IsIdle() bool {
	return d.Phase == DashIdle
}

var DashComponent = NewComponent[Dash]()
