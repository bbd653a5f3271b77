package component

// Velocity is in world units per second.
type Velocity struct {
	X float64
	Y float64
}

var VelocityComponent = NewComponent[Velocity]()

// Movable marks entities moved by the velocity system. AutoDespawn entities
// are removed once they leave the play area.
type Movable struct {
	AutoDespawn bool
}

var MovableComponent = NewComponent[Movable]()
