package system

import (
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// SpaceshipVelocitySystem moves the ship horizontally but never further out
// past the window's side edges.
type SpaceshipVelocitySystem struct {
	halfW float64
}

func NewSpaceshipVelocitySystem(winW float64) *SpaceshipVelocitySystem {
	return &SpaceshipVelocitySystem{halfW: winW / 2}
}

func (s *SpaceshipVelocitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ship, ok := w.First(component.SpaceshipTagComponent.Kind(), component.TransformComponent.Kind(), component.VelocityComponent.Kind())
	if !ok {
		return
	}
	t, _ := ecs.Get(w, ship, component.TransformComponent.Kind())
	v, _ := ecs.Get(w, ship, component.VelocityComponent.Kind())

	if (t.X < -s.halfW && v.X < 0) || (t.X > s.halfW && v.X > 0) {
		return
	}
	t.X += v.X * common.FixedDelta
}

// VelocitySystem integrates velocity for everything except the spaceship.
type VelocitySystem struct{}

func NewVelocitySystem() *VelocitySystem {
	return &VelocitySystem{}
}

func (s *VelocitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.TransformComponent.Kind(), component.VelocityComponent.Kind(), func(e ecs.Entity, t *component.Transform, v *component.Velocity) {
		if ecs.Has(w, e, component.SpaceshipTagComponent.Kind()) {
			return
		}
		t.X += v.X * common.FixedDelta
		t.Y += v.Y * common.FixedDelta
	})
}
