package system

import (
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

// PropulsionSystem keeps the thrust flame under the ship.
type PropulsionSystem struct{}

func NewPropulsionSystem() *PropulsionSystem {
	return &PropulsionSystem{}
}

func (s *PropulsionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ship, ok := w.First(component.SpaceshipTagComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind())
	if !ok {
		return
	}
	shipT, _ := ecs.Get(w, ship, component.TransformComponent.Kind())
	shipS, _ := ecs.Get(w, ship, component.SpriteComponent.Kind())
	_, h := shipS.Size(shipT)

	ecs.ForEach2(w, component.PropulsionTagComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, _ *component.PropulsionTag, t *component.Transform) {
		t.X = shipT.X
		t.Y = entity.PropulsionY(shipT.Y, h)
	})
}
