package system

import (
	"math"

	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// OutOfBoundsSystem despawns auto-despawning entities that drifted further
// than margin outside the window.
type OutOfBoundsSystem struct {
	halfW  float64
	halfH  float64
	margin float64
}

func NewOutOfBoundsSystem(winW, winH, margin float64) *OutOfBoundsSystem {
	return &OutOfBoundsSystem{halfW: winW / 2, halfH: winH / 2, margin: margin}
}

func (s *OutOfBoundsSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.MovableComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, m *component.Movable, t *component.Transform) {
		if !m.AutoDespawn {
			return
		}
		if math.Abs(t.X) > s.halfW+s.margin || math.Abs(t.Y) > s.halfH+s.margin {
			events.Despawn(w, e, false)
		}
	})
}
