package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// entityBB returns the axis-aligned box of e. Entities without a transform or
// sprite have no box.
func entityBB(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	s, ok := ecs.Get(w, e, component.SpriteComponent.Kind())
	if !ok {
		return cp.BB{}, false
	}
	width, height := s.Size(t)
	return cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, width/2, height/2), true
}

func overlaps(w *ecs.World, a, b ecs.Entity) bool {
	ba, ok := entityBB(w, a)
	if !ok {
		return false
	}
	bb, ok := entityBB(w, b)
	if !ok {
		return false
	}
	return ba.Intersects(bb)
}

func isInvulnerable(w *ecs.World, e ecs.Entity) bool {
	return ecs.Has(w, e, component.InvulnerabilityComponent.Kind())
}

func entityType(w *ecs.World, e ecs.Entity) component.EntityType {
	if t, ok := ecs.Get(w, e, component.EntityTypeComponent.Kind()); ok {
		return *t
	}
	return component.EntityTypeUnknown
}
