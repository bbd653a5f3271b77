package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// ChargedShotHitSystem destroys every enemy inside a live damage area.
type ChargedShotHitSystem struct{}

func NewChargedShotHitSystem() *ChargedShotHitSystem {
	return &ChargedShotHitSystem{}
}

func (s *ChargedShotHitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	areas := w.Query(component.DamageAreaComponent.Kind(), component.TransformComponent.Kind())
	if len(areas) == 0 {
		return
	}

	boxes := make([]cp.BB, 0, len(areas))
	for _, a := range areas {
		t, _ := ecs.Get(w, a, component.TransformComponent.Kind())
		d, _ := ecs.Get(w, a, component.DamageAreaComponent.Kind())
		boxes = append(boxes, cp.NewBBForExtents(cp.Vector{X: t.X, Y: t.Y}, d.Width/2, d.Height/2))
	}

	pending := events.PendingDespawns(w)
	for _, enemy := range w.Query(component.EnemyTagComponent.Kind(), component.TransformComponent.Kind()) {
		if _, done := pending[enemy]; done {
			continue
		}
		bb, ok := entityBB(w, enemy)
		if !ok {
			continue
		}
		for _, area := range boxes {
			if !area.Intersects(bb) {
				continue
			}
			events.Despawn(w, enemy, true)
			events.EnemyDestroyed(w, entityType(w, enemy))
			break
		}
	}
}
