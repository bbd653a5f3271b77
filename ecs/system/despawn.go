package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// DespawnSystem removes entities named by DespawnEntity events. Losing the
// spaceship also removes its propulsion and calls onSpaceshipDestroyed.
type DespawnSystem struct {
	onSpaceshipDestroyed func()
}

func NewDespawnSystem(onSpaceshipDestroyed func()) *DespawnSystem {
	return &DespawnSystem{onSpaceshipDestroyed: onSpaceshipDestroyed}
}

func (s *DespawnSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requests := ecs.DrainAs[events.DespawnEntity](w, events.KindDespawnEntity)
	if len(requests) == 0 {
		return
	}

	var count *component.EnemyCount
	if e, ok := ecs.First(w, component.EnemyCountComponent.Kind()); ok {
		count, _ = ecs.Get(w, e, component.EnemyCountComponent.Kind())
	}

	for _, req := range requests {
		if !ecs.DestroyEntity(w, req.Entity) {
			continue
		}

		switch {
		case req.Type.IsEnemy():
			if count != nil {
				count.Decrement(req.Type)
			}
			if req.Destroyed {
				events.PlaySfx(w, events.SfxExplosion)
			}
		case req.Type == component.EntityTypeSpaceship:
			ecs.DespawnAll(w, component.PropulsionTagComponent.Kind())
			events.PlaySfx(w, events.SfxExplosion)
			if s.onSpaceshipDestroyed != nil {
				s.onSpaceshipDestroyed()
			}
		}
	}
}
