package system

import (
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// TTLSystem counts TTL components down and destroys entities when they reach
// zero.
type TTLSystem struct{}

func NewTTLSystem() *TTLSystem {
	return &TTLSystem{}
}

func (s *TTLSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.TTLComponent.Kind(), func(e ecs.Entity, ttl *component.TTL) {
		ttl.Remaining -= common.FixedDelta
		if ttl.Remaining > 0 {
			return
		}
		ecs.DestroyEntity(w, e)
	})
}
