package system

import (
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

const (
	opaqueAlpha = 1.0
	blinkAlpha  = 0.3
)

// InvulnerabilitySystem blinks invulnerable sprites and removes the
// component once it runs out.
type InvulnerabilitySystem struct{}

func NewInvulnerabilitySystem() *InvulnerabilitySystem {
	return &InvulnerabilitySystem{}
}

func (s *InvulnerabilitySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.InvulnerabilityComponent.Kind(), func(e ecs.Entity, inv *component.Invulnerability) {
		sprite, hasSprite := ecs.Get(w, e, component.SpriteComponent.Kind())

		inv.Remaining -= common.FixedDelta
		if inv.Remaining <= 0 {
			ecs.Remove(w, e, component.InvulnerabilityComponent.Kind())
			if hasSprite {
				sprite.Alpha = opaqueAlpha
			}
			return
		}

		inv.Blink.Tick(common.FixedDelta)
		if hasSprite && inv.Blink.Finished() {
			if sprite.Opacity() < opaqueAlpha {
				sprite.Alpha = opaqueAlpha
			} else {
				sprite.Alpha = blinkAlpha
			}
		}
	})
}
