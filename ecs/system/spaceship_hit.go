package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// SpaceshipHitSystem applies the first SpaceshipIsHit event of a tick. The
// ship loses one health point and either despawns or turns invulnerable.
type SpaceshipHitSystem struct{}

func NewSpaceshipHitSystem() *SpaceshipHitSystem {
	return &SpaceshipHitSystem{}
}

func (s *SpaceshipHitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	hits := ecs.DrainAs[events.SpaceshipIsHit](w, events.KindSpaceshipIsHit)
	if len(hits) == 0 {
		return
	}
	ship := hits[0].Entity

	health, ok := ecs.Get(w, ship, component.HealthComponent.Kind())
	if !ok || health.Current <= 0 || isInvulnerable(w, ship) {
		return
	}

	health.Current--
	events.PlaySfx(w, events.SfxHit)
	if health.Current == 0 {
		events.Despawn(w, ship, true)
		return
	}

	duration, blink := 2.0, 0.1
	if tuning, ok := ecs.Get(w, ship, component.SpaceshipComponent.Kind()); ok {
		if tuning.Invulnerability > 0 {
			duration = tuning.Invulnerability
		}
		if tuning.BlinkInterval > 0 {
			blink = tuning.BlinkInterval
		}
	}
	_ = ecs.Add(w, ship, component.InvulnerabilityComponent.Kind(), component.NewInvulnerability(duration, blink))
}
