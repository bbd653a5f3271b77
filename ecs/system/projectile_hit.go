package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// ProjectileHitSystem matches projectiles against every typed, non-projectile
// entity. Spaceship shots ignore the ship and enemy shots ignore enemies.
// Each target and each projectile is used at most once per tick, and entities
// already queued for despawn are skipped.
type ProjectileHitSystem struct{}

func NewProjectileHitSystem() *ProjectileHitSystem {
	return &ProjectileHitSystem{}
}

func (s *ProjectileHitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	projectiles := w.Query(component.ProjectileComponent.Kind(), component.TransformComponent.Kind())
	if len(projectiles) == 0 {
		return
	}

	processed := events.PendingDespawns(w)
	for _, target := range w.Query(component.EntityTypeComponent.Kind(), component.TransformComponent.Kind()) {
		if ecs.Has(w, target, component.ProjectileComponent.Kind()) || isInvulnerable(w, target) {
			continue
		}
		targetType := entityType(w, target)
		if targetType != component.EntityTypeSpaceship && !targetType.IsEnemy() {
			continue
		}

		for _, p := range projectiles {
			if _, done := processed[p]; done {
				continue
			}
			if _, done := processed[target]; done {
				break
			}
			proj, _ := ecs.Get(w, p, component.ProjectileComponent.Kind())
			if proj.Source == component.FromSpaceship && targetType == component.EntityTypeSpaceship {
				continue
			}
			if proj.Source == component.FromEnemy && targetType.IsEnemy() {
				continue
			}
			if !overlaps(w, target, p) {
				continue
			}

			processed[target] = struct{}{}
			processed[p] = struct{}{}

			if targetType == component.EntityTypeSpaceship {
				events.SpaceshipHit(w, target)
			} else {
				events.Despawn(w, target, true)
			}
			events.Despawn(w, p, true)

			if proj.Source == component.FromSpaceship {
				events.EnemyDestroyed(w, targetType)
				if a, ok := ecs.Get(w, target, component.AsteroidComponent.Kind()); ok && a.Size == component.AsteroidLarge {
					if t, ok := ecs.Get(w, target, component.TransformComponent.Kind()); ok {
						events.Split(w, t.X, t.Y)
					}
				}
			}
		}
	}
}
