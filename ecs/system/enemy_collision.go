package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// EnemyCollisionSystem hits the spaceship with every enemy it touches. The
// enemy is destroyed on impact.
type EnemyCollisionSystem struct{}

func NewEnemyCollisionSystem() *EnemyCollisionSystem {
	return &EnemyCollisionSystem{}
}

func (s *EnemyCollisionSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ship, ok := w.First(component.SpaceshipTagComponent.Kind(), component.TransformComponent.Kind())
	if !ok || isInvulnerable(w, ship) {
		return
	}

	pending := events.PendingDespawns(w)
	for _, enemy := range w.Query(component.EnemyTagComponent.Kind(), component.TransformComponent.Kind()) {
		if _, done := pending[enemy]; done {
			continue
		}
		if !overlaps(w, ship, enemy) {
			continue
		}
		events.SpaceshipHit(w, ship)
		events.Despawn(w, enemy, true)
	}
}
