package entity

import (
	"fmt"

	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// NewProjectile spawns a projectile at (x, y) travelling vertically at vy.
func NewProjectile(w *ecs.World, source component.ProjectileSource, x, y, vy float64) (ecs.Entity, error) {
	prefab := "projectile.yaml"
	if source == component.FromEnemy {
		prefab = "enemy_projectile.yaml"
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("projectile: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("projectile: set transform: %w", err)
	}
	if err := SetEntityVelocity(w, e, 0, vy); err != nil {
		return 0, fmt.Errorf("projectile: set velocity: %w", err)
	}
	return e, nil
}

// NewChargedShot spawns a damage area of width x height whose lower edge sits
// at (x, y).
func NewChargedShot(w *ecs.World, x, y, width, height, ttl float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "charge_shot.yaml")
	if err != nil {
		return 0, fmt.Errorf("charged shot: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y+height/2); err != nil {
		return 0, fmt.Errorf("charged shot: set transform: %w", err)
	}
	if err := ecs.Add(w, e, component.DamageAreaComponent.Kind(), &component.DamageArea{Width: width, Height: height}); err != nil {
		return 0, fmt.Errorf("charged shot: add damage area: %w", err)
	}
	if s, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
		s.Width = width
		s.Height = height
	}
	if ttl > 0 {
		if err := ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: ttl}); err != nil {
			return 0, fmt.Errorf("charged shot: add ttl: %w", err)
		}
	}
	return e, nil
}
