package entity

import (
	"fmt"

	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

func enemyPrefab(t component.EntityType) (string, error) {
	switch t {
	case component.EntityTypeAsteroid:
		return "asteroid.yaml", nil
	case component.EntityTypeSaucer:
		return "saucer.yaml", nil
	}
	return "", fmt.Errorf("enemy: %s is not an enemy", t)
}

// NewEnemy spawns an enemy of type t at (x, y). A non-zero speedY overrides
// the prefab's vertical velocity.
func NewEnemy(w *ecs.World, t component.EntityType, x, y, speedY float64) (ecs.Entity, error) {
	prefab, err := enemyPrefab(t)
	if err != nil {
		return 0, err
	}
	e, err := BuildEntity(w, prefab)
	if err != nil {
		return 0, fmt.Errorf("enemy: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("enemy: set transform: %w", err)
	}
	if speedY != 0 {
		v, ok := ecs.Get(w, e, component.VelocityComponent.Kind())
		if !ok {
			v = &component.Velocity{}
		}
		if err := SetEntityVelocity(w, e, v.X, speedY); err != nil {
			return 0, fmt.Errorf("enemy: set velocity: %w", err)
		}
	}
	return e, nil
}

func NewSmallAsteroid(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error) {
	e, err := BuildEntity(w, "small_asteroid.yaml")
	if err != nil {
		return 0, fmt.Errorf("small asteroid: %w", err)
	}
	if err := SetEntityTransform(w, e, x, y); err != nil {
		return 0, fmt.Errorf("small asteroid: set transform: %w", err)
	}
	if err := SetEntityVelocity(w, e, vx, vy); err != nil {
		return 0, fmt.Errorf("small asteroid: set velocity: %w", err)
	}
	return e, nil
}
