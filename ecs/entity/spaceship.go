package entity

import (
	"fmt"

	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/prefabs"
)

// PropulsionOffset is how far above the ship's lower edge the thrust sits.
const PropulsionOffset = 13

// SpaceshipSpawnY is the spawn height for a window of the given height: four
// fifths of the way down from the centre.
func SpaceshipSpawnY(windowHeight float64) float64 {
	return -(windowHeight / 2) * 4 / 5
}

// NewSpaceship spawns the player ship and its propulsion.
func NewSpaceship(w *ecs.World, windowHeight float64) (ecs.Entity, error) {
	ship, err := BuildEntity(w, "spaceship.yaml")
	if err != nil {
		return 0, fmt.Errorf("spaceship: %w", err)
	}
	if err := SetEntityTransform(w, ship, 0, SpaceshipSpawnY(windowHeight)); err != nil {
		return 0, fmt.Errorf("spaceship: set transform: %w", err)
	}
	if _, err := NewPropulsion(w, ship); err != nil {
		ecs.DestroyEntity(w, ship)
		return 0, err
	}
	return ship, nil
}

func NewPropulsion(w *ecs.World, ship ecs.Entity) (ecs.Entity, error) {
	p, err := BuildEntity(w, "propulsion.yaml")
	if err != nil {
		return 0, fmt.Errorf("propulsion: %w", err)
	}
	t, ok := ecs.Get(w, ship, component.TransformComponent.Kind())
	s, hasSprite := ecs.Get(w, ship, component.SpriteComponent.Kind())
	if ok && hasSprite {
		_, h := s.Size(t)
		if err := SetEntityTransform(w, p, t.X, PropulsionY(t.Y, h)); err != nil {
			return 0, fmt.Errorf("propulsion: set transform: %w", err)
		}
	}
	return p, nil
}

// PropulsionY places the thrust right below a ship of height h at y.
func PropulsionY(shipY, shipHeight float64) float64 {
	return shipY - shipHeight + PropulsionOffset
}

// ReloadSpaceshipTuning rereads spaceship.yaml and copies its tuning onto
// ship. Health and the dash/shoot state are left alone.
func ReloadSpaceshipTuning(w *ecs.World, ship ecs.Entity) error {
	InvalidatePrefab("spaceship.yaml")
	spec, err := loadPrefab("spaceship.yaml")
	if err != nil {
		return fmt.Errorf("spaceship: reload: %w", err)
	}
	raw, ok := spec.Components["spaceship"]
	if !ok {
		return fmt.Errorf("spaceship: reload: no spaceship component")
	}
	decoded, err := prefabs.DecodeComponentSpec[prefabs.SpaceshipComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("spaceship: reload: %w", err)
	}
	tuning, ok := ecs.Get(w, ship, component.SpaceshipComponent.Kind())
	if !ok {
		return fmt.Errorf("spaceship: reload: entity %d is not a spaceship", ship)
	}
	*tuning = SpaceshipTuning(decoded)
	return nil
}
