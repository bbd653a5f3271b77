package component

import "fmt"

// EntityType classifies entities for hit detection, enemy counting and scoring.
type EntityType int

const (
	EntityTypeUnknown EntityType = iota
	EntityTypeSpaceship
	EntityTypeProjectile
	EntityTypeChargedShot
	EntityTypeAsteroid
	EntityTypeSaucer
)

var entityTypeNames = map[EntityType]string{
	EntityTypeSpaceship:   "spaceship",
	EntityTypeProjectile:  "projectile",
	EntityTypeChargedShot: "charged_shot",
	EntityTypeAsteroid:    "asteroid",
	EntityTypeSaucer:      "saucer",
}

func (t EntityType) String() string {
	if name, ok := entityTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// IsEnemy reports whether the type is counted by EnemyCount.
func (t EntityType) IsEnemy() bool {
	return t == EntityTypeAsteroid || t == EntityTypeSaucer
}

func ParseEntityType(s string) (EntityType, error) {
	for t, name := range entityTypeNames {
		if name == s {
			return t, nil
		}
	}
	return EntityTypeUnknown, fmt.Errorf("unknown entity type %q", s)
}

var EntityTypeComponent = NewComponent[EntityType]()
