package component

import "testing"

func TestEnemyCountNeverNegative(t *testing.T) {
	var c EnemyCount
	c.Increment(EntityTypeAsteroid)
	c.Increment(EntityTypeSaucer)
	c.Increment(EntityTypeProjectile)

	if c.Total() != 2 {
		t.Fatalf("only enemies are counted, got %+v", c)
	}

	c.Decrement(EntityTypeAsteroid)
	c.Decrement(EntityTypeAsteroid)
	c.Decrement(EntityTypeSaucer)
	c.Decrement(EntityTypeSaucer)
	if c.Asteroids != 0 || c.Saucers != 0 {
		t.Fatalf("counts must not go below zero, got %+v", c)
	}
}

func TestEntityTypeRoundTrip(t *testing.T) {
	for _, typ := range []EntityType{EntityTypeSpaceship, EntityTypeProjectile, EntityTypeChargedShot, EntityTypeAsteroid, EntityTypeSaucer} {
		got, err := ParseEntityType(typ.String())
		if err != nil || got != typ {
			t.Fatalf("ParseEntityType(%q) = %v, %v", typ.String(), got, err)
		}
	}
	if EntityTypeProjectile.IsEnemy() || !EntityTypeSaucer.IsEnemy() {
		t.Fatalf("IsEnemy misclassified")
	}
}

func TestSpriteSize(t *testing.T) {
	s := Sprite{Width: 50, Height: 20}
	w, h := s.Size(&Transform{ScaleX: 2})
	if w != 100 || h != 20 {
		t.Fatalf("expected 100x20, got %vx%v", w, h)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a sprite without size")
		}
	}()
	(&Sprite{}).Size(nil)
}
