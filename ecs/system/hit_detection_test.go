package system

import (
	"testing"

	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

func TestEnemyCollision(t *testing.T) {
	cases := []struct {
		name        string
		enemyX      float64
		invuln      bool
		wantHit     bool
		wantDespawn bool
	}{
		{"overlap", 10, false, true, true},
		{"apart", 300, false, false, false},
		{"invulnerable_ship", 10, true, false, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			ship := mustShip(t, w)
			if c.invuln {
				_ = ecs.Add(w, ship, component.InvulnerabilityComponent.Kind(), component.NewInvulnerability(1, 0.1))
			}
			enemy := mustEnemy(t, w, component.EntityTypeAsteroid, c.enemyX, -400)

			NewEnemyCollisionSystem().Update(w)

			if got := countKind(w, events.KindSpaceshipIsHit) > 0; got != c.wantHit {
				t.Fatalf("hit = %v, want %v", got, c.wantHit)
			}
			d, ok := despawned(w)[enemy]
			if ok != c.wantDespawn {
				t.Fatalf("enemy despawn = %v, want %v", ok, c.wantDespawn)
			}
			if ok && (!d.Destroyed || d.Type != component.EntityTypeAsteroid) {
				t.Fatalf("unexpected despawn payload %+v", d)
			}
		})
	}
}

func TestProjectileHitRules(t *testing.T) {
	cases := []struct {
		name        string
		source      component.ProjectileSource
		target      component.EntityType
		wantHit     bool
		wantDespawn bool
		wantScore   bool
	}{
		{"ship_shot_hits_asteroid", component.FromSpaceship, component.EntityTypeAsteroid, false, true, true},
		{"ship_shot_hits_saucer", component.FromSpaceship, component.EntityTypeSaucer, false, true, true},
		{"ship_shot_ignores_ship", component.FromSpaceship, component.EntityTypeSpaceship, false, false, false},
		{"enemy_shot_hits_ship", component.FromEnemy, component.EntityTypeSpaceship, true, false, false},
		{"enemy_shot_ignores_enemies", component.FromEnemy, component.EntityTypeAsteroid, false, false, false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := ecs.NewWorld()
			var target ecs.Entity
			if c.target == component.EntityTypeSpaceship {
				target = mustShip(t, w)
			} else {
				target = mustEnemy(t, w, c.target, 0, -400)
			}
			p := mustProjectile(t, w, c.source, 0, -400)

			NewProjectileHitSystem().Update(w)

			gone := despawned(w)
			if got := countKind(w, events.KindSpaceshipIsHit) > 0; got != c.wantHit {
				t.Fatalf("ship hit = %v, want %v", got, c.wantHit)
			}
			if _, ok := gone[target]; ok != c.wantDespawn {
				t.Fatalf("target despawn = %v, want %v", ok, c.wantDespawn)
			}
			if _, ok := gone[p]; ok != (c.wantHit || c.wantDespawn) {
				t.Fatalf("projectile despawn = %v", ok)
			}
			if got := countKind(w, events.KindAddScore) > 0; got != c.wantScore {
				t.Fatalf("score = %v, want %v", got, c.wantScore)
			}
		})
	}
}

func TestProjectileHitSplitsLargeAsteroidsOnly(t *testing.T) {
	w := ecs.NewWorld()
	mustEnemy(t, w, component.EntityTypeAsteroid, 0, 0)
	small, err := entity.NewSmallAsteroid(w, 300, 0, 0, 0)
	if err != nil {
		t.Fatalf("small asteroid: %v", err)
	}
	mustProjectile(t, w, component.FromSpaceship, 0, 0)
	mustProjectile(t, w, component.FromSpaceship, 300, 0)

	NewProjectileHitSystem().Update(w)

	if _, ok := despawned(w)[small]; !ok {
		t.Fatalf("small asteroid should be destroyed")
	}
	splits := w.Events().Peek(events.KindAsteroidSplit)
	if len(splits) != 1 {
		t.Fatalf("expected one split, got %d", len(splits))
	}
	if s := splits[0].Data.(events.AsteroidSplit); s.X != 0 || s.Y != 0 {
		t.Fatalf("split at (%v, %v), want the large asteroid's position", s.X, s.Y)
	}
	if n := countKind(w, events.KindAddScore); n != 2 {
		t.Fatalf("expected 2 score events, got %d", n)
	}
}

func TestProjectileHitUsesEachEntityOnce(t *testing.T) {
	w := ecs.NewWorld()
	asteroid := mustEnemy(t, w, component.EntityTypeAsteroid, 0, 0)
	p1 := mustProjectile(t, w, component.FromSpaceship, 0, 0)
	p2 := mustProjectile(t, w, component.FromSpaceship, 5, 0)

	NewProjectileHitSystem().Update(w)

	gone := despawned(w)
	if len(w.Events().Peek(events.KindDespawnEntity)) != 2 {
		t.Fatalf("expected the asteroid and one projectile to despawn, got %v", gone)
	}
	if _, ok := gone[asteroid]; !ok {
		t.Fatalf("asteroid should despawn")
	}
	_, gone1 := gone[p1]
	_, gone2 := gone[p2]
	if gone1 == gone2 {
		t.Fatalf("exactly one projectile should be consumed, got p1=%v p2=%v", gone1, gone2)
	}
	if n := countKind(w, events.KindAddScore); n != 1 {
		t.Fatalf("asteroid should be scored once, got %d", n)
	}
}

func TestProjectileHitSkipsPendingDespawns(t *testing.T) {
	w := ecs.NewWorld()
	asteroid := mustEnemy(t, w, component.EntityTypeAsteroid, 0, 0)
	mustProjectile(t, w, component.FromSpaceship, 0, 0)
	events.Despawn(w, asteroid, false)

	NewProjectileHitSystem().Update(w)

	if n := countKind(w, events.KindAddScore); n != 0 {
		t.Fatalf("an asteroid already leaving should not score, got %d", n)
	}
}

func TestChargedShotHits(t *testing.T) {
	w := ecs.NewWorld()
	if _, err := entity.NewChargedShot(w, 0, -400, 40, 1000, 0.25); err != nil {
		t.Fatalf("charged shot: %v", err)
	}
	inLow := mustEnemy(t, w, component.EntityTypeAsteroid, 10, -200)
	inHigh := mustEnemy(t, w, component.EntityTypeSaucer, -20, 500)
	outside := mustEnemy(t, w, component.EntityTypeAsteroid, 200, 0)
	below := mustEnemy(t, w, component.EntityTypeAsteroid, 0, -480)
	already := mustEnemy(t, w, component.EntityTypeAsteroid, 0, 0)
	events.Despawn(w, already, false)

	NewChargedShotHitSystem().Update(w)

	gone := despawned(w)
	for _, e := range []ecs.Entity{inLow, inHigh} {
		if d, ok := gone[e]; !ok || !d.Destroyed {
			t.Fatalf("enemy %s inside the beam should be destroyed", e)
		}
	}
	for _, e := range []ecs.Entity{outside, below} {
		if _, ok := gone[e]; ok {
			t.Fatalf("enemy %s outside the beam should survive", e)
		}
	}
	if n := countKind(w, events.KindDespawnEntity); n != 3 {
		t.Fatalf("expected 3 despawn events including the pending one, got %d", n)
	}
	if n := countKind(w, events.KindAddScore); n != 2 {
		t.Fatalf("expected 2 score events, got %d", n)
	}
}

func TestOutOfBounds(t *testing.T) {
	w := ecs.NewWorld()
	ship := mustShip(t, w)
	position(t, w, ship).X = 5000
	inside := mustEnemy(t, w, component.EntityTypeAsteroid, 0, 600)
	below := mustEnemy(t, w, component.EntityTypeAsteroid, 0, -701)
	wide := mustProjectile(t, w, component.FromSpaceship, 651, 0)

	NewOutOfBoundsSystem(900, 1000, 200).Update(w)

	gone := despawned(w)
	if _, ok := gone[inside]; ok {
		t.Fatalf("asteroid inside the margin should stay")
	}
	if d, ok := gone[below]; !ok || d.Destroyed {
		t.Fatalf("asteroid past the margin should leave quietly, got %+v ok=%v", d, ok)
	}
	if _, ok := gone[wide]; !ok {
		t.Fatalf("projectile past the side margin should despawn")
	}
	if _, ok := gone[ship]; ok {
		t.Fatalf("the ship is not auto-despawning")
	}
}
