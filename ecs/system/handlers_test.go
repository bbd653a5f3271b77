package system

import (
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

func TestSpaceshipHit(t *testing.T) {
	w := ecs.NewWorld()
	ship := mustShip(t, w)
	health, _ := ecs.Get(w, ship, component.HealthComponent.Kind())
	sys := NewSpaceshipHitSystem()

	events.SpaceshipHit(w, ship)
	events.SpaceshipHit(w, ship)
	sys.Update(w)

	if health.Current != 2 {
		t.Fatalf("only the first hit of a tick counts, health = %d", health.Current)
	}
	inv, ok := ecs.Get(w, ship, component.InvulnerabilityComponent.Kind())
	if !ok || inv.Remaining != 2 {
		t.Fatalf("expected 2s of invulnerability, got %+v ok=%v", inv, ok)
	}
	if names := sfxNames(w); len(names) != 1 || names[0] != events.SfxHit {
		t.Fatalf("expected hit sfx, got %v", names)
	}

	events.SpaceshipHit(w, ship)
	sys.Update(w)
	if health.Current != 2 {
		t.Fatalf("an invulnerable ship must not lose health, got %d", health.Current)
	}
}

func TestSpaceshipHitLastHealthDespawns(t *testing.T) {
	w := ecs.NewWorld()
	ship := mustShip(t, w)
	health, _ := ecs.Get(w, ship, component.HealthComponent.Kind())
	health.Current = 1

	events.SpaceshipHit(w, ship)
	NewSpaceshipHitSystem().Update(w)

	if health.Current != 0 {
		t.Fatalf("health = %d, want 0", health.Current)
	}
	d, ok := despawned(w)[ship]
	if !ok || d.Type != component.EntityTypeSpaceship {
		t.Fatalf("expected the ship to be queued for despawn, got %+v ok=%v", d, ok)
	}
	if ecs.Has(w, ship, component.InvulnerabilityComponent.Kind()) {
		t.Fatalf("a destroyed ship gets no invulnerability")
	}
}

func TestAsteroidSplit(t *testing.T) {
	w := ecs.NewWorld()
	stageEntity, _ := entity.NewStage(w, 1)
	count, _ := ecs.Get(w, stageEntity, component.EnemyCountComponent.Kind())

	events.Split(w, 40, 80)
	NewAsteroidSplitSystem(120, -240).Update(w)

	smalls := w.Query(component.AsteroidComponent.Kind())
	if len(smalls) != 2 {
		t.Fatalf("expected two small asteroids, got %d", len(smalls))
	}
	var vxs []float64
	for _, e := range smalls {
		a, _ := ecs.Get(w, e, component.AsteroidComponent.Kind())
		if a.Size != component.AsteroidSmall {
			t.Fatalf("split should produce small asteroids")
		}
		if pt := position(t, w, e); pt.X != 40 || pt.Y != 80 {
			t.Fatalf("small asteroid at (%v, %v), want (40, 80)", pt.X, pt.Y)
		}
		v, _ := ecs.Get(w, e, component.VelocityComponent.Kind())
		if v.Y != -240 {
			t.Fatalf("vy = %v, want -240", v.Y)
		}
		vxs = append(vxs, v.X)
	}
	if vxs[0]+vxs[1] != 0 || math.Abs(vxs[0]) != 120 {
		t.Fatalf("small asteroids should fly apart at ±120, got %v", vxs)
	}
	if count.Asteroids != 2 {
		t.Fatalf("split asteroids should be counted, got %+v", count)
	}
}

func TestDespawnEnemiesAndSfx(t *testing.T) {
	w := ecs.NewWorld()
	stageEntity, _ := entity.NewStage(w, 1)
	count, _ := ecs.Get(w, stageEntity, component.EnemyCountComponent.Kind())
	count.Asteroids = 1
	count.Saucers = 1

	shot := mustEnemy(t, w, component.EntityTypeAsteroid, 0, 0)
	left := mustEnemy(t, w, component.EntityTypeSaucer, 0, 900)
	events.Despawn(w, shot, true)
	events.Despawn(w, left, false)
	events.Despawn(w, shot, true)

	NewDespawnSystem(nil).Update(w)

	if ecs.IsAlive(w, shot) || ecs.IsAlive(w, left) {
		t.Fatalf("both enemies should be destroyed")
	}
	if count.Total() != 0 {
		t.Fatalf("enemy count should drop to zero without going negative, got %+v", count)
	}
	if names := sfxNames(w); len(names) != 1 || names[0] != events.SfxExplosion {
		t.Fatalf("only the shot enemy explodes, got %v", names)
	}
}

func TestDespawnSpaceshipEndsRun(t *testing.T) {
	w := ecs.NewWorld()
	ship := mustShip(t, w)
	ended := 0

	events.Despawn(w, ship, true)
	NewDespawnSystem(func() { ended++ }).Update(w)

	if ecs.IsAlive(w, ship) {
		t.Fatalf("ship should be destroyed")
	}
	if _, ok := w.First(component.PropulsionTagComponent.Kind()); ok {
		t.Fatalf("propulsion should go with the ship")
	}
	if ended != 1 {
		t.Fatalf("expected the game over callback once, got %d", ended)
	}
}

func TestScore(t *testing.T) {
	table := ScoreTable(map[string]int{"asteroid": 10, "saucer": 50, "comet": 99})
	if len(table) != 2 {
		t.Fatalf("unknown names should be dropped, got %v", table)
	}

	w := ecs.NewWorld()
	total := 0
	sys := NewScoreSystem(table, func(pts int) { total += pts })

	events.EnemyDestroyed(w, component.EntityTypeAsteroid)
	events.EnemyDestroyed(w, component.EntityTypeAsteroid)
	events.EnemyDestroyed(w, component.EntityTypeSaucer)
	events.EnemyDestroyed(w, component.EntityTypeProjectile)
	sys.Update(w)

	if total != 70 {
		t.Fatalf("score = %d, want 70", total)
	}

	sys.SetPoints(map[component.EntityType]int{component.EntityTypeAsteroid: 1})
	events.EnemyDestroyed(w, component.EntityTypeAsteroid)
	sys.Update(w)
	if total != 71 {
		t.Fatalf("score after SetPoints = %d, want 71", total)
	}
}

func TestInvulnerabilityBlinksThenExpires(t *testing.T) {
	w := ecs.NewWorld()
	ship := mustShip(t, w)
	sprite, _ := ecs.Get(w, ship, component.SpriteComponent.Kind())
	_ = ecs.Add(w, ship, component.InvulnerabilityComponent.Kind(), component.NewInvulnerability(0.5, 0.1))
	sys := NewInvulnerabilitySystem()

	alphas := map[float64]bool{}
	for i := 0; i < 20; i++ {
		sys.Update(w)
		alphas[sprite.Opacity()] = true
	}
	if !alphas[0.3] || !alphas[1.0] {
		t.Fatalf("sprite should blink between 1.0 and 0.3, saw %v", alphas)
	}

	for i := 0; i < 20; i++ {
		sys.Update(w)
	}
	if ecs.Has(w, ship, component.InvulnerabilityComponent.Kind()) {
		t.Fatalf("invulnerability should expire")
	}
	if sprite.Opacity() != 1.0 {
		t.Fatalf("alpha should reset to 1.0, got %v", sprite.Opacity())
	}
}

func TestTTL(t *testing.T) {
	w := ecs.NewWorld()
	shot, err := entity.NewChargedShot(w, 0, 0, 40, 1000, 0.1)
	if err != nil {
		t.Fatalf("charged shot: %v", err)
	}
	sys := NewTTLSystem()

	for i := 0; i < 3; i++ {
		sys.Update(w)
	}
	if !ecs.IsAlive(w, shot) {
		t.Fatalf("shot expired too early")
	}
	for i := 0; i < 5; i++ {
		sys.Update(w)
	}
	if ecs.IsAlive(w, shot) {
		t.Fatalf("shot should expire after its ttl")
	}
}

type heldKeys map[ebiten.Key]bool

func (h heldKeys) IsKeyPressed(key ebiten.Key) bool { return h[key] }

func TestInputBindings(t *testing.T) {
	bindings, err := ParseBindings(map[string][]string{
		"move_left": {"A", "ArrowLeft"},
		"shoot":     {"Space"},
	})
	if err != nil {
		t.Fatalf("parse bindings: %v", err)
	}

	w := ecs.NewWorld()
	ship := mustShip(t, w)
	keys := heldKeys{ebiten.KeyArrowLeft: true, ebiten.KeySpace: true}
	NewInputSystem(keys, bindings).Update(w)

	state, _ := ecs.Get(w, ship, component.ActionStateComponent.Kind())
	if !state.Pressed(component.ActionMoveLeft) || !state.JustPressed(component.ActionShoot) {
		t.Fatalf("bound keys should drive the action state")
	}
	if state.Pressed(component.ActionMoveRight) {
		t.Fatalf("unbound action reads as pressed")
	}

	delete(keys, ebiten.KeySpace)
	NewInputSystem(keys, bindings).Update(w)
	if !state.JustReleased(component.ActionShoot) {
		t.Fatalf("expected a release edge for shoot")
	}
}

func TestParseBindingsErrors(t *testing.T) {
	cases := map[string]map[string][]string{
		"unknown_action": {"jump": {"Space"}},
		"unknown_key":    {"shoot": {"NotAKey"}},
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseBindings(raw); err == nil {
				t.Fatalf("expected an error")
			}
		})
	}
}

type recordingPlayer struct{ played []string }

func (r *recordingPlayer) Play(name string) { r.played = append(r.played, name) }

func TestAudioPlaysEachSoundOncePerTick(t *testing.T) {
	w := ecs.NewWorld()
	player := &recordingPlayer{}
	events.PlaySfx(w, events.SfxExplosion)
	events.PlaySfx(w, events.SfxShoot)
	events.PlaySfx(w, events.SfxExplosion)

	NewAudioSystem(player).Update(w)

	if len(player.played) != 2 || player.played[0] != events.SfxExplosion || player.played[1] != events.SfxShoot {
		t.Fatalf("unexpected playback %v", player.played)
	}
	if n := countKind(w, events.KindSfx); n != 0 {
		t.Fatalf("sfx events should be consumed, %d left", n)
	}
}

func TestAnimationCyclesPropulsion(t *testing.T) {
	w := ecs.NewWorld()
	mustShip(t, w)
	p, _ := w.First(component.PropulsionTagComponent.Kind())
	sprite, _ := ecs.Get(w, p, component.SpriteComponent.Kind())
	sys := NewAnimationSystem()

	heights := map[float64]bool{}
	for i := 0; i < 20; i++ {
		sys.Update(w)
		heights[sprite.Height] = true
	}
	if len(heights) < 2 {
		t.Fatalf("thrust animation should change the flame size, saw %v", heights)
	}
}
