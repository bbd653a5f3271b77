package system

import (
	"testing"

	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

const testWindowHeight = 1000

func mustShip(t *testing.T, w *ecs.World) ecs.Entity {
	t.Helper()
	ship, err := entity.NewSpaceship(w, testWindowHeight)
	if err != nil {
		t.Fatalf("spawn spaceship: %v", err)
	}
	return ship
}

func mustEnemy(t *testing.T, w *ecs.World, typ component.EntityType, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewEnemy(w, typ, x, y, 0)
	if err != nil {
		t.Fatalf("spawn %s: %v", typ, err)
	}
	return e
}

func mustProjectile(t *testing.T, w *ecs.World, source component.ProjectileSource, x, y float64) ecs.Entity {
	t.Helper()
	e, err := entity.NewProjectile(w, source, x, y, 0)
	if err != nil {
		t.Fatalf("spawn projectile: %v", err)
	}
	return e
}

func position(t *testing.T, w *ecs.World, e ecs.Entity) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		t.Fatalf("entity %s has no transform", e)
	}
	return tr
}

// press drives the ship's action state as if the given actions were held this
// tick.
func press(t *testing.T, w *ecs.World, ship ecs.Entity, held ...component.Action) {
	t.Helper()
	state, ok := ecs.Get(w, ship, component.ActionStateComponent.Kind())
	if !ok {
		t.Fatalf("ship has no action state")
	}
	state.Update(func(a component.Action) bool {
		for _, h := range held {
			if h == a {
				return true
			}
		}
		return false
	})
}

func despawned(w *ecs.World) map[ecs.Entity]events.DespawnEntity {
	out := make(map[ecs.Entity]events.DespawnEntity)
	for _, evt := range w.Events().Peek(events.KindDespawnEntity) {
		d := evt.Data.(events.DespawnEntity)
		out[d.Entity] = d
	}
	return out
}

func sfxNames(w *ecs.World) []string {
	var out []string
	for _, evt := range w.Events().Peek(events.KindSfx) {
		out = append(out, evt.Data.(events.Sfx).Name)
	}
	return out
}

func countKind(w *ecs.World, kind ecs.EventKind) int {
	return len(w.Events().Peek(kind))
}
