// Package events defines the gameplay events passed between systems through
// the world event queue.
package events

import (
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

const (
	KindSpaceshipIsHit ecs.EventKind = "spaceship_is_hit"
	KindAsteroidSplit  ecs.EventKind = "asteroid_split"
	KindDespawnEntity  ecs.EventKind = "despawn_entity"
	KindAddScore       ecs.EventKind = "add_score"
	KindSfx            ecs.EventKind = "sfx"
)

type SpaceshipIsHit struct {
	Entity ecs.Entity
}

type AsteroidSplit struct {
	X float64
	Y float64
}

// DespawnEntity asks the despawn handler to remove Entity. Destroyed is set
// when the entity was shot or rammed rather than leaving the screen.
type DespawnEntity struct {
	Entity    ecs.Entity
	Type      component.EntityType
	Destroyed bool
}

// AddScore is EnemyDestroyed(Type).
type AddScore struct {
	Type component.EntityType
}

type Sfx struct {
	Name string
}

const (
	SfxShoot       = "shoot"
	SfxChargedShot = "charged_shot"
	SfxExplosion   = "explosion"
	SfxHit         = "hit"
	SfxDash        = "dash"
)

func SpaceshipHit(w *ecs.World, e ecs.Entity) {
	ecs.Emit(w, KindSpaceshipIsHit, SpaceshipIsHit{Entity: e})
}

func Split(w *ecs.World, x, y float64) {
	ecs.Emit(w, KindAsteroidSplit, AsteroidSplit{X: x, Y: y})
}

// Despawn queues removal of e, reading its type from the world.
func Despawn(w *ecs.World, e ecs.Entity, destroyed bool) {
	t := component.EntityTypeUnknown
	if et, ok := ecs.Get(w, e, component.EntityTypeComponent.Kind()); ok {
		t = *et
	}
	ecs.Emit(w, KindDespawnEntity, DespawnEntity{Entity: e, Type: t, Destroyed: destroyed})
}

// PendingDespawns returns the entities already queued for despawn this tick.
func PendingDespawns(w *ecs.World) map[ecs.Entity]struct{} {
	out := make(map[ecs.Entity]struct{})
	for _, evt := range w.Events().Peek(KindDespawnEntity) {
		if d, ok := evt.Data.(DespawnEntity); ok {
			out[d.Entity] = struct{}{}
		}
	}
	return out
}

func EnemyDestroyed(w *ecs.World, t component.EntityType) {
	ecs.Emit(w, KindAddScore, AddScore{Type: t})
}

func PlaySfx(w *ecs.World, name string) {
	ecs.Emit(w, KindSfx, Sfx{Name: name})
}
