package system

import (
	"log"

	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

// SmallAsteroidSpawnFunc creates a small asteroid at (x, y) moving at (vx, vy).
type SmallAsteroidSpawnFunc func(w *ecs.World, x, y, vx, vy float64) (ecs.Entity, error)

// AsteroidSplitSystem breaks each destroyed large asteroid into two small
// ones flying apart.
type AsteroidSplitSystem struct {
	speedX float64
	speedY float64
	spawn  SmallAsteroidSpawnFunc
}

func NewAsteroidSplitSystem(speedX, speedY float64) *AsteroidSplitSystem {
	return &AsteroidSplitSystem{speedX: speedX, speedY: speedY, spawn: entity.NewSmallAsteroid}
}

func (s *AsteroidSplitSystem) SetSpeed(speedX, speedY float64) {
	s.speedX = speedX
	s.speedY = speedY
}

func (s *AsteroidSplitSystem) SetSpawnFunc(fn SmallAsteroidSpawnFunc) {
	if fn != nil {
		s.spawn = fn
	}
}

func (s *AsteroidSplitSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	splits := ecs.DrainAs[events.AsteroidSplit](w, events.KindAsteroidSplit)
	if len(splits) == 0 {
		return
	}

	var count *component.EnemyCount
	if e, ok := ecs.First(w, component.EnemyCountComponent.Kind()); ok {
		count, _ = ecs.Get(w, e, component.EnemyCountComponent.Kind())
	}

	for _, split := range splits {
		for _, dir := range [2]float64{-1, 1} {
			if _, err := s.spawn(w, split.X, split.Y, dir*s.speedX, s.speedY); err != nil {
				log.Printf("split: spawn small asteroid: %v", err)
				continue
			}
			if count != nil {
				count.Increment(component.EntityTypeAsteroid)
			}
		}
	}
}
