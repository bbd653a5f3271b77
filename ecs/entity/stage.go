package entity

import (
	"fmt"

	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// NewStage creates the stage singleton in its initial cooldown at wave 0.
func NewStage(w *ecs.World, initCooldown float64) (ecs.Entity, error) {
	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.GameplayStageComponent.Kind(), &component.GameplayStage{
		State: component.StageState{
			Phase: component.StageCooldown,
			Timer: component.NewTimer(initCooldown, component.TimerOnce),
		},
	}); err != nil {
		return 0, fmt.Errorf("stage: add gameplay stage: %w", err)
	}
	if err := ecs.Add(w, e, component.EnemyCountComponent.Kind(), &component.EnemyCount{}); err != nil {
		return 0, fmt.Errorf("stage: add enemy count: %w", err)
	}
	return e, nil
}
