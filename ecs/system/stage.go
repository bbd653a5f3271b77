package system

import (
	"log"
	"math/rand"

	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
	"github.com/milk9111/spaceranger/prefabs"
)

// EnemySpawnFunc creates one enemy of type t at (x, y).
type EnemySpawnFunc func(w *ecs.World, t component.EntityType, x, y, speedY float64) (ecs.Entity, error)

// StageSystem drives the wave state machine: a cooldown, then a wave whose
// spawners release enemies at fixed intervals, then another cooldown.
type StageSystem struct {
	cfg    prefabs.StageSpec
	script *StageScript
	rng    *rand.Rand
	winW   float64
	winH   float64
	spawn  EnemySpawnFunc
}

func NewStageSystem(cfg prefabs.StageSpec, script *StageScript, rng *rand.Rand, winW, winH float64) *StageSystem {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}
	return &StageSystem{
		cfg:    cfg,
		script: script,
		rng:    rng,
		winW:   winW,
		winH:   winH,
		spawn:  entity.NewEnemy,
	}
}

// SetSpawnFunc replaces how enemies are created.
func (s *StageSystem) SetSpawnFunc(fn EnemySpawnFunc) {
	if fn != nil {
		s.spawn = fn
	}
}

// SetConfig swaps the stage tuning, e.g. after game.yaml was edited.
func (s *StageSystem) SetConfig(cfg prefabs.StageSpec) {
	s.cfg = cfg
}

// SetScript swaps the spawner script.
func (s *StageSystem) SetScript(script *StageScript) {
	s.script = script
}

func (s *StageSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	e, ok := w.First(component.GameplayStageComponent.Kind(), component.EnemyCountComponent.Kind())
	if !ok {
		return
	}
	stage, _ := ecs.Get(w, e, component.GameplayStageComponent.Kind())
	count, _ := ecs.Get(w, e, component.EnemyCountComponent.Kind())

	switch stage.State.Phase {
	case component.StageSpawning:
		s.updateSpawning(w, stage, count)
	case component.StageCooldown:
		stage.State.Timer.Tick(common.FixedDelta)
		if !stage.State.Timer.Finished() {
			return
		}
		s.nextWave(stage)
	}
}

func (s *StageSystem) updateSpawning(w *ecs.World, stage *component.GameplayStage, count *component.EnemyCount) {
	spawners := stage.State.Spawners
	kept := spawners[:0]
	for i := range spawners {
		sp := spawners[i]
		if sp.Done() {
			continue
		}
		sp.Interval.Tick(common.FixedDelta)
		for n := sp.Interval.TimesFinished(); n > 0 && !sp.Done(); n-- {
			x, y := s.spawnPoint(sp.Location)
			sp.Spawned++
			if _, err := s.spawn(w, sp.EntityType, x, y, sp.SpeedY); err != nil {
				log.Printf("stage: spawn %s: %v", sp.EntityType, err)
				continue
			}
			count.Increment(sp.EntityType)
		}
		kept = append(kept, sp)
	}
	stage.State.Spawners = kept

	if len(kept) == 0 {
		stage.State = component.StageState{
			Phase: component.StageCooldown,
			Timer: component.NewTimer(s.cfg.Cooldown, component.TimerOnce),
		}
	}
}

func (s *StageSystem) nextWave(stage *component.GameplayStage) {
	stage.Wave.Number++
	stage.Wave.Type = ChooseStageType(stage.Wave.Number, s.rng.Float64(), s.cfg)

	spawners, err := s.script.Spawners(stage.Wave, s.winW, s.winH, s.cfg)
	if err != nil {
		log.Printf("stage: %v; using default spawners", err)
		spawners = DefaultSpawners(stage.Wave, s.winW, s.winH, s.cfg)
	}
	log.Printf("stage: wave %d (%s), %d spawners", stage.Wave.Number, stage.Wave.Type, len(spawners))

	stage.State = component.StageState{
		Phase:    component.StageSpawning,
		Spawners: spawners,
	}
}

// spawnPoint picks a uniform point inside loc.
func (s *StageSystem) spawnPoint(loc component.SpawnerLocation) (float64, float64) {
	x := loc.CenterX + (s.rng.Float64()-0.5)*loc.Width
	y := loc.CenterY + (s.rng.Float64()-0.5)*loc.Height
	return x, y
}

// ChooseStageType maps a roll in [0,1) to the stage type of a wave. The first
// wave is always normal.
func ChooseStageType(wave int, roll float64, cfg prefabs.StageSpec) component.StageType {
	if wave <= 1 {
		return component.StageNormal
	}
	if roll < cfg.AsteroidFieldChance {
		return component.StageAsteroidField
	}
	if roll < cfg.AsteroidFieldChance+cfg.SaucerInvasionChance {
		return component.StageSaucerInvasion
	}
	return component.StageNormal
}

// DefaultSpawners is the normal wave layout: 20 asteroids per wave number
// spread evenly over the stage length.
func DefaultSpawners(wave component.StageWave, winW, winH float64, cfg prefabs.StageSpec) []component.EnemySpawner {
	total := 20 * wave.Number
	if total <= 0 {
		return nil
	}
	return []component.EnemySpawner{{
		EntityType: component.EntityTypeAsteroid,
		SpawnTotal: total,
		Interval:   component.NewTimer(cfg.Length/float64(total), component.TimerRepeating),
		Location: component.SpawnerLocation{
			CenterX: 0,
			CenterY: winH/2 + cfg.SpawnMargin,
			Width:   winW - 2*cfg.SpawnMargin,
			Height:  30,
		},
	}}
}
