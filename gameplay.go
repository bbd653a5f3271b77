package main

import (
	"fmt"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
	"github.com/milk9111/spaceranger/ecs/system"
	"github.com/milk9111/spaceranger/prefabs"
)

type gameplayConfig struct {
	spec     *prefabs.GameSpec
	script   *system.StageScript
	bindings system.Bindings
	keys     system.KeySource
	sound    system.SoundPlayer
	rng      *rand.Rand
	addScore func(int)
	debug    bool
}

// gameplay is one run: its own world, the systems that drive it and the
// spaceship the HUD follows.
type gameplay struct {
	world     *ecs.World
	scheduler *ecs.Scheduler
	render    *system.RenderSystem
	stage     *system.StageSystem
	split     *system.AsteroidSplitSystem
	score     *system.ScoreSystem
	ship      ecs.Entity
	over      bool
}

func newGameplay(cfg gameplayConfig) (*gameplay, error) {
	if cfg.spec == nil {
		return nil, fmt.Errorf("gameplay: no game config")
	}

	g := &gameplay{world: ecs.NewWorld()}

	if _, err := entity.NewCamera(g.world); err != nil {
		return nil, fmt.Errorf("gameplay: %w", err)
	}
	ship, err := entity.NewSpaceship(g.world, common.WindowHeight)
	if err != nil {
		return nil, fmt.Errorf("gameplay: %w", err)
	}
	g.ship = ship
	if _, err := entity.NewStage(g.world, cfg.spec.Stage.InitCooldown); err != nil {
		return nil, fmt.Errorf("gameplay: %w", err)
	}

	stageCfg := cfg.spec.Stage
	g.stage = system.NewStageSystem(stageCfg, cfg.script, cfg.rng, common.WindowWidth, common.WindowHeight)
	g.split = system.NewAsteroidSplitSystem(stageCfg.SplitSpeedX, stageCfg.SplitSpeedY)
	g.score = system.NewScoreSystem(system.ScoreTable(cfg.spec.Scores), cfg.addScore)
	g.render = system.NewRenderSystem()
	g.render.Debug = cfg.debug

	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(cfg.keys, cfg.bindings),
		g.stage,

		system.NewOutOfBoundsSystem(common.WindowWidth, common.WindowHeight, stageCfg.DespawnMargin),
		system.NewEnemyCollisionSystem(),
		system.NewProjectileHitSystem(),
		system.NewChargedShotHitSystem(),

		system.NewSpaceshipHitSystem(),
		g.split,
		system.NewDespawnSystem(func() { g.over = true }),
		g.score,

		system.NewSpaceshipMovementSystem(),
		system.NewSpaceshipVelocitySystem(common.WindowWidth),
		system.NewVelocitySystem(),

		system.NewPropulsionSystem(),
		system.NewShootSystem(),
		system.NewEnemyShootSystem(),
		system.NewInvulnerabilitySystem(),
		system.NewTTLSystem(),
		system.NewAnimationSystem(),

		system.NewAudioSystem(cfg.sound),
	)
	return g, nil
}

// Update advances the run by one fixed step.
func (g *gameplay) Update() {
	if g == nil || g.over {
		return
	}
	g.world.Tick(g.scheduler)
}

func (g *gameplay) Draw(screen *ebiten.Image) {
	if g == nil {
		return
	}
	g.render.Draw(g.world, screen)
}

// Over reports whether the spaceship has been destroyed.
func (g *gameplay) Over() bool {
	return g != nil && g.over
}

// Health returns the spaceship's current and maximum health. Both are zero
// once the ship is gone.
func (g *gameplay) Health() (int, int) {
	if g == nil {
		return 0, 0
	}
	h, ok := ecs.Get(g.world, g.ship, component.HealthComponent.Kind())
	if !ok {
		return 0, 0
	}
	return max(h.Current, 0), h.Initial
}

// ApplyConfig pushes a reloaded game.yaml into the running systems.
func (g *gameplay) ApplyConfig(spec *prefabs.GameSpec) {
	if g == nil || spec == nil {
		return
	}
	g.stage.SetConfig(spec.Stage)
	g.split.SetSpeed(spec.Stage.SplitSpeedX, spec.Stage.SplitSpeedY)
	g.score.SetPoints(system.ScoreTable(spec.Scores))
}

func (g *gameplay) SetScript(script *system.StageScript) {
	if g == nil {
		return
	}
	g.stage.SetScript(script)
}

// ReloadSpaceship reapplies spaceship.yaml tuning to the live ship.
func (g *gameplay) ReloadSpaceship() error {
	if g == nil || !g.world.IsAlive(g.ship) {
		return nil
	}
	return entity.ReloadSpaceshipTuning(g.world, g.ship)
}

// Close despawns every entity of the run.
func (g *gameplay) Close() {
	if g == nil {
		return
	}
	ecs.DespawnAll(g.world, component.TransformComponent.Kind())
	ecs.DespawnAll(g.world, component.GameplayStageComponent.Kind())
	ecs.DespawnAll(g.world, component.CameraComponent.Kind())
	g.world.Events().Clear()
}
