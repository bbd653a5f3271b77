package entity

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/prefabs"
)

type entityPrefabSpec = prefabs.EntityBuildSpec

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"spaceship_tag":  addSpaceshipTag,
	"propulsion_tag": addPropulsionTag,
	"enemy_tag":      addEnemyTag,
	"camera_tag":     addCameraTag,
	"entity_type":    addEntityType,
	"input":          addInput,
	"transform":      addTransform,
	"sprite":         addSprite,
	"render_layer":   addRenderLayer,
	"animation":      addAnimation,
	"velocity":       addVelocity,
	"movable":        addMovable,
	"health":         addHealth,
	"spaceship":      addSpaceship,
	"dash":           addDash,
	"shoot":          addShoot,
	"projectile":     addProjectile,
	"damage_area":    addDamageArea,
	"ttl":            addTTL,
	"asteroid":       addAsteroid,
	"enemy_shooter":  addEnemyShooter,
	"camera":         addCamera,
}

var componentBuildOrder = []string{
	"spaceship_tag",
	"propulsion_tag",
	"enemy_tag",
	"camera_tag",
	"entity_type",
	"input",
	"transform",
	"sprite",
	"render_layer",
	"animation",
	"velocity",
	"movable",
	"health",
	"spaceship",
	"dash",
	"shoot",
	"projectile",
	"damage_area",
	"ttl",
	"asteroid",
	"enemy_shooter",
	"camera",
}

var specCache sync.Map

func loadPrefab(prefabPath string) (entityPrefabSpec, error) {
	if cached, ok := specCache.Load(prefabPath); ok {
		return cached.(entityPrefabSpec), nil
	}
	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return entityPrefabSpec{}, err
	}
	specCache.Store(prefabPath, spec)
	return spec, nil
}

// InvalidatePrefab drops a cached prefab so the next build rereads it.
func InvalidatePrefab(prefabPath string) {
	specCache.Delete(prefabPath)
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := loadPrefab(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", prefabPath)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: prefabPath}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	for _, name := range componentBuildOrder {
		raw, ok := remaining[name]
		if !ok {
			continue
		}
		if err := componentRegistry[name](w, e, raw, ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", prefabPath, name, err)
		}
		delete(remaining, name)
	}

	if len(remaining) > 0 {
		names := make([]string, 0, len(remaining))
		for name := range remaining {
			names = append(names, name)
		}
		sort.Strings(names)
		ecs.DestroyEntity(w, e)
		return 0, fmt.Errorf("build entity: %q: no builder for components %s", prefabPath, strings.Join(names, ", "))
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok || t == nil {
		t = &component.Transform{ScaleX: 1, ScaleY: 1}
	}
	t.X = x
	t.Y = y
	return ecs.Add(w, e, component.TransformComponent.Kind(), t)
}

func SetEntityVelocity(w *ecs.World, e ecs.Entity, x, y float64) error {
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: x, Y: y})
}

func addSpaceshipTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.SpaceshipTagComponent.Kind(), &component.SpaceshipTag{})
}

func addPropulsionTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.PropulsionTagComponent.Kind(), &component.PropulsionTag{})
}

func addEnemyTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.EnemyTagComponent.Kind(), &component.EnemyTag{})
}

func addCameraTag(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.CameraTagComponent.Kind(), &component.CameraTag{})
}

func addEntityType(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	name, err := prefabs.DecodeComponentSpec[string](raw)
	if err != nil {
		return fmt.Errorf("decode entity type: %w", err)
	}
	t, err := component.ParseEntityType(name)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.EntityTypeComponent.Kind(), &t)
}

func addInput(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ActionStateComponent.Kind(), &component.ActionState{})
}

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TransformComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpriteComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}
	if spec.Width <= 0 || spec.Height <= 0 {
		return fmt.Errorf("sprite needs a positive width and height")
	}
	alpha := spec.Alpha
	if alpha <= 0 {
		alpha = 1
	}
	return ecs.Add(w, e, component.SpriteComponent.Kind(), &component.Sprite{
		Width:  spec.Width,
		Height: spec.Height,
		Color:  spec.Color.NRGBA,
		Alpha:  alpha,
	})
}

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.RenderLayerComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AnimationComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	defs := make(map[string]component.AnimationDef, len(spec.Defs))
	for name, def := range spec.Defs {
		frames := make([]component.AnimationFrame, 0, len(def.Frames))
		for _, f := range def.Frames {
			frames = append(frames, component.AnimationFrame{Width: f.Width, Height: f.Height, Color: f.Color.NRGBA})
		}
		defs[name] = component.AnimationDef{Name: name, Frames: frames, FPS: def.FPS, Loop: def.Loop}
	}
	if _, ok := defs[spec.Current]; !ok && spec.Current != "" {
		return fmt.Errorf("animation %q is not defined", spec.Current)
	}

	playing := spec.Playing
	if m, ok := raw.(map[string]any); ok {
		if _, has := m["playing"]; !has {
			playing = true
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), &component.Animation{
		Defs:    defs,
		Current: spec.Current,
		Playing: playing,
	})
}

func addVelocity(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.VelocityComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode velocity spec: %w", err)
	}
	return ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: spec.X, Y: spec.Y})
}

func addMovable(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.MovableComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode movable spec: %w", err)
	}
	return ecs.Add(w, e, component.MovableComponent.Kind(), &component.Movable{AutoDespawn: spec.AutoDespawn})
}

func addHealth(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.HealthComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode health spec: %w", err)
	}
	if spec.Max <= 0 {
		return fmt.Errorf("health max must be positive, got %d", spec.Max)
	}
	return ecs.Add(w, e, component.HealthComponent.Kind(), &component.Health{Initial: spec.Max, Current: spec.Max})
}

// SpaceshipTuning converts the prefab tuning block into the component.
func SpaceshipTuning(spec prefabs.SpaceshipComponentSpec) component.Spaceship {
	return component.Spaceship{
		MoveAccel:       spec.MoveAccel,
		Damping:         spec.Damping,
		DashSpeed:       spec.DashSpeed,
		DashTime:        spec.DashTime,
		DashCooldown:    spec.DashCooldown,
		ProjectileSpeed: spec.ProjectileSpeed,
		FiringCooldown:  spec.FiringCooldown,
		ChargeTime:      spec.ChargeTime,
		ChargeCooldown:  spec.ChargeCooldown,
		ChargeWidth:     spec.ChargeWidth,
		ChargeHeight:    spec.ChargeHeight,
		ChargeTTL:       spec.ChargeTTL,
		Invulnerability: spec.Invulnerability,
		BlinkInterval:   spec.BlinkInterval,
	}
}

func addSpaceship(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.SpaceshipComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode spaceship spec: %w", err)
	}
	tuning := SpaceshipTuning(spec)
	return ecs.Add(w, e, component.SpaceshipComponent.Kind(), &tuning)
}

func addDash(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.DashComponent.Kind(), &component.Dash{})
}

func addShoot(w *ecs.World, e ecs.Entity, _ any, _ *buildContext) error {
	return ecs.Add(w, e, component.ShootComponent.Kind(), &component.Shoot{})
}

func addProjectile(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.ProjectileComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode projectile spec: %w", err)
	}
	var source component.ProjectileSource
	switch strings.ToLower(spec.Source) {
	case "", "spaceship":
		source = component.FromSpaceship
	case "enemy":
		source = component.FromEnemy
	default:
		return fmt.Errorf("unknown projectile source %q", spec.Source)
	}
	return ecs.Add(w, e, component.ProjectileComponent.Kind(), &component.Projectile{Source: source})
}

func addDamageArea(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.DamageAreaComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode damage area spec: %w", err)
	}
	return ecs.Add(w, e, component.DamageAreaComponent.Kind(), &component.DamageArea{Width: spec.Width, Height: spec.Height})
}

func addTTL(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.TTLComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode ttl spec: %w", err)
	}
	return ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Remaining: spec.Seconds})
}

func addAsteroid(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.AsteroidComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode asteroid spec: %w", err)
	}
	size := component.AsteroidLarge
	switch strings.ToLower(spec.Size) {
	case "", "large":
	case "small":
		size = component.AsteroidSmall
	default:
		return fmt.Errorf("unknown asteroid size %q", spec.Size)
	}
	return ecs.Add(w, e, component.AsteroidComponent.Kind(), &component.Asteroid{Size: size})
}

func addEnemyShooter(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.EnemyShooterComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode enemy shooter spec: %w", err)
	}
	if spec.Interval <= 0 {
		return fmt.Errorf("enemy shooter interval must be positive")
	}
	return ecs.Add(w, e, component.EnemyShooterComponent.Kind(), &component.EnemyShooter{
		Interval:        component.NewTimer(spec.Interval, component.TimerRepeating),
		ProjectileSpeed: spec.ProjectileSpeed,
	})
}

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[prefabs.CameraComponentSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: zoom})
}
