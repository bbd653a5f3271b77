package system

import (
	"log"

	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
	"github.com/milk9111/spaceranger/ecs/entity"
)

// ShootSystem runs the spaceship firing state machine. Holding Shoot charges;
// releasing fires a projectile, or a charged shot once charging has finished.
type ShootSystem struct{}

func NewShootSystem() *ShootSystem {
	return &ShootSystem{}
}

func (s *ShootSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ship, ok := w.First(
		component.SpaceshipTagComponent.Kind(),
		component.ActionStateComponent.Kind(),
		component.ShootComponent.Kind(),
		component.TransformComponent.Kind(),
	)
	if !ok {
		return
	}
	input, _ := ecs.Get(w, ship, component.ActionStateComponent.Kind())
	shoot, _ := ecs.Get(w, ship, component.ShootComponent.Kind())
	t, _ := ecs.Get(w, ship, component.TransformComponent.Kind())
	tuning, ok := ecs.Get(w, ship, component.SpaceshipComponent.Kind())
	if !ok {
		return
	}

	if shoot.IsIdle() && input.JustPressed(component.ActionShoot) {
		shoot.Phase = component.ShootCharging
		shoot.Timer = component.NewTimer(tuning.ChargeTime, component.TimerOnce)
	}

	if input.JustReleased(component.ActionShoot) && shoot.Phase == component.ShootCharging {
		shoot.Kind = component.EntityTypeProjectile
		if shoot.IsChargingFinished() {
			shoot.Kind = component.EntityTypeChargedShot
		}
		shoot.Phase = component.ShootShooting
	}

	switch shoot.Phase {
	case component.ShootCharging:
		shoot.Timer.Tick(common.FixedDelta)
	case component.ShootShooting:
		cooldown := tuning.FiringCooldown
		if shoot.Kind == component.EntityTypeChargedShot {
			cooldown = tuning.ChargeCooldown
			if _, err := entity.NewChargedShot(w, t.X, t.Y, tuning.ChargeWidth, tuning.ChargeHeight, tuning.ChargeTTL); err != nil {
				log.Printf("shoot: charged shot: %v", err)
			} else {
				events.PlaySfx(w, events.SfxChargedShot)
			}
		} else {
			if _, err := entity.NewProjectile(w, component.FromSpaceship, t.X, t.Y, tuning.ProjectileSpeed); err != nil {
				log.Printf("shoot: projectile: %v", err)
			} else {
				events.PlaySfx(w, events.SfxShoot)
			}
		}
		shoot.Phase = component.ShootCooldown
		shoot.Timer = component.NewTimer(cooldown, component.TimerOnce)
	case component.ShootCooldown:
		shoot.Timer.Tick(common.FixedDelta)
		if shoot.Timer.Finished() {
			shoot.Phase = component.ShootIdle
		}
	}
}

// EnemyShootSystem makes every armed enemy fire downwards on its interval.
type EnemyShootSystem struct{}

func NewEnemyShootSystem() *EnemyShootSystem {
	return &EnemyShootSystem{}
}

func (s *EnemyShootSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach2(w, component.EnemyShooterComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, shooter *component.EnemyShooter, t *component.Transform) {
		shooter.Interval.Tick(common.FixedDelta)
		if !shooter.Interval.Finished() {
			return
		}
		if _, err := entity.NewProjectile(w, component.FromEnemy, t.X, t.Y, -shooter.ProjectileSpeed); err != nil {
			log.Printf("enemy shoot: %v", err)
		}
	})
}
