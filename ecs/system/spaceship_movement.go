package system

import (
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// SpaceshipMovementSystem turns held actions into horizontal velocity and
// runs the dash state machine.
type SpaceshipMovementSystem struct{}

func NewSpaceshipMovementSystem() *SpaceshipMovementSystem {
	return &SpaceshipMovementSystem{}
}

func (s *SpaceshipMovementSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ship, ok := w.First(
		component.SpaceshipTagComponent.Kind(),
		component.ActionStateComponent.Kind(),
		component.VelocityComponent.Kind(),
		component.DashComponent.Kind(),
	)
	if !ok {
		return
	}
	input, _ := ecs.Get(w, ship, component.ActionStateComponent.Kind())
	vel, _ := ecs.Get(w, ship, component.VelocityComponent.Kind())
	dash, _ := ecs.Get(w, ship, component.DashComponent.Kind())
	tuning, ok := ecs.Get(w, ship, component.SpaceshipComponent.Kind())
	if !ok {
		return
	}

	vel.X *= tuning.Damping

	if dash.IsIdle() {
		switch {
		case input.JustPressed(component.ActionDashRight):
			startDash(dash, component.DirectionRight, tuning.DashTime)
			events.PlaySfx(w, events.SfxDash)
		case input.JustPressed(component.ActionDashLeft):
			startDash(dash, component.DirectionLeft, tuning.DashTime)
			events.PlaySfx(w, events.SfxDash)
		}
	}

	switch dash.Phase {
	case component.DashIdle:
		if input.Pressed(component.ActionMoveRight) {
			vel.X += tuning.MoveAccel
		}
		if input.Pressed(component.ActionMoveLeft) {
			vel.X -= tuning.MoveAccel
		}
	case component.DashDashing:
		dash.Timer.Tick(common.FixedDelta)
		if dash.Timer.Finished() {
			dash.Phase = component.DashCooldown
			dash.Timer = component.NewTimer(tuning.DashCooldown, component.TimerOnce)
			return
		}
		boost := DashBoost(dash.Timer.Elapsed, tuning.DashSpeed, tuning.DashTime)
		if dash.Direction == component.DirectionLeft {
			boost = -boost
		}
		vel.X += boost
	case component.DashCooldown:
		dash.Timer.Tick(common.FixedDelta)
		if dash.Timer.Finished() {
			dash.Phase = component.DashIdle
		}
	}
}

func startDash(dash *component.Dash, dir component.Direction, dashTime float64) {
	dash.Phase = component.DashDashing
	dash.Direction = dir
	dash.Timer = component.NewTimer(dashTime, component.TimerOnce)
}

// DashBoost is the velocity added at elapsed seconds into a dash of length
// dashTime. It rises along a parabola until half time, then falls linearly to
// minus half the peak at dashTime.
func DashBoost(elapsed, speed, dashTime float64) float64 {
	half := dashTime / 2
	peak := -speed*half*half + speed*dashTime*half
	if elapsed < half {
		return -speed*elapsed*elapsed + speed*dashTime*elapsed
	}
	slope := (-peak/2 - peak) / (dashTime - half)
	intercept := peak - slope*half
	return slope*elapsed + intercept
}
