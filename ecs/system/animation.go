package system

import (
	"github.com/milk9111/spaceranger/common"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(_ ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		if !anim.Playing {
			return
		}

		def, ok := anim.Defs[anim.Current]
		if !ok || len(def.Frames) == 0 || def.FPS <= 0 {
			return
		}

		anim.FrameTimer += common.FixedDelta
		frameTime := 1 / def.FPS
		for anim.FrameTimer >= frameTime {
			anim.FrameTimer -= frameTime
			anim.Frame++
			if anim.Frame >= len(def.Frames) {
				if def.Loop {
					anim.Frame = 0
				} else {
					anim.Frame = len(def.Frames) - 1
					anim.Playing = false
					break
				}
			}
		}

		frame := def.Frames[anim.Frame]
		if frame.Width > 0 && frame.Height > 0 {
			sprite.Width = frame.Width
			sprite.Height = frame.Height
		}
		if frame.Color.A > 0 {
			sprite.Color = frame.Color
		}
	})
}
