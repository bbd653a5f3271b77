package system

import (
	"github.com/milk9111/spaceranger/common/events"
	"github.com/milk9111/spaceranger/ecs"
)

// SoundPlayer plays a named sound effect.
type SoundPlayer interface {
	Play(name string)
}

// AudioSystem plays every Sfx event queued during the tick. Repeats of the
// same sound within one tick are played once.
type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	requests := ecs.DrainAs[events.Sfx](w, events.KindSfx)
	if a.player == nil || len(requests) == 0 {
		return
	}

	played := make(map[string]bool, len(requests))
	for _, req := range requests {
		if played[req.Name] {
			continue
		}
		played[req.Name] = true
		a.player.Play(req.Name)
	}
}
