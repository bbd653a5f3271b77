package system

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/spaceranger/ecs"
	"github.com/milk9111/spaceranger/ecs/component"
)

// KeySource reports held keys. EbitenKeys reads the real keyboard; tests use
// a map.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

type EbitenKeys struct{}

func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// Bindings maps each action to the keys that trigger it.
type Bindings map[component.Action][]ebiten.Key

// ParseBindings resolves action and key names as written in game.yaml.
func ParseBindings(raw map[string][]string) (Bindings, error) {
	out := make(Bindings, len(raw))
	for name, keys := range raw {
		action, err := component.ParseAction(name)
		if err != nil {
			return nil, fmt.Errorf("bindings: %w", err)
		}
		for _, keyName := range keys {
			var key ebiten.Key
			if err := key.UnmarshalText([]byte(keyName)); err != nil {
				return nil, fmt.Errorf("bindings: %s: %w", name, err)
			}
			out[action] = append(out[action], key)
		}
	}
	return out, nil
}

// Pressed reports whether any key bound to a is held.
func (b Bindings) Pressed(keys KeySource, a component.Action) bool {
	for _, key := range b[a] {
		if keys.IsKeyPressed(key) {
			return true
		}
	}
	return false
}

type InputSystem struct {
	keys     KeySource
	bindings Bindings
}

func NewInputSystem(keys KeySource, bindings Bindings) *InputSystem {
	if keys == nil {
		keys = EbitenKeys{}
	}
	return &InputSystem{keys: keys, bindings: bindings}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	pressed := func(a component.Action) bool {
		return i.bindings.Pressed(i.keys, a)
	}

	ecs.ForEach(w, component.ActionStateComponent.Kind(), func(_ ecs.Entity, state *component.ActionState) {
		state.Update(pressed)
	})
}
