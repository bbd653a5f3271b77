package component

import "fmt"

// Action is a logical spaceship input.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionDashLeft
	ActionDashRight
	ActionShoot
	ActionPause
	actionCount
)

var actionNames = [actionCount]string{
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
	ActionDashLeft:  "dash_left",
	ActionDashRight: "dash_right",
	ActionShoot:     "shoot",
	ActionPause:     "pause",
}

func (a Action) String() string {
	if a < 0 || a >= actionCount {
		return fmt.Sprintf("action(%d)", int(a))
	}
	return actionNames[a]
}

func ParseAction(s string) (Action, error) {
	for i, name := range actionNames {
		if name == s {
			return Action(i), nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// Actions lists every action in declaration order.
func Actions() []Action {
	out := make([]Action, actionCount)
	for i := range out {
		out[i] = Action(i)
	}
	return out
}

// ActionState holds this tick's and last tick's pressed flags.
type ActionState struct {
	current  [actionCount]bool
	previous [actionCount]bool
}

// Update shifts the current state to previous and records the new state.
func (s *ActionState) Update(pressed func(Action) bool) {
	s.previous = s.current
	for i := range s.current {
		s.current[i] = pressed(Action(i))
	}
}

// Set overrides the current pressed flag of one action.
func (s *ActionState) Set(a Action, pressed bool) {
	if a < 0 || a >= actionCount {
		return
	}
	s.current[a] = pressed
}

func (s *ActionState) Pressed(a Action) bool {
	return a >= 0 && a < actionCount && s.current[a]
}

func (s *ActionState) JustPressed(a Action) bool {
	return a >= 0 && a < actionCount && s.current[a] && !s.previous[a]
}

func (s *ActionState) JustReleased(a Action) bool {
	return a >= 0 && a < actionCount && !s.current[a] && s.previous[a]
}

var ActionStateComponent = NewComponent[ActionState]()
