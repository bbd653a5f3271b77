package component

import "image/color"

// AnimationFrame reshapes the owning sprite while it is current.
type AnimationFrame struct {
	Width  float64
	Height float64
	Color  color.NRGBA
}

type AnimationDef struct {
	Name   string
	Frames []AnimationFrame
	FPS    float64
	Loop   bool
}

type Animation struct {
	Defs       map[string]AnimationDef
	Current    string
	Frame      int
	FrameTimer float64
	Playing    bool
}

var AnimationComponent = NewComponent[Animation]()
