package component

import "image/color"

// Sprite is drawn as a filled Width x Height rectangle of Color. Width and
// Height double as the collision size.
type Sprite struct {
	Width  float64
	Height float64
	Color  color.NRGBA
	Alpha  float64
	Hidden bool
}

// Size returns the sprite size scaled by t. It panics when the sprite has no
// size, since every collidable sprite must declare one.
func (s *Sprite) Size(t *Transform) (float64, float64) {
	if s.Width <= 0 || s.Height <= 0 {
		panic("sprite has no custom size")
	}
	sx, sy := 1.0, 1.0
	if t != nil {
		sx, sy = t.Scale()
	}
	return s.Width * sx, s.Height * sy
}

// Opacity returns Alpha, treating zero as fully opaque.
func (s *Sprite) Opacity() float64 {
	if s.Alpha <= 0 {
		return 1
	}
	return s.Alpha
}

var SpriteComponent = NewComponent[Sprite]()
