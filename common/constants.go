package common

const (
	Title = "Space Ranger Cinnamon"

	WindowWidth  = 900
	WindowHeight = 1000

	TPS        = 60
	FixedDelta = 1.0 / TPS
)
