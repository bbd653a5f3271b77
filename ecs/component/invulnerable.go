package component

// Invulnerability makes the spaceship immune to hits while Remaining > 0.
// Blink toggles the sprite alpha each time it fires.
type Invulnerability struct {
	Remaining float64
	Blink     Timer
}

func NewInvulnerability(seconds, blinkInterval float64) *Invulnerability {
	return &Invulnerability{
		Remaining: seconds,
		Blink:     NewTimer(blinkInterval, TimerRepeating),
	}
}

var InvulnerabilityComponent = NewComponent[Invulnerability]()
