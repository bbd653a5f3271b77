package common

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// WorldToScreen converts a centre-origin, +Y up position to screen pixels.
func WorldToScreen(x, y, screenW, screenH float64) (float64, float64) {
	return screenW/2 + x, screenH/2 - y
}
