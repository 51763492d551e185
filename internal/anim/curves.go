package anim

// LinearCurve returns linear progress (no easing).
func LinearCurve(t float64) float64 {
	return t
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
