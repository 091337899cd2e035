package util

import "math"

// Clamp limits value to the [min, max] range.
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Clamp01 limits value to the [0, 1] range.
func Clamp01(value float64) float64 {
	return Clamp(value, 0, 1)
}

// Lerp linearly interpolates between a and b by t.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// InverseLerp returns where value sits between a and b, clamped to [0, 1].
// Returns 0 when the range is degenerate.
func InverseLerp(a, b, value float64) float64 {
	if b == a {
		return 0
	}
	return Clamp01((value - a) / (b - a))
}

// Smoothstep performs smooth Hermite interpolation between 0 and 1
// as t moves across [edge0, edge1].
func Smoothstep(edge0, edge1, t float64) float64 {
	x := InverseLerp(edge0, edge1, t)
	return x * x * (3 - 2*x)
}

// EaseInOutCubic is the standard cubic ease used for programmatic scrolls
// and camera fly-to transitions.
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// ExpDecay returns the frame-rate independent interpolation factor for
// exponential smoothing with the given rate over dt seconds.
func ExpDecay(rate, dt float64) float64 {
	return 1 - math.Exp(-rate*dt)
}
