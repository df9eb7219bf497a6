package util

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Clamp01 limits t to the range [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// Lerp blends linearly from a to b. At t >= 1 the result is exactly b.
func Lerp(a float64, b float64, t float64) float64 {
	if t >= 1 {
		return b
	}
	return a + (b-a)*t
}

// LerpColor blends two colours channel by channel in RGB space.
func LerpColor(c1 colorful.Color, c2 colorful.Color, t float64) colorful.Color {
	if t >= 1 {
		return c2
	}
	return colorful.Color{
		R: Lerp(c1.R, c2.R, t),
		G: Lerp(c1.G, c2.G, t),
		B: Lerp(c1.B, c2.B, t),
	}
}
