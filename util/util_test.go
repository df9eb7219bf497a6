package util

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
)

func TestLerp(t *testing.T) {
	assert.Equal(t, 0.1, Lerp(0.1, 0.7, 0))
	assert.Equal(t, 0.7, Lerp(0.1, 0.7, 1))
	assert.InDelta(t, 5.0, Lerp(0, 10, 0.5), 1e-9)
	assert.InDelta(t, -2.5, Lerp(0, -10, 0.25), 1e-9)
}

func TestLerpColor(t *testing.T) {
	red := colorful.Color{R: 1}
	blue := colorful.Color{B: 1}

	assert.Equal(t, red, LerpColor(red, blue, 0))
	assert.Equal(t, blue, LerpColor(red, blue, 1))

	mid := LerpColor(red, blue, 0.5)
	assert.InDelta(t, 0.5, mid.R, 1e-9)
	assert.InDelta(t, 0.0, mid.G, 1e-9)
	assert.InDelta(t, 0.5, mid.B, 1e-9)
}

func TestClamp01(t *testing.T) {
	assert.Equal(t, 0.0, Clamp01(-3))
	assert.Equal(t, 0.25, Clamp01(0.25))
	assert.Equal(t, 1.0, Clamp01(7))
}
