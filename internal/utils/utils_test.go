package utils

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-haunted-house/internal/types"
)

func TestPointInRadiusStaysInside(t *testing.T) {
	rng := NewPRNGService(42)
	center := types.Vec3{X: 10, Y: 1, Z: -3}
	for i := 0; i < 200; i++ {
		p := rng.PointInRadius(center, 5)
		assert.LessOrEqual(t, p.Distance(center), 5.0+1e-9)
		assert.Equal(t, 1.0, p.Y)
	}
}

func TestSeededServiceIsDeterministic(t *testing.T) {
	a, b := NewPRNGService(7), NewPRNGService(7)
	for i := 0; i < 10; i++ {
		assert.Equal(t, a.Range(-1, 1), b.Range(-1, 1))
	}
}

func TestLerpColor(t *testing.T) {
	from := color.RGBA{0, 0, 0, 255}
	to := color.RGBA{200, 100, 50, 255}
	assert.Equal(t, from, LerpColor(from, to, -1))
	assert.Equal(t, to, LerpColor(from, to, 2))
	assert.Equal(t, color.RGBA{100, 50, 25, 255}, LerpColor(from, to, 0.5))
}
