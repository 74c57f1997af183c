// internal/utils/math.go
package utils

import "image/color"

// Lerp выполняет стандартную линейную интерполяцию
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

// LerpColor смешивает два цвета; t ограничивается [0, 1].
func LerpColor(from, to color.RGBA, t float64) color.RGBA {
	tt := float32(min(max(t, 0), 1))
	mix := func(a, b uint8) uint8 {
		return uint8(Lerp(float32(a), float32(b), tt) + 0.5)
	}
	return color.RGBA{
		R: mix(from.R, to.R),
		G: mix(from.G, to.G),
		B: mix(from.B, to.B),
		A: mix(from.A, to.A),
	}
}
