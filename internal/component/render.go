// component/render.go
package component

import "image/color"

// Renderable — компонент для отрисовки.
// Glyph используется терминальным просмотрщиком, Color и Radius — ebiten.
type Renderable struct {
	Color  color.RGBA
	Radius float32
	Glyph  rune
	Label  string
}
