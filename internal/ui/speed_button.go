// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"go-haunted-house/pkg/render"
)

// SpeedButton — кнопка ускорения времени: x1, x2, x4.
type SpeedButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	StateColors    []color.RGBA
	CurrentState   int
	shapes         *render.ShapeRenderer
}

func NewSpeedButton(x, y, size float32, stateColors []color.RGBA, shapes *render.ShapeRenderer) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		shapes:      shapes,
	}
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	triangleSize := b.Size * float32(scale)

	fill := b.StateColors[b.CurrentState]

	// Параметры треугольников
	height := triangleSize * 1.2
	width := triangleSize
	offset := width * 0.8

	for _, dx := range []float32{0, offset} {
		tri := []render.Point{
			{X: b.X - width + dx, Y: b.Y - height/2},
			{X: b.X + dx, Y: b.Y},
			{X: b.X - width + dx, Y: b.Y + height/2},
		}
		b.shapes.FillPolygon(screen, tri, fill)
		b.shapes.StrokePolygon(screen, tri, 1, color.RGBA{255, 255, 255, 255})
	}
}

// IsClicked uses a circle because the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *SpeedButton) ToggleState() {
	b.SetState((b.CurrentState + 1) % len(b.StateColors))
}

// SetState shows state without cycling, e.g. after the game changed speed.
func (b *SpeedButton) SetState(state int) {
	if state == b.CurrentState {
		return
	}
	b.CurrentState = state
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
