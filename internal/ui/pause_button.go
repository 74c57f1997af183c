// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-haunted-house/pkg/render"
)

type PauseButton struct {
	X, Y           float32
	Size           float32
	LastClickTime  time.Time
	LastToggleTime time.Time
	IsPaused       bool
	PauseColor     color.RGBA
	PlayColor      color.RGBA
	shapes         *render.ShapeRenderer
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.RGBA, shapes *render.ShapeRenderer) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
		shapes:     shapes,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	elapsed := time.Since(b.LastClickTime).Seconds()
	scale := 1.0 + 0.3*math.Exp(-elapsed*8)
	rectSize := b.Size * float32(scale)

	if b.IsPaused {
		// Треугольник (play)
		tri := []render.Point{
			{X: b.X - rectSize, Y: b.Y - rectSize*1.2},
			{X: b.X - rectSize, Y: b.Y + rectSize*1.2},
			{X: b.X + rectSize, Y: b.Y},
		}
		b.shapes.FillPolygon(screen, tri, b.PlayColor)
		b.shapes.StrokePolygon(screen, tri, 1, color.RGBA{255, 255, 255, 255})
		return
	}

	// Два прямоугольника (pause)
	width := rectSize * 0.6
	height := rectSize * 2.0
	spacing := rectSize * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return insideCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func (b *PauseButton) SetPaused(paused bool) {
	if b.IsPaused == paused {
		return
	}
	b.IsPaused = paused
	b.LastClickTime = time.Now()
	b.LastToggleTime = time.Now()
}
