// internal/ui/fear_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// FearBar — данные одной полосы индикатора страха.
type FearBar struct {
	Label string
	Ratio float64 // страх / максимум
	Fled  bool
}

// FearIndicator отображает страх всех смертных вертикальными полосами.
type FearIndicator struct {
	X, Y     float32
	Height   float32
	BarWidth float32
	Spacing  float32
}

func NewFearIndicator(x, y, height float32) *FearIndicator {
	return &FearIndicator{
		X:        x,
		Y:        y,
		Height:   height,
		BarWidth: 14,
		Spacing:  10,
	}
}

// FearColor picks the fill for a ratio: yellow, then red, then purple near
// panic.
func FearColor(ratio float64) color.RGBA {
	switch {
	case ratio > 0.66:
		return color.RGBA{170, 60, 220, 255}
	case ratio > 0.33:
		return color.RGBA{220, 50, 50, 255}
	}
	return color.RGBA{230, 210, 60, 255}
}

func (i *FearIndicator) Draw(screen *ebiten.Image, bars []FearBar) {
	startX := i.X
	for _, bar := range bars {
		vector.DrawFilledRect(screen, startX, i.Y, i.BarWidth, i.Height, color.RGBA{30, 30, 40, 255}, false)

		ratio := bar.Ratio
		if bar.Fled {
			ratio = 1
		}
		if ratio > 0 {
			// заполнение снизу вверх
			fillHeight := i.Height * float32(min(ratio, 1))
			fillY := i.Y + (i.Height - fillHeight)
			c := FearColor(ratio)
			if bar.Fled {
				c = color.RGBA{90, 90, 90, 255}
			}
			vector.DrawFilledRect(screen, startX, fillY, i.BarWidth, fillHeight, c, false)
		}
		vector.StrokeRect(screen, startX, i.Y, i.BarWidth, i.Height, 1, color.White, false)

		if bar.Label != "" {
			text.Draw(screen, bar.Label[:1], DefaultFace, int(startX+3), int(i.Y+i.Height+14), color.White)
		}
		startX += i.BarWidth + i.Spacing
	}
}
