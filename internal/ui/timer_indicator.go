// internal/ui/timer_indicator.go
package ui

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
)

// TimerIndicator отображает оставшееся время миссии.
type TimerIndicator struct {
	X, Y             float32
	Color            color.RGBA
	WarnColor        color.RGBA
	OutlineColor     color.Color
	OutlineThickness int
}

func NewTimerIndicator(x, y float32) *TimerIndicator {
	return &TimerIndicator{
		X:                x,
		Y:                y,
		Color:            color.RGBA{90, 200, 255, 255},
		WarnColor:        color.RGBA{230, 50, 50, 255},
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// FormatClock renders seconds as m:ss, rounding up so 0:00 means time is out.
func FormatClock(seconds float64) string {
	s := int(math.Ceil(math.Max(seconds, 0)))
	return fmt.Sprintf("%d:%02d", s/60, s%60)
}

// Draw рисует таймер; без лимита времени показывает прошедшее время.
func (i *TimerIndicator) Draw(screen *ebiten.Image, elapsed, limit float64) {
	label := FormatClock(elapsed)
	c := i.Color
	if limit > 0 {
		remaining := limit - elapsed
		label = FormatClock(remaining)
		if remaining < 30 {
			c = i.WarnColor
		}
	}

	bounds := text.BoundString(DefaultFace, label)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y)

	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, DefaultFace, x+dx, y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, DefaultFace, x, y, c)
}
