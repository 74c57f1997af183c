// internal/ui/hotkey_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	hotkeyActiveColor   = color.RGBA{255, 220, 90, 255}
	hotkeyInactiveColor = color.RGBA{110, 110, 110, 255}
	hotkeyStrikeColor   = color.RGBA{200, 60, 60, 255}
)

// HotkeyIndicator показывает букву клавиши; недоступное действие перечёркнуто.
type HotkeyIndicator struct {
	X, Y   float32
	Letter string
}

func NewHotkeyIndicator(x, y float32, letter string) *HotkeyIndicator {
	return &HotkeyIndicator{X: x, Y: y, Letter: letter}
}

func (i *HotkeyIndicator) Draw(screen *ebiten.Image, active bool) {
	c := hotkeyInactiveColor
	if active {
		c = hotkeyActiveColor
	}
	bounds := text.BoundString(DefaultFace, i.Letter)
	x := int(i.X) - bounds.Dx()/2
	y := int(i.Y) + bounds.Dy()/2
	text.Draw(screen, i.Letter, DefaultFace, x, y, c)

	if !active {
		half := float32(bounds.Dx())/2 + 2
		vector.StrokeLine(screen, i.X-half, i.Y+half, i.X+half, i.Y-half, 1.5, hotkeyStrikeColor, true)
	}
}
