// internal/ui/ghost_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-haunted-house/internal/component"
)

// GhostIndicator отображает плазму выбранного призрака и готовность его сил.
type GhostIndicator struct {
	X, Y float32
}

const (
	plasmBarWidth   = 140
	plasmBarHeight  = 12
	powerSlotWidth  = 66
	powerSlotHeight = 14
	powerSlotGap    = 8
	borderWidth     = 1
)

var (
	plasmBarFill  = color.RGBA{90, 200, 255, 220}
	powerReady    = color.RGBA{70, 160, 90, 230}
	powerCharging = color.RGBA{70, 100, 120, 220}
	borderColor   = color.White
)

func NewGhostIndicator(x, y float32) *GhostIndicator {
	return &GhostIndicator{X: x, Y: y}
}

// Draw отрисовывает индикатор. now — игровое время для перезарядки.
func (i *GhostIndicator) Draw(screen *ebiten.Image, g *component.Ghost, now float64) {
	text.Draw(screen, g.Name, DefaultFace, int(i.X), int(i.Y)-4, color.White)

	// 1. Полоса плазмы
	vector.StrokeRect(screen, i.X, i.Y, plasmBarWidth, plasmBarHeight, borderWidth, borderColor, true)
	fillRatio := 0.0
	if g.MaxPlasm > 0 {
		fillRatio = min(g.Plasm/g.MaxPlasm, 1)
	}
	fillWidth := float32(float64(plasmBarWidth-borderWidth*2) * fillRatio)
	if fillWidth > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, i.Y+borderWidth, fillWidth, plasmBarHeight-borderWidth*2, plasmBarFill, true)
	}
	text.Draw(screen, fmt.Sprintf("%.0f", g.Plasm), DefaultFace, int(i.X+plasmBarWidth+6), int(i.Y+plasmBarHeight-1), color.White)

	// 2. Ячейки сил: заполнение растёт по мере перезарядки
	slotY := i.Y + plasmBarHeight + 8
	for j, ability := range []*component.Ability{&g.Primary, &g.Secondary} {
		slotX := i.X + float32(j)*(powerSlotWidth+powerSlotGap)
		vector.StrokeRect(screen, slotX, slotY, powerSlotWidth, powerSlotHeight, borderWidth, borderColor, true)

		ready := ChargeRatio(g, now)
		c := powerCharging
		if ready >= 1 && g.IsBound() && g.Plasm >= ability.Cost {
			c = powerReady
		}
		w := float32(float64(powerSlotWidth-borderWidth*2) * ready)
		if w > 0 {
			vector.DrawFilledRect(screen, slotX+borderWidth, slotY+borderWidth, w, powerSlotHeight-borderWidth*2, c, true)
		}
		text.Draw(screen, []string{"Q", "E"}[j], DefaultFace, int(slotX+4), int(slotY+powerSlotHeight-2), color.White)
	}
}

// ChargeRatio is the shared cooldown progress in [0, 1].
func ChargeRatio(g *component.Ghost, now float64) float64 {
	if g.PowerCooldown <= 0 {
		return 1
	}
	return 1 - min(g.CooldownRemaining(now)/g.PowerCooldown, 1)
}
