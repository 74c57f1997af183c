// internal/ui/plasm_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	PlasmRows          = 2
	PlasmCols          = 10
	PlasmCircleRadius  = 7.0
	PlasmCircleSpacing = 4.0
)

// PlasmIndicator отображает общий пул плазмы сеткой кружков.
type PlasmIndicator struct {
	X, Y      float32
	FillColor color.RGBA
	LowColor  color.RGBA
}

func NewPlasmIndicator(x, y float32, fill, low color.RGBA) *PlasmIndicator {
	return &PlasmIndicator{X: x, Y: y, FillColor: fill, LowColor: low}
}

// FilledCells maps current/max onto the grid; a non-empty pool lights at
// least one cell.
func FilledCells(current, max int) int {
	cells := PlasmRows * PlasmCols
	if max <= 0 || current <= 0 {
		return 0
	}
	n := current * cells / max
	if n == 0 {
		n = 1
	}
	return min(n, cells)
}

// Draw рисует индикатор пула в виде сетки кружков.
func (i *PlasmIndicator) Draw(screen *ebiten.Image, current, max int) {
	filled := FilledCells(current, max)
	cells := PlasmRows * PlasmCols
	fill := i.FillColor
	if filled*4 <= cells {
		fill = i.LowColor
	}

	for j := 0; j < cells; j++ {
		row := j / PlasmCols
		col := j % PlasmCols
		x := i.X + float32(col)*(PlasmCircleRadius*2+PlasmCircleSpacing) + PlasmCircleRadius
		y := i.Y + float32(row)*(PlasmCircleRadius*2+PlasmCircleSpacing) + PlasmCircleRadius

		c := color.Color(color.Black)
		if j < filled {
			c = fill
		}
		vector.DrawFilledCircle(screen, x, y, PlasmCircleRadius, c, true)
		vector.StrokeCircle(screen, x, y, PlasmCircleRadius, 1, color.White, true)
	}

	label := fmt.Sprintf("Pool %d/%d", current, max)
	text.Draw(screen, label, DefaultFace, int(i.X), int(i.Y)-6, color.White)
}

// GetHeight возвращает общую высоту индикатора.
func (i *PlasmIndicator) GetHeight() float32 {
	return 20 + PlasmRows*(PlasmCircleRadius*2+PlasmCircleSpacing)
}
