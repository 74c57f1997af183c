// internal/ui/objective_book.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-haunted-house/internal/component"
)

// ObjectiveBook отображает окно с целями миссии.
type ObjectiveBook struct {
	IsVisible bool
	X, Y      float32
	Width     float32
	Height    float32
	fontFace  font.Face
}

func NewObjectiveBook(x, y, width, height float32, fontFace font.Face) *ObjectiveBook {
	return &ObjectiveBook{
		IsVisible: true,
		X:         x,
		Y:         y,
		Width:     width,
		Height:    height,
		fontFace:  fontFace,
	}
}

// Toggle переключает видимость окна.
func (b *ObjectiveBook) Toggle() {
	b.IsVisible = !b.IsVisible
}

// ObjectiveLine formats one objective row.
func ObjectiveLine(o *component.Objective) string {
	mark := "[ ]"
	if o.Completed {
		mark = "[x]"
	}
	line := fmt.Sprintf("%s %s %d/%d", mark, o.Def.Name, o.Current, o.Def.Target)
	if o.Def.Optional {
		line += " (optional)"
	}
	return line
}

// Draw отрисовывает список целей, если окно видимо.
func (b *ObjectiveBook) Draw(screen *ebiten.Image, mission *component.Mission) {
	if !b.IsVisible || mission == nil {
		return
	}

	whiteColor := color.RGBA{255, 255, 255, 255}
	grayColor := color.RGBA{130, 130, 130, 255}
	doneColor := color.RGBA{120, 220, 140, 255}

	bgColor := color.RGBA{R: 20, G: 20, B: 30, A: 230}
	vector.DrawFilledRect(screen, b.X, b.Y, b.Width, b.Height, bgColor, false)
	borderColor := color.RGBA{R: 70, G: 100, B: 120, A: 255}
	vector.StrokeRect(screen, b.X, b.Y, b.Width, b.Height, 2, borderColor, false)

	lineHeight := float32(b.fontFace.Metrics().Height.Ceil())
	title := mission.Name
	titleBounds := text.BoundString(b.fontFace, title)
	titleX := b.X + (b.Width-float32(titleBounds.Dx()))/2
	titleY := b.Y + lineHeight + 6
	text.Draw(screen, title, b.fontFace, int(titleX), int(titleY), whiteColor)
	text.Draw(screen, mission.Description, b.fontFace, int(b.X+10), int(titleY+lineHeight), grayColor)

	y := titleY + lineHeight*2.5
	for _, o := range mission.Objectives {
		c := whiteColor
		switch {
		case o.Completed:
			c = doneColor
		case o.Def.Optional:
			c = grayColor
		}
		text.Draw(screen, ObjectiveLine(o), b.fontFace, int(b.X+10), int(y), c)
		y += lineHeight * 1.4
	}
}
