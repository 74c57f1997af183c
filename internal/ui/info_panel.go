// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font"

	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

const (
	panelHeight    = 130
	panelMargin    = 5
	animationSpeed = 10.0
	lineHeight     = 18
	columnSpacing  = 260
	transferAmount = 10
)

// GhostActions — команды, которые панель отправляет выбранному призраку.
type GhostActions interface {
	ActivatePrimary() bool
	ActivateSecondary() bool
	TriggerAnchor() bool
	UnbindSelected()
	TransferPlasm(amount int) bool
}

// InfoPanel displays the selected ghost and its action buttons.
type InfoPanel struct {
	IsVisible    bool
	TargetEntity types.EntityID
	fontFace     font.Face
	currentY     float64
	targetY      float64
	buttons      []*panelButton
	actions      GhostActions
}

type panelButton struct {
	*Button
	run func(GhostActions)
}

func NewInfoPanel(face font.Face, actions GhostActions) *InfoPanel {
	p := &InfoPanel{
		fontFace: face,
		currentY: config.ScreenHeight,
		targetY:  config.ScreenHeight,
		actions:  actions,
	}
	labels := []struct {
		text string
		run  func(GhostActions)
	}{
		{"Primary [Q]", func(a GhostActions) { a.ActivatePrimary() }},
		{"Secondary [E]", func(a GhostActions) { a.ActivateSecondary() }},
		{"Anchor [T]", func(a GhostActions) { a.TriggerAnchor() }},
		{"Unbind [U]", func(a GhostActions) { a.UnbindSelected() }},
		{fmt.Sprintf("+%d plasm [R]", transferAmount), func(a GhostActions) { a.TransferPlasm(transferAmount) }},
	}
	for _, l := range labels {
		p.buttons = append(p.buttons, &panelButton{Button: NewButton(image.Rectangle{}, l.text), run: l.run})
	}
	return p
}

func (p *InfoPanel) SetTarget(entityID types.EntityID) {
	p.TargetEntity = entityID
	p.IsVisible = true
	p.targetY = config.ScreenHeight - panelHeight
}

func (p *InfoPanel) Hide() {
	p.targetY = config.ScreenHeight
}

// Contains reports whether a screen point falls on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && float64(y) >= p.currentY
}

// Update animates the panel.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	if math.Abs(diff) < animationSpeed {
		p.currentY = p.targetY
	} else if diff > 0 {
		p.currentY += animationSpeed
	} else {
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.ScreenHeight {
		p.IsVisible = false
		p.TargetEntity = types.NoEntity
	}
}

// HandleClick runs the button under (x, y), if any.
func (p *InfoPanel) HandleClick(x, y int) bool {
	for _, b := range p.buttons {
		if b.Contains(x, y) && !b.Disabled {
			log.Debug().Str("button", b.Text).Msg("panel button")
			b.run(p.actions)
			return true
		}
	}
	return false
}

func (p *InfoPanel) Draw(screen *ebiten.Image, w *entity.World) {
	if !p.IsVisible && p.currentY >= config.ScreenHeight {
		return
	}

	panelRect := image.Rect(
		panelMargin,
		int(p.currentY)+panelMargin,
		config.ScreenWidth-panelMargin,
		int(p.currentY)+panelHeight-panelMargin,
	)

	bgColor := color.RGBA{R: 25, G: 35, B: 45, A: 230}
	vector.DrawFilledRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), bgColor, true)
	borderColor := color.RGBA{R: 70, G: 130, B: 180, A: 255}
	vector.StrokeRect(screen, float32(panelRect.Min.X), float32(panelRect.Min.Y), float32(panelRect.Dx()), float32(panelRect.Dy()), 2, borderColor, true)

	g, ok := w.Ghosts[p.TargetEntity]
	if !ok {
		return
	}

	x, y := panelRect.Min.X+15, panelRect.Min.Y+15+lineHeight
	text.Draw(screen, fmt.Sprintf("%s the %s", g.Name, g.Category), p.fontFace, x, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Plasm: %.0f / %.0f  (+%.1f/s)", g.Plasm, g.MaxPlasm, g.RegenRate), p.fontFace, x, y, config.TextLightColor)
	anchor := "none"
	if a, ok := w.Anchors[g.BoundAnchor]; ok {
		anchor = fmt.Sprintf("%s (x%.1f)", a.Name, a.PowerBonus)
	}
	text.Draw(screen, "Anchor: "+anchor, p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("%s: %.0f plasm", g.Primary.Name, g.Primary.Cost), p.fontFace, x, y, config.TextLightColor)
	text.Draw(screen, fmt.Sprintf("%s: %.0f plasm", g.Secondary.Name, g.Secondary.Cost), p.fontFace, x+columnSpacing, y, config.TextLightColor)
	y += lineHeight
	text.Draw(screen, fmt.Sprintf("Cooldown: %.1fs", g.CooldownRemaining(w.GameTime)), p.fontFace, x, y, config.TextLightColor)

	p.layoutButtons(panelRect)
	ready := g.IsBound() && g.CooldownRemaining(w.GameTime) == 0
	p.buttons[0].Disabled = !ready || g.Plasm < g.Primary.Cost
	p.buttons[1].Disabled = !ready || g.Plasm < g.Secondary.Cost
	p.buttons[2].Disabled = !g.IsBound()
	p.buttons[3].Disabled = !g.IsBound()
	p.buttons[4].Disabled = w.Pool.Current() == 0 || g.Plasm >= g.MaxPlasm
	for _, b := range p.buttons {
		b.Draw(screen, p.fontFace)
	}
}

func (p *InfoPanel) layoutButtons(panelRect image.Rectangle) {
	btnWidth, btnHeight, gap := 130, 30, 10
	x := panelRect.Max.X - len(p.buttons)*(btnWidth+gap)
	y := panelRect.Max.Y - btnHeight - 15
	for i, b := range p.buttons {
		bx := x + i*(btnWidth+gap)
		b.Rect = image.Rect(bx, y, bx+btnWidth, y+btnHeight)
	}
}
