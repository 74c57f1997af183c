// internal/state/menu_state.go
package state

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/ui"
)

var controls = []string{
	"Click a ghost to select it, click an anchor to bind it",
	"Q / E  - ghost powers      T - anchor pulse",
	"H - haunt nearby object    U - unbind      R - feed plasm",
	"Tab / 1-5 - select ghost   O - objectives  P - pause",
}

// MenuState — стартовый экран уровня
type MenuState struct {
	sm        *StateMachine
	settings  config.Settings
	level     defs.LevelDefinition
	observers []Observer
	start     *ui.Button
}

func NewMenuState(sm *StateMachine, settings config.Settings, level defs.LevelDefinition, observers ...Observer) *MenuState {
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	return &MenuState{
		sm:        sm,
		settings:  settings,
		level:     level,
		observers: observers,
		start:     ui.NewButton(image.Rect(cx-80, cy+120, cx+80, cy+156), "Start"),
	}
}

func (m *MenuState) Enter() {
	// Ничего не делаем при входе
}

func (m *MenuState) Update(deltaTime float64) {
	startClicked := false
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		startClicked = m.start.Contains(ebiten.CursorPosition())
	}
	if startClicked || inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		m.sm.SetState(NewGameState(m.sm, m.settings, m.level, m.observers...))
	}
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0, 0, 0, 255})

	y := config.ScreenHeight/2 - 120
	drawCentered(screen, m.level.Name, y, config.TextLightColor)
	drawCentered(screen, m.level.Description, y+24, config.TextLightColor)
	for i, line := range controls {
		drawCentered(screen, line, y+72+i*18, config.TextLightColor)
	}
	m.start.Draw(screen, ui.DefaultFace)
}

func (m *MenuState) Exit() {
	// Ничего не делаем при выходе
}
