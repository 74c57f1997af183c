// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-haunted-house/internal/app"
	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/ui"
	"go-haunted-house/pkg/render"
)

const uiClickCooldown = config.ClickCooldown * time.Millisecond

// Observer подключается к событиям каждой новой игры (звук, журнал и т.п.).
type Observer interface {
	Attach(d *event.Dispatcher)
}

// GameState — состояние игры
type GameState struct {
	sm        *StateMachine
	game      *app.Game
	settings  config.Settings
	level     defs.LevelDefinition
	observers []Observer

	renderer       *render.WorldRenderer
	indicator      *ui.StateIndicator
	speedButton    *ui.SpeedButton
	pauseButton    *ui.PauseButton
	plasm          *ui.PlasmIndicator
	ghostIndicator *ui.GhostIndicator
	fear           *ui.FearIndicator
	objectives     *ui.ObjectiveBook
	timer          *ui.TimerIndicator
	hauntKey       *ui.HotkeyIndicator
	anchorKey      *ui.HotkeyIndicator
	infoPanel      *ui.InfoPanel
	lastClickTime  time.Time
}

func NewGameState(sm *StateMachine, settings config.Settings, level defs.LevelDefinition, observers ...Observer) *GameState {
	gameLogic := app.NewGame(settings, level)
	for _, o := range observers {
		o.Attach(gameLogic.Events)
	}

	shapes := render.NewShapeRenderer()
	pauseButtonX := float32(config.ScreenWidth - config.IndicatorOffsetX - 90)
	indicatorX := float32(config.ScreenWidth - config.IndicatorOffsetX)
	speedButtonX := (pauseButtonX+indicatorX)/2 + 2

	gs := &GameState{
		sm:        sm,
		game:      gameLogic,
		settings:  settings,
		level:     level,
		observers: observers,
		renderer:  render.NewWorldRenderer(gameLogic.World, shapes),
		indicator: ui.NewStateIndicator(indicatorX, config.IndicatorOffsetX, config.IndicatorRadius),
		speedButton: ui.NewSpeedButton(speedButtonX, config.SpeedButtonY, config.SpeedButtonSize/2,
			config.SpeedButtonColors, shapes),
		pauseButton: ui.NewPauseButton(pauseButtonX, config.IndicatorOffsetX, config.IndicatorRadius,
			config.SpeedButtonColors[0], config.SpeedButtonColors[2], shapes),
		plasm:          ui.NewPlasmIndicator(20, 30, config.PlasmMeterColor, config.PlasmLowColor),
		ghostIndicator: ui.NewGhostIndicator(260, 30),
		fear:           ui.NewFearIndicator(config.ScreenWidth-300, 110, 80),
		objectives:     ui.NewObjectiveBook(config.ScreenWidth-300, 230, 280, 150, ui.DefaultFace),
		timer:          ui.NewTimerIndicator(config.ScreenWidth/2, 40),
		hauntKey:       ui.NewHotkeyIndicator(520, 36, "H"),
		anchorKey:      ui.NewHotkeyIndicator(545, 36, "T"),
		lastClickTime:  time.Now(),
	}
	gs.infoPanel = ui.NewInfoPanel(ui.DefaultFace, gameLogic)
	return gs
}

// GetGame returns the running game logic.
func (g *GameState) GetGame() *app.Game {
	return g.game
}

func (g *GameState) Enter() {
	g.pauseButton.SetPaused(false)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()

	if g.game.IsOver() {
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.sm.SetState(NewGameState(g.sm, g.settings, g.level, g.observers...))
		}
		return
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF9) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.handlePauseClick()
		return
	}
	g.handleKeys()

	g.game.Update(deltaTime)
	g.game.SetHighlighted()
	g.syncPanel()

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if g.isClickOnUI(x, y) {
			if time.Since(g.lastClickTime) >= uiClickCooldown {
				g.handleUIClick(x, y)
				g.lastClickTime = time.Now()
			}
		} else {
			g.game.Click(render.ScreenToWorld(x, y))
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.game.SelectGhost(types.NoEntity)
	}
}

func (g *GameState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		g.game.ActivatePrimary()
	case inpututil.IsKeyJustPressed(ebiten.KeyE):
		g.game.ActivateSecondary()
	case inpututil.IsKeyJustPressed(ebiten.KeyT):
		g.game.TriggerAnchor()
	case inpututil.IsKeyJustPressed(ebiten.KeyH):
		g.game.HauntNearest()
	case inpututil.IsKeyJustPressed(ebiten.KeyU):
		g.game.UnbindSelected()
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		g.game.TransferPlasm(10)
	case inpututil.IsKeyJustPressed(ebiten.KeyO):
		g.objectives.Toggle()
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		g.selectNextGhost()
	}
	for i, key := range []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5} {
		if inpututil.IsKeyJustPressed(key) {
			if ids := g.game.World.SortedGhostIDs(); i < len(ids) {
				g.game.SelectGhost(ids[i])
			}
		}
	}
}

func (g *GameState) selectNextGhost() {
	ids := g.game.World.SortedGhostIDs()
	if len(ids) == 0 {
		return
	}
	next := ids[0]
	for i, id := range ids {
		if id == g.game.World.Selected && i+1 < len(ids) {
			next = ids[i+1]
		}
	}
	g.game.SelectGhost(next)
}

// syncPanel keeps the info panel on the selected ghost.
func (g *GameState) syncPanel() {
	selected := g.game.World.Selected
	switch {
	case selected == types.NoEntity && g.infoPanel.IsVisible:
		g.infoPanel.Hide()
	case selected != types.NoEntity && selected != g.infoPanel.TargetEntity:
		g.infoPanel.SetTarget(selected)
	}
}

// isClickOnUI проверяет, был ли клик по какому-либо элементу UI
func (g *GameState) isClickOnUI(x, y int) bool {
	return g.speedButton.IsClicked(x, y) ||
		g.pauseButton.IsClicked(x, y) ||
		g.indicator.IsClicked(x, y) ||
		g.infoPanel.Contains(x, y)
}

// handleUIClick обрабатывает клики, которые точно попали в UI
func (g *GameState) handleUIClick(x, y int) {
	switch {
	case g.speedButton.IsClicked(x, y):
		if time.Since(g.speedButton.LastToggleTime) >= uiClickCooldown {
			g.game.HandleSpeedClick()
			g.speedButton.SetState(g.game.SpeedIndex)
		}
	case g.pauseButton.IsClicked(x, y):
		if time.Since(g.pauseButton.LastToggleTime) >= uiClickCooldown {
			g.handlePauseClick()
		}
	case g.indicator.IsClicked(x, y):
		g.indicator.HandleClick()
		g.objectives.Toggle()
	default:
		g.infoPanel.HandleClick(x, y)
	}
}

func (g *GameState) handlePauseClick() {
	g.game.HandlePauseClick()
	g.pauseButton.SetPaused(true)
	g.sm.SetState(NewPauseState(g.sm, g))
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	g.renderer.Draw(screen, g.game.GetGameTime())

	w := g.game.World
	g.indicator.Draw(screen, missionColor(w.Mission.Status))
	g.speedButton.Draw(screen)
	g.pauseButton.Draw(screen)
	g.plasm.Draw(screen, w.Pool.Current(), w.Pool.Max)
	if _, ghost, ok := g.game.Selected(); ok {
		g.ghostIndicator.Draw(screen, ghost, w.GameTime)
		g.anchorKey.Draw(screen, ghost.IsBound())
	}
	g.hauntKey.Draw(screen, g.hauntAvailable())
	g.timer.Draw(screen, w.Mission.Elapsed, w.Mission.TimeLimit)

	bars := make([]ui.FearBar, 0, len(w.Mortals))
	for _, id := range w.SortedMortalIDs() {
		m := w.Mortals[id]
		bars = append(bars, ui.FearBar{Label: m.Name, Ratio: m.FearRatio(), Fled: m.HasFled})
	}
	g.fear.Draw(screen, bars)
	g.objectives.Draw(screen, w.Mission)
	g.infoPanel.Draw(screen, w)

	for i, line := range g.game.Log {
		text.Draw(screen, line, ui.DefaultFace, 20, 110+i*16, config.TextLightColor)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("x%.0f  TPS %.0f", g.game.SpeedMultiplier, ebiten.ActualTPS()), 4, config.ScreenHeight-16)

	if g.game.IsOver() {
		g.drawResult(screen)
	}
}

func (g *GameState) hauntAvailable() bool {
	for _, obj := range g.game.World.Interactables {
		if obj.Highlighted {
			return true
		}
	}
	return false
}

func (g *GameState) drawResult(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 150}, false)
	mission := g.game.World.Mission
	title := fmt.Sprintf("MISSION COMPLETE - SCORE %d", mission.Score)
	if mission.Status == component.MissionFailed {
		title = "MISSION FAILED - " + mission.FailReason
	}
	drawCentered(screen, title, config.ScreenHeight/2-10, config.TextLightColor)
	drawCentered(screen, "Press Enter to play again", config.ScreenHeight/2+14, config.TextLightColor)
}

func (g *GameState) Exit() {
	// Ничего не делаем при выходе
}

func missionColor(status component.MissionStatus) color.RGBA {
	switch status {
	case component.MissionCompleted:
		return config.OccupiedColor
	case component.MissionFailed:
		return config.FearColor
	}
	return config.PlasmMeterColor
}

func drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	bounds := text.BoundString(ui.DefaultFace, s)
	text.Draw(screen, s, ui.DefaultFace, (config.ScreenWidth-bounds.Dx())/2, y, c)
}
