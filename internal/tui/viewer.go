// internal/tui/viewer.go
package tui

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/app"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/types"
)

// hudLines — строки статуса под картой.
const hudLines = 3

const eventBuffer = 16

var (
	floorStyle    = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray)
	exitStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	anchorStyle   = tcell.StyleDefault.Foreground(tcell.ColorMediumPurple)
	occupiedStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	objectStyle   = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	pickupStyle   = tcell.StyleDefault.Foreground(tcell.ColorLightGreen)
	mortalStyle   = tcell.StyleDefault.Foreground(tcell.ColorWheat)
	fleeingStyle  = tcell.StyleDefault.Foreground(tcell.ColorRed)
	ghostStyle    = tcell.StyleDefault.Foreground(tcell.ColorLightSteelBlue)
	selectedStyle = ghostStyle.Reverse(true)
	textStyle     = tcell.StyleDefault
)

// Viewer draws a running game on a terminal screen and maps keys to
// player commands.
type Viewer struct {
	screen tcell.Screen
	game   *app.Game
	// polling отслеживает горутину чтения событий экрана.
	polling sync.WaitGroup
}

func NewViewer(screen tcell.Screen, game *app.Game) *Viewer {
	return &Viewer{screen: screen, game: game}
}

// cell maps a floor position to a screen cell with one uniform scale so the
// whole level fits above the HUD.
func (v *Viewer) cell(p types.Vec3) (int, int) {
	w := v.game.World
	cols, rows := v.screen.Size()
	rows -= hudLines
	spanX := math.Max(w.Max.X-w.Min.X, 1)
	spanZ := math.Max(w.Max.Z-w.Min.Z, 1)
	scale := math.Max(spanX/float64(max(cols-1, 1)), spanZ/float64(max(rows-1, 1)))
	return int(math.Round((p.X - w.Min.X) / scale)), int(math.Round((p.Z - w.Min.Z) / scale))
}

func (v *Viewer) put(p types.Vec3, r rune, style tcell.Style) {
	x, y := v.cell(p)
	_, rows := v.screen.Size()
	if y >= rows-hudLines {
		return
	}
	v.screen.SetContent(x, y, r, nil, style)
}

// Draw renders the floor, every visible entity and the HUD, then shows the screen.
func (v *Viewer) Draw() {
	s := v.screen
	w := v.game.World
	s.Clear()

	minX, minY := v.cell(w.Min)
	maxX, maxY := v.cell(w.Max)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			s.SetContent(x, y, '.', nil, floorStyle)
		}
	}
	for _, e := range w.Exits {
		v.put(e.Position, 'X', exitStyle)
	}

	for _, id := range w.SortedAnchorIDs() {
		style := anchorStyle
		if w.Anchors[id].Occupied {
			style = occupiedStyle
		}
		v.put(w.PositionOf(id), v.glyph(id, '#'), style)
	}
	for id := range w.Interactables {
		v.put(w.PositionOf(id), v.glyph(id, '&'), objectStyle)
	}
	for id, p := range w.Pickups {
		if !p.Collected {
			v.put(w.PositionOf(id), v.glyph(id, '*'), pickupStyle)
		}
	}
	for _, id := range w.SortedMortalIDs() {
		m := w.Mortals[id]
		if !m.IsActive {
			continue
		}
		style := mortalStyle
		if m.HasFled {
			style = fleeingStyle
		}
		v.put(w.PositionOf(id), v.glyph(id, 'm'), style)
	}
	for _, id := range w.SortedGhostIDs() {
		style := ghostStyle
		if id == w.Selected {
			style = selectedStyle
		}
		v.put(w.PositionOf(id), v.glyph(id, 'G'), style)
	}

	v.drawHUD()
	s.Show()
}

func (v *Viewer) glyph(id types.EntityID, fallback rune) rune {
	if r, ok := v.game.World.Renderables[id]; ok && r.Glyph != 0 {
		return r.Glyph
	}
	return fallback
}

func (v *Viewer) drawHUD() {
	w := v.game.World
	_, rows := v.screen.Size()
	top := rows - hudLines

	status := fmt.Sprintf("Pool %d/%d  Time %.0f/%.0f  x%.0f", w.Pool.Current(), w.Pool.Max,
		w.Mission.Elapsed, w.Mission.TimeLimit, v.game.SpeedMultiplier)
	if v.game.IsPaused() {
		status += "  PAUSED"
	}
	v.text(0, top, status)

	if _, ghost, ok := v.game.Selected(); ok {
		v.text(0, top+1, fmt.Sprintf("%s  plasm %.0f/%.0f  cd %.1fs", ghost.Name, ghost.Plasm, ghost.MaxPlasm,
			ghost.CooldownRemaining(w.GameTime)))
	} else {
		v.text(0, top+1, "1-5 select  b bind  q/e powers  t anchor  h haunt  u unbind  r feed  p pause  + speed")
	}
	if n := len(v.game.Log); n > 0 {
		v.text(0, top+2, v.game.Log[n-1])
	}
}

func (v *Viewer) text(x, y int, s string) {
	for i, r := range []rune(s) {
		v.screen.SetContent(x+i, y, r, nil, textStyle)
	}
}

// HandleKey applies one key press. It returns false when the viewer should quit.
func (v *Viewer) HandleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyTab:
		v.selectNext()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	g := v.game
	switch r := ev.Rune(); r {
	case 'q':
		g.ActivatePrimary()
	case 'e':
		g.ActivateSecondary()
	case 't':
		g.TriggerAnchor()
	case 'h':
		g.HauntNearest()
	case 'u':
		g.UnbindSelected()
	case 'r':
		g.TransferPlasm(10)
	case 'b':
		v.bindNearest()
	case 'p':
		g.HandlePauseClick()
	case '+':
		g.HandleSpeedClick()
	default:
		if r >= '1' && r <= '9' {
			if ids := g.World.SortedGhostIDs(); int(r-'1') < len(ids) {
				g.SelectGhost(ids[r-'1'])
			}
		}
	}
	return true
}

func (v *Viewer) selectNext() {
	ids := v.game.World.SortedGhostIDs()
	if len(ids) == 0 {
		return
	}
	next := ids[0]
	for i, id := range ids {
		if id == v.game.World.Selected && i+1 < len(ids) {
			next = ids[i+1]
		}
	}
	v.game.SelectGhost(next)
}

// bindNearest binds the selected ghost to the closest anchor that accepts it.
func (v *Viewer) bindNearest() bool {
	g := v.game
	id, _, ok := g.Selected()
	if !ok {
		return false
	}
	from := g.World.PositionOf(id)
	best, bestDist := types.NoEntity, math.Inf(1)
	for _, anchorID := range g.World.SortedAnchorIDs() {
		if !g.Sim.Binding.CanBind(anchorID, id) {
			continue
		}
		if d := g.World.PositionOf(anchorID).Distance(from); d < bestDist {
			best, bestDist = anchorID, d
		}
	}
	return best != types.NoEntity && g.BindSelected(best)
}

// Run drives the game at the given tick until ctx is done, the player quits
// or the screen stops delivering events.
func (v *Viewer) Run(ctx context.Context, tick time.Duration) error {
	done := make(chan struct{})
	defer close(done)
	events := v.pollEvents(done)

	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	last := time.Now()
	v.Draw()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !v.HandleKey(ev) {
					log.Info().Msg("viewer closed by player")
					return nil
				}
			case *tcell.EventResize:
				v.screen.Sync()
			}
			v.Draw()
		case now := <-ticker.C:
			dt := math.Min(now.Sub(last).Seconds(), config.MaxDeltaTime)
			last = now
			v.game.Update(dt)
			v.Draw()
		}
	}
}

// pollEvents forwards screen events until the screen is finalized or done is
// closed.
func (v *Viewer) pollEvents(done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, eventBuffer)
	v.polling.Add(1)
	go func() {
		defer v.polling.Done()
		defer close(events)
		for {
			ev := v.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}
