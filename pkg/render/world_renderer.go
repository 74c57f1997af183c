// pkg/render/world_renderer.go
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

// WorldRenderer рисует уровень сверху: пол в плоскости XZ.
type WorldRenderer struct {
	world  *entity.World
	shapes *ShapeRenderer
}

func NewWorldRenderer(world *entity.World, shapes *ShapeRenderer) *WorldRenderer {
	return &WorldRenderer{world: world, shapes: shapes}
}

// WorldToScreen проецирует точку мира на экран.
func WorldToScreen(p types.Vec3) (float32, float32) {
	return float32(p.X*config.WorldScale + config.WorldOffsetX), float32(p.Z*config.WorldScale + config.WorldOffsetY)
}

// ScreenToWorld is the inverse of WorldToScreen on the floor plane.
func ScreenToWorld(x, y int) types.Vec3 {
	return types.Vec3{
		X: (float64(x) - config.WorldOffsetX) / config.WorldScale,
		Z: (float64(y) - config.WorldOffsetY) / config.WorldScale,
	}
}

func (s *WorldRenderer) Draw(screen *ebiten.Image, gameTime float64) {
	w := s.world
	x0, y0 := WorldToScreen(w.Min)
	x1, y1 := WorldToScreen(w.Max)
	vector.DrawFilledRect(screen, x0, y0, x1-x0, y1-y0, config.FloorColor, false)

	for _, exit := range w.Exits {
		x, y := WorldToScreen(exit.Position)
		vector.DrawFilledRect(screen, x-8, y-8, 16, 16, config.ExitColor, false)
	}

	for _, id := range w.SortedAnchorIDs() {
		a := w.Anchors[id]
		x, y := WorldToScreen(w.PositionOf(id))
		s.shapes.FillPolygon(screen, RegularPolygon(x, y, 9, 6, math.Pi/6), config.AnchorColor)
		if a.Occupied {
			s.shapes.StrokePolygon(screen, RegularPolygon(x, y, 12, 6, math.Pi/6), config.StrokeWidth, config.OccupiedColor)
		}
	}

	for id, obj := range w.Interactables {
		x, y := WorldToScreen(w.PositionOf(id))
		c := config.InteractColor
		if obj.Highlighted {
			c = config.SelectedColor
		}
		vector.StrokeRect(screen, x-6, y-6, 12, 12, config.StrokeWidth, c, false)
	}

	for id, pickup := range w.Pickups {
		if pickup.Collected {
			continue
		}
		x, y := WorldToScreen(w.PositionOf(id))
		// пульсация сгустка
		r := float32(5 * (1 + 0.15*math.Sin(gameTime*4)))
		vector.DrawFilledCircle(screen, x, y, r, config.PickupColor, true)
	}

	for id, ring := range w.Pulses {
		r, ok := w.Renderables[id]
		if !ok {
			continue
		}
		x, y := WorldToScreen(w.PositionOf(id))
		c := WithAlpha(r.Color, uint8(255*(1-ring.CurrentTimer/ring.Duration)))
		vector.StrokeCircle(screen, x, y, r.Radius*config.WorldScale, config.StrokeWidth, c, true)
	}

	for _, id := range w.SortedMortalIDs() {
		m := w.Mortals[id]
		if !m.IsActive {
			continue
		}
		x, y := WorldToScreen(w.PositionOf(id))
		vector.DrawFilledCircle(screen, x, y, 8, s.mortalColor(id), true)
		// полоска страха
		vector.DrawFilledRect(screen, x-10, y-14, 20, 3, config.BackgroundColor, false)
		vector.DrawFilledRect(screen, x-10, y-14, float32(20*m.FearRatio()), 3, config.FearColor, false)
	}

	for _, id := range w.SortedGhostIDs() {
		g := w.Ghosts[id]
		x, y := WorldToScreen(w.PositionOf(id))
		if g.Selected {
			vector.StrokeCircle(screen, x, y, 12, config.StrokeWidth, config.SelectedColor, true)
		}
		c := config.GhostColor
		if !g.IsBound() {
			c = DarkenColor(c)
		}
		vector.DrawFilledCircle(screen, x, y, 9, c, true)
	}
}

func (s *WorldRenderer) mortalColor(id types.EntityID) color.RGBA {
	m := s.world.Mortals[id]
	switch {
	case m.IsFrozen():
		return config.FrozenColor
	case m.IsPossessed():
		return config.PossessedColor
	}
	if _, flashing := s.world.FearFlashes[id]; flashing {
		return config.FearColor
	}
	return utils.LerpColor(config.MortalColor, config.FearColor, m.FearRatio())
}
