// internal/system/visual_effect.go
package system

import (
	"image/color"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

const (
	fearFlashDuration = 0.3
	pulseDuration     = 0.4
)

// VisualEffectSystem управляет визуальными эффектами: вспышки страха и кольца сил.
type VisualEffectSystem struct {
	world *entity.World
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World) *VisualEffectSystem {
	return &VisualEffectSystem{world: world}
}

// Update обновляет все активные визуальные эффекты.
func (s *VisualEffectSystem) Update(deltaTime float64) {
	for id, flash := range s.world.FearFlashes {
		flash.Timer += deltaTime
		if flash.Timer >= flash.Duration {
			delete(s.world.FearFlashes, id)
		}
	}

	for id, ring := range s.world.Pulses {
		ring.CurrentTimer += deltaTime
		if ring.CurrentTimer >= ring.Duration {
			delete(s.world.Pulses, id)
			delete(s.world.Renderables, id)
			delete(s.world.Positions, id)
			continue
		}
		if renderable, ok := s.world.Renderables[id]; ok {
			progress := ring.CurrentTimer / ring.Duration
			renderable.Radius = float32(progress * ring.MaxRadius)
		}
	}
}

// SpawnPulse creates an expanding ring at position.
func SpawnPulse(w *entity.World, position types.Vec3, radius float64, c color.RGBA) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{Vec3: position}
	w.Renderables[id] = &component.Renderable{Color: c, Glyph: 'o'}
	w.Pulses[id] = &component.PulseRing{MaxRadius: radius, Duration: pulseDuration}
	return id
}

// Flash marks a mortal as just frightened.
func Flash(w *entity.World, id types.EntityID) {
	w.FearFlashes[id] = &component.FearFlash{Duration: fearFlashDuration}
}
