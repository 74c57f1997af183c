// internal/system/haunt.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

// HauntSystem управляет эффектами одержимых предметов: испуг и полтергейст.
type HauntSystem struct {
	world   *entity.World
	events  *event.Dispatcher
	ghosts  *GhostSystem
	effects *EffectDispatcher
}

func NewHauntSystem(world *entity.World, events *event.Dispatcher, ghosts *GhostSystem, effects *EffectDispatcher) *HauntSystem {
	return &HauntSystem{world: world, events: events, ghosts: ghosts, effects: effects}
}

// CanInteract reports whether the object is off its interaction cooldown.
func (s *HauntSystem) CanInteract(objectID types.EntityID) bool {
	obj, ok := s.world.Interactables[objectID]
	return ok && s.world.GameTime-obj.LastInteraction >= obj.Cooldown
}

// Haunt starts the first affordable, inactive effect of the object on behalf
// of a bound ghost within reach.
func (s *HauntSystem) Haunt(ghostID, objectID types.EntityID) bool {
	g, ok := s.world.Ghosts[ghostID]
	if !ok || !g.IsBound() || !s.CanInteract(objectID) {
		return false
	}
	objPos := s.world.PositionOf(objectID)
	if s.world.PositionOf(ghostID).Distance(objPos) > config.HauntReach {
		return false
	}
	obj := s.world.Interactables[objectID]

	for _, effectID := range obj.Effects {
		def, ok := defs.HauntLibrary[effectID]
		if !ok || s.active(objectID, effectID) || g.Plasm < def.PlasmCost {
			continue
		}
		s.ghosts.SpendPlasm(ghostID, def.PlasmCost)
		obj.LastInteraction = s.world.GameTime
		id := s.world.NewEntity()
		h := &component.Haunt{Def: def, Source: objectID, Ghost: ghostID}
		s.world.Haunts[id] = h
		s.start(h, objPos)

		log.Info().Str("object", obj.Name).Str("effect", def.Name).Msg("haunt started")
		s.events.Emit(event.HauntStarted{Object: objectID, Ghost: ghostID, Effect: def.ID})
		return true
	}
	return false
}

// Deactivate ends every running effect hosted by the object.
func (s *HauntSystem) Deactivate(objectID types.EntityID) {
	for id, h := range s.world.Haunts {
		if h.Source == objectID {
			delete(s.world.Haunts, id)
		}
	}
}

func (s *HauntSystem) Update(deltaTime float64) {
	for _, id := range entity.SortedKeys(s.world.Haunts) {
		h := s.world.Haunts[id]
		h.Elapsed += deltaTime
		if h.Def.Kind == defs.HauntPoltergeist && h.Elapsed < h.Def.Duration {
			h.PulseTimer -= deltaTime
			if h.PulseTimer <= 0 {
				s.throwObjects(h)
				h.PulseTimer = h.Def.PulseInterval
			}
		}
		if h.Elapsed >= h.Def.Duration {
			delete(s.world.Haunts, id)
		}
	}
}

func (s *HauntSystem) start(h *component.Haunt, at types.Vec3) {
	h.Started = true
	switch h.Def.Kind {
	case defs.HauntScare:
		s.effects.Dispatch(at, h.Def.Radius, defs.EffectDef{
			Fear:      h.Def.Fear * h.Def.Intensity,
			ForceFlee: true,
		}, 1)
		SpawnPulse(s.world, at, h.Def.Radius, config.InteractColor)
	case defs.HauntPoltergeist:
		s.throwObjects(h)
		h.PulseTimer = h.Def.PulseInterval
	}
}

// throwObjects scares mortals around every object within the effect radius,
// the haunted object included.
func (s *HauntSystem) throwObjects(h *component.Haunt) {
	center := s.world.PositionOf(h.Source)
	effect := defs.EffectDef{Fear: h.Def.Fear * h.Def.Intensity}
	for _, id := range entity.SortedKeys(s.world.Interactables) {
		pos := s.world.PositionOf(id)
		if pos.Distance(center) > h.Def.Radius {
			continue
		}
		s.effects.Dispatch(pos, config.ThrowScareRadius, effect, 1)
	}
}

func (s *HauntSystem) active(objectID types.EntityID, effectID string) bool {
	for _, h := range s.world.Haunts {
		if h.Source == objectID && h.Def.ID == effectID {
			return true
		}
	}
	return false
}
