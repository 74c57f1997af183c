// internal/system/binding.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

// BindingSystem связывает призраков с якорями. Обе стороны связи
// (Ghost.BoundAnchor и Anchor.BoundGhost) меняются только здесь и только вместе.
type BindingSystem struct {
	world  *entity.World
	events *event.Dispatcher
}

func NewBindingSystem(world *entity.World, events *event.Dispatcher) *BindingSystem {
	return &BindingSystem{world: world, events: events}
}

// CanBind reports whether the anchor is free and accepts the ghost's category.
func (s *BindingSystem) CanBind(anchorID, ghostID types.EntityID) bool {
	a, okA := s.world.Anchors[anchorID]
	g, okG := s.world.Ghosts[ghostID]
	if !okA || !okG || a.Occupied {
		return false
	}
	return a.Accepts(g.Category)
}

// TryBind binds the ghost to the anchor, paying BindCost. On failure nothing
// changes.
func (s *BindingSystem) TryBind(ghostID, anchorID types.EntityID) bool {
	g, ok := s.world.Ghosts[ghostID]
	if !ok || g.IsBound() || !s.CanBind(anchorID, ghostID) || g.Plasm < g.BindCost {
		return false
	}
	a := s.world.Anchors[anchorID]

	g.SetPlasm(g.Plasm - g.BindCost)
	s.link(ghostID, g, anchorID, a)
	if pos, ok := s.world.Positions[ghostID]; ok {
		pos.Vec3 = s.world.PositionOf(anchorID)
	}

	log.Info().Str("ghost", g.Name).Str("anchor", a.Name).Msg("bound")
	s.events.Emit(event.GhostBound{Ghost: ghostID, Anchor: anchorID})
	s.events.Emit(event.PlasmChanged{Ghost: ghostID, Plasm: g.Plasm, Max: g.MaxPlasm})
	return true
}

// Unbind releases the ghost's anchor. No-op when unbound.
func (s *BindingSystem) Unbind(ghostID types.EntityID) {
	g, ok := s.world.Ghosts[ghostID]
	if !ok || !g.IsBound() {
		return
	}
	anchorID := g.BoundAnchor
	s.unlink(ghostID, g, s.world.Anchors[anchorID])
	log.Info().Str("ghost", g.Name).Msg("unbound")
	s.events.Emit(event.GhostUnbound{Ghost: ghostID, Anchor: anchorID})
}

// ReleaseAnchor unbinds whichever ghost occupies the anchor.
func (s *BindingSystem) ReleaseAnchor(anchorID types.EntityID) {
	a, ok := s.world.Anchors[anchorID]
	if !ok || !a.Occupied {
		return
	}
	s.Unbind(a.BoundGhost)
}

func (s *BindingSystem) link(ghostID types.EntityID, g *component.Ghost, anchorID types.EntityID, a *component.Anchor) {
	g.BoundAnchor = anchorID
	a.BoundGhost = ghostID
	a.Occupied = true
}

func (s *BindingSystem) unlink(ghostID types.EntityID, g *component.Ghost, a *component.Anchor) {
	g.BoundAnchor = types.NoEntity
	if a != nil && a.BoundGhost == ghostID {
		a.BoundGhost = types.NoEntity
		a.Occupied = false
	}
}
