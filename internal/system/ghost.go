// internal/system/ghost.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

// GhostSystem управляет плазмой, силами и выбором призраков.
type GhostSystem struct {
	world   *entity.World
	events  *event.Dispatcher
	effects *EffectDispatcher
}

func NewGhostSystem(world *entity.World, events *event.Dispatcher, effects *EffectDispatcher) *GhostSystem {
	return &GhostSystem{world: world, events: events, effects: effects}
}

// Regenerate restores plasm of every ghost, bound or not.
func (s *GhostSystem) Regenerate(deltaTime float64) {
	for _, id := range s.world.SortedGhostIDs() {
		g := s.world.Ghosts[id]
		if g.Plasm >= g.MaxPlasm {
			continue
		}
		g.SetPlasm(g.Plasm + g.RegenRate*deltaTime)
		s.plasmChanged(id, g)
	}
}

// CanUsePower reports whether ghost id is bound, off the shared cooldown and
// holds at least cost plasm.
func (s *GhostSystem) CanUsePower(id types.EntityID, cost float64) bool {
	g, ok := s.world.Ghosts[id]
	if !ok || !g.IsBound() {
		return false
	}
	return s.world.GameTime-g.LastPowerUse >= g.PowerCooldown && g.Plasm >= cost
}

func (s *GhostSystem) ActivatePrimary(id types.EntityID) bool {
	return s.activate(id, false)
}

func (s *GhostSystem) ActivateSecondary(id types.EntityID) bool {
	return s.activate(id, true)
}

func (s *GhostSystem) activate(id types.EntityID, secondary bool) bool {
	g, ok := s.world.Ghosts[id]
	if !ok {
		return false
	}
	ability := &g.Primary
	if secondary {
		ability = &g.Secondary
	}
	if !s.CanUsePower(id, ability.Cost) || !ability.Ready(s.world.GameTime) {
		log.Debug().Str("ghost", g.Name).Str("power", ability.Name).Msg("power unavailable")
		return false
	}

	now := s.world.GameTime
	g.SetPlasm(g.Plasm - ability.Cost)
	g.LastPowerUse = now
	ability.LastUsed = now

	bonus := 1.0
	if anchor, ok := s.world.Anchors[g.BoundAnchor]; ok {
		bonus = anchor.PowerBonus
	}
	rangeMul := ability.Def.RangeMultiplier
	if rangeMul <= 0 {
		rangeMul = 1
	}
	radius := g.PowerRange * rangeMul
	source := s.world.PositionOf(id)
	affected := s.effects.Dispatch(source, radius, ability.Def.Effect, bonus)
	SpawnPulse(s.world, source, radius, config.GhostColor)

	log.Info().Str("ghost", g.Name).Str("power", ability.Name).Int("affected", affected).Msg("power activated")
	s.events.Emit(event.PowerActivated{Ghost: id, Power: ability.Name, Secondary: secondary, Affected: affected})
	s.plasmChanged(id, g)
	return true
}

// Select makes id the only selected ghost. Selecting NoEntity clears it.
func (s *GhostSystem) Select(id types.EntityID) {
	if id == s.world.Selected {
		return
	}
	if id != types.NoEntity {
		if _, ok := s.world.Ghosts[id]; !ok {
			return
		}
	}
	if prev, ok := s.world.Ghosts[s.world.Selected]; ok {
		prev.Selected = false
		s.events.Emit(event.GhostDeselected{Ghost: s.world.Selected})
	}
	s.world.Selected = id
	if g, ok := s.world.Ghosts[id]; ok {
		g.Selected = true
		s.events.Emit(event.GhostSelected{Ghost: id})
	}
}

// GainPlasm adds amount to the ghost, capped at its maximum.
func (s *GhostSystem) GainPlasm(id types.EntityID, amount float64) bool {
	g, ok := s.world.Ghosts[id]
	if !ok || amount <= 0 {
		return false
	}
	g.SetPlasm(g.Plasm + amount)
	s.plasmChanged(id, g)
	return true
}

// SpendPlasm debits amount if the ghost can afford it.
func (s *GhostSystem) SpendPlasm(id types.EntityID, amount float64) bool {
	g, ok := s.world.Ghosts[id]
	if !ok || amount < 0 || g.Plasm < amount {
		return false
	}
	g.SetPlasm(g.Plasm - amount)
	s.plasmChanged(id, g)
	return true
}

func (s *GhostSystem) plasmChanged(id types.EntityID, g *component.Ghost) {
	s.events.Emit(event.PlasmChanged{Ghost: id, Plasm: g.Plasm, Max: g.MaxPlasm})
}
