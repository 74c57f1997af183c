// internal/system/anchor.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

// AnchorSystem обрабатывает импульсы занятых якорей. Импульс не зависит от
// сил призрака и не расходует плазму.
type AnchorSystem struct {
	world   *entity.World
	events  *event.Dispatcher
	effects *EffectDispatcher
}

func NewAnchorSystem(world *entity.World, events *event.Dispatcher, effects *EffectDispatcher) *AnchorSystem {
	return &AnchorSystem{world: world, events: events, effects: effects}
}

// TriggerAnchorAbility fires the category pulse of an occupied anchor.
func (s *AnchorSystem) TriggerAnchorAbility(anchorID types.EntityID) bool {
	a, ok := s.world.Anchors[anchorID]
	if !ok || !a.Occupied || a.Pulse == nil {
		return false
	}
	source := s.world.PositionOf(anchorID)
	affected := s.effects.Dispatch(source, a.Pulse.Radius, a.Pulse.Effect, 1)
	SpawnPulse(s.world, source, a.Pulse.Radius, config.AnchorColor)

	log.Info().Str("anchor", a.Name).Stringer("category", a.Category).Int("affected", affected).Msg("anchor pulse")
	s.events.Emit(event.AnchorTriggered{Anchor: anchorID, Affected: affected})
	return true
}
