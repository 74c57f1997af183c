// internal/system/pickup.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
)

// PickupSystem собирает сгустки плазмы, к которым подлетел призрак.
type PickupSystem struct {
	world  *entity.World
	events *event.Dispatcher
	ghosts *GhostSystem
}

// NewPickupSystem creates a new PickupSystem.
func NewPickupSystem(world *entity.World, events *event.Dispatcher, ghosts *GhostSystem) *PickupSystem {
	return &PickupSystem{world: world, events: events, ghosts: ghosts}
}

// Update hands each uncollected pickup to the first ghost (by ID) inside its
// radius. A pickup is collected at most once.
func (s *PickupSystem) Update() {
	for _, id := range entity.SortedKeys(s.world.Pickups) {
		pickup := s.world.Pickups[id]
		if pickup.Collected {
			continue
		}
		pos := s.world.PositionOf(id)
		for _, ghostID := range s.world.SortedGhostIDs() {
			if s.world.PositionOf(ghostID).Distance(pos) > pickup.Radius {
				continue
			}
			pickup.Collected = true
			s.ghosts.GainPlasm(ghostID, pickup.Amount)
			delete(s.world.Renderables, id)

			log.Info().Str("ghost", s.world.Ghosts[ghostID].Name).Float64("amount", pickup.Amount).Msg("plasm collected")
			s.events.Emit(event.PlasmCollected{Ghost: ghostID, Amount: pickup.Amount})
			break
		}
	}
}
