// internal/system/fear.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/interfaces"
	"go-haunted-house/internal/types"
)

// FearSystem отвечает за накопление и затухание страха и переход к бегству.
type FearSystem struct {
	world  *entity.World
	events *event.Dispatcher
	nav    interfaces.Navigator
}

func NewFearSystem(world *entity.World, events *event.Dispatcher, nav interfaces.Navigator) *FearSystem {
	return &FearSystem{world: world, events: events, nav: nav}
}

// ApplyFear adds amount (before the category multiplier) to mortal id.
// Fleeing, departed and inactive mortals ignore it.
func (s *FearSystem) ApplyFear(id types.EntityID, amount float64) {
	m, ok := s.world.Mortals[id]
	if !ok || !m.AcceptsFear() || m.IsFleeing() {
		return
	}
	gained := m.AddFear(amount)
	if m.Fear > 0 {
		m.Phase = component.PhaseAlarmed
	}

	switch m.Behavior.Kind {
	case component.BehaviorPatrol, component.BehaviorRandomWander:
		m.SetBehavior(component.BehaviorHalted)
	}
	m.ReactionTimer = config.FearReactionDuration
	syncAgent(s.world, id)
	Flash(s.world, id)

	log.Debug().Str("mortal", m.Name).Float64("fear", m.Fear).Float64("max", m.MaxFear).Msg("frightened")
	s.events.Emit(event.MortalFeared{Mortal: id, Amount: gained, Fear: m.Fear})

	s.checkThreshold(id, m)
}

// ForceFlee sends the mortal fleeing regardless of its fear.
func (s *FearSystem) ForceFlee(id types.EntityID) {
	if m, ok := s.world.Mortals[id]; ok {
		s.beginFlee(id, m)
	}
}

// Decay lowers fear of every calm, unpossessed mortal.
func (s *FearSystem) Decay(deltaTime float64) {
	for _, id := range s.world.SortedMortalIDs() {
		m := s.world.Mortals[id]
		if !m.IsActive || m.IsFleeing() || m.IsPossessed() {
			continue
		}
		m.DecayFear(deltaTime)
		if m.Fear <= 0 && m.Phase == component.PhaseAlarmed {
			m.Phase = component.PhaseWandering
		}
	}
}

// CheckFlee fires the flee transition for every mortal at or above its threshold.
func (s *FearSystem) CheckFlee() {
	for _, id := range s.world.SortedMortalIDs() {
		s.checkThreshold(id, s.world.Mortals[id])
	}
}

// checkThreshold is deferred while the mortal is possessed.
func (s *FearSystem) checkThreshold(id types.EntityID, m *component.Mortal) {
	if m.IsPossessed() || m.IsFleeing() {
		return
	}
	if m.Fear >= m.ScareThreshold {
		s.beginFlee(id, m)
	}
}

func (s *FearSystem) beginFlee(id types.EntityID, m *component.Mortal) {
	if !m.AcceptsFear() {
		return
	}
	m.HasFled = true
	m.Phase = component.PhaseFleeing
	m.ReactionTimer = 0
	// бегство прерывает одержимость; оглушение и заморозка продолжают держать
	m.Status.PossessTimer = 0

	pos := s.world.PositionOf(id)
	if exit, ok := s.nearestExit(pos); ok {
		m.SetBehavior(component.BehaviorFleeToExit)
		m.Exit = exit
		m.Behavior.Target = exit
		m.Behavior.Stage = component.StageMoving
		m.Behavior.Timer = config.FleeTrackInterval
	} else {
		m.SetBehavior(component.BehaviorFleeAway)
		dir := pos.Sub(s.world.Viewer).Normalize()
		m.Behavior.Target = pos.Add(dir.Scale(config.FleeAwayDistance))
		m.Behavior.Stage = component.StageMoving
	}
	s.nav.SetDestination(id, m.Behavior.Target)
	syncAgent(s.world, id)

	log.Info().Str("mortal", m.Name).Msg("scared away")
	s.events.Emit(event.MortalFled{Mortal: id, Name: m.Name})
}

// nearestExit picks the closest exit; ties keep the earlier exit.
func (s *FearSystem) nearestExit(from types.Vec3) (types.Vec3, bool) {
	if len(s.world.Exits) == 0 {
		return types.Vec3{}, false
	}
	best := s.world.Exits[0].Position
	bestDist := from.DistanceSq(best)
	for _, exit := range s.world.Exits[1:] {
		if d := from.DistanceSq(exit.Position); d < bestDist {
			best, bestDist = exit.Position, d
		}
	}
	return best, true
}
