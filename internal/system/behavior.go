// internal/system/behavior.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/interfaces"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

// BehaviorSystem продвигает текущее поведение каждого смертного на один шаг:
// патруль, случайное блуждание, одержимость и бегство к выходу.
// Поведение хранится в component.Behavior; отмена — это перезапись.
type BehaviorSystem struct {
	world  *entity.World
	events *event.Dispatcher
	nav    interfaces.Navigator
	pool   interfaces.ResourcePool
	rng    *utils.PRNGService
}

func NewBehaviorSystem(world *entity.World, events *event.Dispatcher, nav interfaces.Navigator, pool interfaces.ResourcePool, rng *utils.PRNGService) *BehaviorSystem {
	return &BehaviorSystem{world: world, events: events, nav: nav, pool: pool, rng: rng}
}

func (s *BehaviorSystem) Update(deltaTime float64) {
	for _, id := range s.world.SortedMortalIDs() {
		m := s.world.Mortals[id]
		if !m.IsActive {
			continue
		}
		s.selectBehavior(m)
		s.advance(id, m, deltaTime)
		syncAgent(s.world, id)
	}
}

// selectBehavior starts the default behavior once nothing else holds the mortal.
func (s *BehaviorSystem) selectBehavior(m *component.Mortal) {
	switch {
	case m.HasFled:
	case m.IsPossessed():
		if m.Behavior.Kind != component.BehaviorPossessed {
			m.SetBehavior(component.BehaviorPossessed)
		}
	case m.Behavior.Kind == component.BehaviorHalted && !m.MovementBlocked():
		if len(m.Waypoints) > 0 {
			m.SetBehavior(component.BehaviorPatrol)
		} else {
			m.SetBehavior(component.BehaviorRandomWander)
		}
	}
}

func (s *BehaviorSystem) advance(id types.EntityID, m *component.Mortal, dt float64) {
	switch m.Behavior.Kind {
	case component.BehaviorPatrol:
		s.patrol(id, m, dt)
	case component.BehaviorRandomWander:
		s.randomWander(id, m, dt)
	case component.BehaviorPossessed:
		s.possessed(id, dt)
	case component.BehaviorFleeToExit:
		s.fleeToExit(id, m, dt)
	}
}

func (s *BehaviorSystem) patrol(id types.EntityID, m *component.Mortal, dt float64) {
	if len(m.Waypoints) == 0 {
		m.SetBehavior(component.BehaviorRandomWander)
		return
	}
	b := &m.Behavior
	switch b.Stage {
	case component.StageStart:
		if m.MovementBlocked() {
			return
		}
		m.NextWaypoint %= len(m.Waypoints)
		b.Target = m.Waypoints[m.NextWaypoint]
		s.nav.SetDestination(id, b.Target)
		b.Stage = component.StageMoving
	case component.StageMoving:
		if s.arrived(id) {
			b.Stage = component.StageWaiting
			b.Timer = m.WaitTime
		}
	case component.StageWaiting:
		b.Timer -= dt
		if b.Timer <= 0 {
			m.NextWaypoint = (m.NextWaypoint + 1) % len(m.Waypoints)
			b.Stage = component.StageStart
		}
	}
}

func (s *BehaviorSystem) randomWander(id types.EntityID, m *component.Mortal, dt float64) {
	b := &m.Behavior
	switch b.Stage {
	case component.StageStart:
		if m.MovementBlocked() {
			return
		}
		candidate := s.rng.PointInRadius(s.world.PositionOf(id), m.WanderRadius)
		point, ok := s.nav.SamplePosition(candidate, m.WanderRadius)
		if !ok {
			b.Stage = component.StageWaiting
			b.Timer = config.WanderRetryDelay
			return
		}
		b.Target = point
		s.nav.SetDestination(id, point)
		b.Stage = component.StageMoving
	case component.StageMoving:
		if s.arrived(id) {
			b.Stage = component.StageWaiting
			b.Timer = m.WaitTime
		}
	case component.StageWaiting:
		b.Timer -= dt
		if b.Timer <= 0 {
			b.Stage = component.StageStart
		}
	}
}

// possessed hops to a random nearby point every PossessionHopInterval.
func (s *BehaviorSystem) possessed(id types.EntityID, dt float64) {
	b := &s.world.Mortals[id].Behavior
	if b.Stage == component.StageWaiting {
		b.Timer -= dt
		if b.Timer > 0 {
			return
		}
	}
	candidate := s.rng.PointInRadius(s.world.PositionOf(id), config.PossessionHopRadius)
	point, ok := s.nav.SamplePosition(candidate, config.PossessionHopRadius)
	b.Stage = component.StageWaiting
	if !ok {
		b.Timer = config.PossessionRetryDelay
		return
	}
	b.Target = point
	s.nav.SetDestination(id, point)
	b.Timer = config.PossessionHopInterval
}

func (s *BehaviorSystem) fleeToExit(id types.EntityID, m *component.Mortal, dt float64) {
	b := &m.Behavior
	if s.world.PositionOf(id).Distance(m.Exit) <= config.ExitReachDistance {
		s.depart(id, m)
		return
	}
	b.Timer -= dt
	if b.Timer <= 0 {
		s.nav.SetDestination(id, m.Exit)
		b.Timer = config.FleeTrackInterval
	}
}

func (s *BehaviorSystem) depart(id types.EntityID, m *component.Mortal) {
	m.IsActive = false
	m.Phase = component.PhaseDeparted
	m.SetBehavior(component.BehaviorGone)
	m.Status.Clear()
	s.nav.Stop(id)
	syncAgent(s.world, id)
	s.pool.Gain(config.FleeReward)

	log.Info().Str("mortal", m.Name).Int("reward", config.FleeReward).Msg("fled the building")
	s.events.Emit(event.MortalDeparted{Mortal: id, Name: m.Name, Reward: config.FleeReward})
}

// arrived mirrors the agent check "path ready and within ArriveDistance".
func (s *BehaviorSystem) arrived(id types.EntityID) bool {
	return !s.nav.IsPathPending(id) && s.nav.RemainingDistance(id) <= config.ArriveDistance
}
