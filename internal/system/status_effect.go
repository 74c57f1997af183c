// internal/system/status_effect.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

// StatusEffectSystem управляет наложением и истечением оверлеев смертных
// (оглушение, заморозка, замедление, одержимость).
type StatusEffectSystem struct {
	world *entity.World
}

func NewStatusEffectSystem(world *entity.World) *StatusEffectSystem {
	return &StatusEffectSystem{world: world}
}

// Update ticks every countdown and applies the expiry transitions.
func (s *StatusEffectSystem) Update(deltaTime float64) {
	for _, id := range s.world.SortedMortalIDs() {
		m := s.world.Mortals[id]
		if !m.IsActive {
			continue
		}
		if m.ReactionTimer > 0 {
			m.ReactionTimer = max(0, m.ReactionTimer-deltaTime)
		}
		expired := m.Status.Tick(deltaTime)
		if expired == 0 {
			syncAgent(s.world, id)
			continue
		}
		if expired.Has(defs.StatusPossess) && m.Behavior.Kind == component.BehaviorPossessed {
			// управление возвращается селектору поведения
			m.SetBehavior(component.BehaviorHalted)
		}
		log.Debug().Str("mortal", m.Name).Uint8("expired", uint8(expired)).Msg("status expired")
		syncAgent(s.world, id)
	}
}

// Apply starts the overlay described by def on mortal id.
func (s *StatusEffectSystem) Apply(id types.EntityID, def defs.StatusEffectDef) {
	switch def.Kind {
	case defs.StatusStun:
		s.Stun(id, def.Duration)
	case defs.StatusFreeze:
		s.Freeze(id, def.Duration)
	case defs.StatusSlow:
		s.Slow(id, def.Multiplier, def.Duration)
	case defs.StatusPossess:
		s.Possess(id, def.Duration)
	}
}

// Stun stops the mortal and cancels its wander for duration seconds.
func (s *StatusEffectSystem) Stun(id types.EntityID, duration float64) {
	s.hold(id, defs.StatusStun, duration)
}

// Freeze behaves like Stun with its own countdown.
func (s *StatusEffectSystem) Freeze(id types.EntityID, duration float64) {
	s.hold(id, defs.StatusFreeze, duration)
}

func (s *StatusEffectSystem) hold(id types.EntityID, kind defs.StatusKind, duration float64) {
	m := s.target(id, duration)
	if m == nil {
		return
	}
	m.Status.Start(kind, duration)
	if m.Behavior.Kind != component.BehaviorPossessed {
		m.SetBehavior(component.BehaviorHalted)
	}
	syncAgent(s.world, id)
	log.Debug().Str("mortal", m.Name).Stringer("status", kind).Float64("duration", duration).Msg("status applied")
}

// Slow scales movement speed by multiplier without interrupting behavior.
func (s *StatusEffectSystem) Slow(id types.EntityID, multiplier, duration float64) {
	m := s.target(id, duration)
	if m == nil || multiplier < 0 {
		return
	}
	m.Status.StartSlow(multiplier, duration)
	syncAgent(s.world, id)
}

// Possess hands the mortal to the erratic possession behavior until expiry.
func (s *StatusEffectSystem) Possess(id types.EntityID, duration float64) {
	m := s.target(id, duration)
	if m == nil {
		return
	}
	m.Status.Start(defs.StatusPossess, duration)
	if m.Behavior.Kind != component.BehaviorPossessed {
		m.SetBehavior(component.BehaviorPossessed)
	}
	syncAgent(s.world, id)
	log.Debug().Str("mortal", m.Name).Float64("duration", duration).Msg("possessed")
}

func (s *StatusEffectSystem) target(id types.EntityID, duration float64) *component.Mortal {
	m, ok := s.world.Mortals[id]
	if !ok || !m.AcceptsFear() || duration <= 0 {
		return nil
	}
	return m
}
