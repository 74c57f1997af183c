// internal/component/mortal.go
package component

import (
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

// MortalPhase is the main track of the mortal state machine.
type MortalPhase int

const (
	PhaseWandering MortalPhase = iota
	PhaseAlarmed               // страх растёт, но порог не достигнут
	PhaseFleeing
	PhaseDeparted
)

func (p MortalPhase) String() string {
	switch p {
	case PhaseWandering:
		return "Wandering"
	case PhaseAlarmed:
		return "Alarmed"
	case PhaseFleeing:
		return "Fleeing"
	case PhaseDeparted:
		return "Departed"
	}
	return "Unknown"
}

// BehaviorKind — текущее поведение смертного. Отмена поведения — это
// перезапись Behavior, а не остановка выполняющейся процедуры.
type BehaviorKind int

const (
	// BehaviorHalted: nothing running; the selector starts wandering when the
	// mortal is free to move again.
	BehaviorHalted BehaviorKind = iota
	BehaviorPatrol
	BehaviorRandomWander
	BehaviorPossessed
	BehaviorFleeToExit
	BehaviorFleeAway
	BehaviorGone
)

func (k BehaviorKind) String() string {
	switch k {
	case BehaviorHalted:
		return "Halted"
	case BehaviorPatrol:
		return "Patrol"
	case BehaviorRandomWander:
		return "RandomWander"
	case BehaviorPossessed:
		return "Possessed"
	case BehaviorFleeToExit:
		return "FleeToExit"
	case BehaviorFleeAway:
		return "FleeAway"
	case BehaviorGone:
		return "Gone"
	}
	return "Unknown"
}

// BehaviorStage is the resume point inside a behavior.
type BehaviorStage int

const (
	StageStart   BehaviorStage = iota
	StageMoving                // ждём прибытия в точку
	StageWaiting               // ждём истечения таймера
)

// Behavior holds the explicit state of the active timed behavior.
type Behavior struct {
	Kind   BehaviorKind
	Stage  BehaviorStage
	Timer  float64
	Target types.Vec3
}

// Mortal представляет смертного, которого пугают призраки.
type Mortal struct {
	Name           string
	Category       defs.MortalCategory
	Fear           float64
	MaxFear        float64
	ScareThreshold float64
	FearDecayRate  float64
	FearMultiplier float64
	FleeSpeed      float64
	WalkSpeed      float64
	WanderRadius   float64
	WaitTime       float64
	Waypoints      []types.Vec3
	NextWaypoint   int

	Phase    MortalPhase
	HasFled  bool
	IsActive bool
	Status   StatusClock
	// ReactionTimer — пауза после испуга; пока > 0, смертный стоит.
	ReactionTimer float64
	Behavior      Behavior
	// Exit is the exit chosen at flee time, valid for BehaviorFleeToExit.
	Exit types.Vec3
}

// NewMortal builds a mortal from its category definition.
func NewMortal(name string, def defs.MortalDefinition, waypoints []types.Vec3) *Mortal {
	return &Mortal{
		Name:           name,
		Category:       def.Category,
		MaxFear:        def.MaxFear,
		ScareThreshold: def.ScareThreshold,
		FearDecayRate:  def.FearDecayRate,
		FearMultiplier: def.FearMultiplier,
		FleeSpeed:      def.FleeSpeed,
		WalkSpeed:      def.WalkSpeed(),
		WanderRadius:   def.WanderRadius,
		WaitTime:       def.WaitTime,
		Waypoints:      waypoints,
		Phase:          PhaseWandering,
		IsActive:       true,
		Status:         NewStatusClock(),
	}
}

func (m *Mortal) IsStunned() bool   { return m.Status.Active(defs.StatusStun) }
func (m *Mortal) IsFrozen() bool    { return m.Status.Active(defs.StatusFreeze) }
func (m *Mortal) IsPossessed() bool { return m.Status.Active(defs.StatusPossess) }
func (m *Mortal) IsSlowed() bool    { return m.Status.Active(defs.StatusSlow) }
func (m *Mortal) IsFleeing() bool   { return m.Phase == PhaseFleeing }

// FearRatio is Fear relative to MaxFear.
func (m *Mortal) FearRatio() float64 {
	if m.MaxFear <= 0 {
		return 0
	}
	return m.Fear / m.MaxFear
}

// AcceptsFear reports whether fear and status updates still apply.
func (m *Mortal) AcceptsFear() bool {
	return m.IsActive && !m.HasFled
}

// MovementBlocked is true while an overlay holds the mortal in place.
func (m *Mortal) MovementBlocked() bool {
	return m.IsStunned() || m.IsFrozen() || m.ReactionTimer > 0
}

// AddFear applies the category multiplier and clamps to [0, MaxFear].
// It returns the fear actually gained.
func (m *Mortal) AddFear(amount float64) float64 {
	before := m.Fear
	m.Fear = clamp(m.Fear+amount*m.FearMultiplier, 0, m.MaxFear)
	return m.Fear - before
}

// DecayFear lowers fear toward zero at FearDecayRate per second.
func (m *Mortal) DecayFear(dt float64) {
	if m.Fear <= 0 {
		return
	}
	m.Fear = clamp(m.Fear-m.FearDecayRate*dt, 0, m.MaxFear)
}

// SetBehavior overwrites the running behavior, cancelling the previous one.
func (m *Mortal) SetBehavior(kind BehaviorKind) {
	m.Behavior = Behavior{Kind: kind, Stage: StageStart}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
