// internal/event/types.go
package event

import "go-haunted-house/internal/types"

// Type — тип события
type Type int

const (
	PlasmChangedType Type = iota
	GhostSelectedType
	GhostDeselectedType
	GhostBoundType
	GhostUnboundType
	PowerActivatedType
	AnchorTriggeredType
	MortalFearedType
	MortalFledType
	MortalDepartedType
	HauntStartedType
	PlasmCollectedType
	ObjectiveCompletedType
	LevelCompleteType
	MissionCompleteType
	MissionFailedType
	typeCount
)

var typeNames = [...]string{
	"PlasmChanged", "GhostSelected", "GhostDeselected", "GhostBound",
	"GhostUnbound", "PowerActivated", "AnchorTriggered", "MortalFeared",
	"MortalFled", "MortalDeparted", "HauntStarted", "PlasmCollected",
	"ObjectiveCompleted", "LevelComplete", "MissionComplete", "MissionFailed",
}

func (t Type) String() string {
	if t < 0 || t >= typeCount {
		return "Unknown"
	}
	return typeNames[t]
}

// AllTypes lists every event type in declaration order.
func AllTypes() []Type {
	out := make([]Type, 0, typeCount)
	for t := Type(0); t < typeCount; t++ {
		out = append(out, t)
	}
	return out
}

// Payload is implemented by every event payload struct.
type Payload interface {
	EventType() Type
}

// PlasmChanged — изменился запас плазмы призрака.
type PlasmChanged struct {
	Ghost types.EntityID
	Plasm float64
	Max   float64
}

type GhostSelected struct{ Ghost types.EntityID }

type GhostDeselected struct{ Ghost types.EntityID }

type GhostBound struct {
	Ghost, Anchor types.EntityID
}

type GhostUnbound struct {
	Ghost, Anchor types.EntityID
}

// PowerActivated — призрак применил силу; Affected — число задетых смертных.
type PowerActivated struct {
	Ghost     types.EntityID
	Power     string
	Secondary bool
	Affected  int
}

type AnchorTriggered struct {
	Anchor   types.EntityID
	Affected int
}

type MortalFeared struct {
	Mortal types.EntityID
	Amount float64 // фактический прирост после множителя
	Fear   float64
}

type MortalFled struct {
	Mortal types.EntityID
	Name   string
}

type MortalDeparted struct {
	Mortal types.EntityID
	Name   string
	Reward int
}

type HauntStarted struct {
	Object types.EntityID
	Ghost  types.EntityID
	Effect string
}

type PlasmCollected struct {
	Ghost  types.EntityID
	Amount float64
}

type ObjectiveCompleted struct {
	Name     string
	Optional bool
}

type LevelComplete struct{}

type MissionComplete struct{ Score int }

type MissionFailed struct{ Reason string }

func (PlasmChanged) EventType() Type       { return PlasmChangedType }
func (GhostSelected) EventType() Type      { return GhostSelectedType }
func (GhostDeselected) EventType() Type    { return GhostDeselectedType }
func (GhostBound) EventType() Type         { return GhostBoundType }
func (GhostUnbound) EventType() Type       { return GhostUnboundType }
func (PowerActivated) EventType() Type     { return PowerActivatedType }
func (AnchorTriggered) EventType() Type    { return AnchorTriggeredType }
func (MortalFeared) EventType() Type       { return MortalFearedType }
func (MortalFled) EventType() Type         { return MortalFledType }
func (MortalDeparted) EventType() Type     { return MortalDepartedType }
func (HauntStarted) EventType() Type       { return HauntStartedType }
func (PlasmCollected) EventType() Type     { return PlasmCollectedType }
func (ObjectiveCompleted) EventType() Type { return ObjectiveCompletedType }
func (LevelComplete) EventType() Type      { return LevelCompleteType }
func (MissionComplete) EventType() Type    { return MissionCompleteType }
func (MissionFailed) EventType() Type      { return MissionFailedType }
