// internal/component/game_state.go
package component

import "go-haunted-house/internal/defs"

// MissionStatus — состояние миссии уровня.
type MissionStatus int

const (
	MissionActive MissionStatus = iota
	MissionCompleted
	MissionFailed
)

// Objective tracks progress of one mission goal.
type Objective struct {
	Def       defs.ObjectiveDefinition
	Current   int
	Completed bool
}

// SetProgress stores value capped at the target and reports whether the
// objective completed with this call.
func (o *Objective) SetProgress(value int) bool {
	o.Current = min(value, o.Def.Target)
	if !o.Completed && o.Current >= o.Def.Target {
		o.Completed = true
		return true
	}
	return false
}

// Progress returns completion in [0, 1].
func (o *Objective) Progress() float64 {
	if o.Def.Target <= 0 {
		return 0
	}
	return float64(o.Current) / float64(o.Def.Target)
}

// Mission — компонент для хранения состояния миссии.
type Mission struct {
	Name          string
	Description   string
	Objectives    []*Objective
	Status        MissionStatus
	TimeLimit     float64 // 0 — без ограничения
	Elapsed       float64
	CheckTimer    float64
	Score         int
	FailReason    string
	LevelComplete bool
}
