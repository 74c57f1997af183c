// internal/system/mission.go
package system

import (
	"math"

	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
)

// MissionSystem отслеживает цели миссии, победу и поражение по времени.
type MissionSystem struct {
	world  *entity.World
	events *event.Dispatcher
}

func NewMissionSystem(world *entity.World, events *event.Dispatcher) *MissionSystem {
	return &MissionSystem{world: world, events: events}
}

// Start resets the mission to the given objectives.
func (s *MissionSystem) Start(name, description string, objectives []defs.ObjectiveDefinition, timeLimit float64) {
	m := &component.Mission{Name: name, Description: description, TimeLimit: timeLimit}
	for _, def := range objectives {
		m.Objectives = append(m.Objectives, &component.Objective{Def: def})
	}
	s.world.Mission = m
	log.Info().Str("mission", name).Int("objectives", len(objectives)).Float64("time_limit", timeLimit).Msg("mission started")
}

// Update advances mission time, evaluates objectives once per
// ObjectiveInterval and fails the mission when its time runs out.
func (s *MissionSystem) Update(deltaTime float64) {
	m := s.world.Mission
	if m.Status != component.MissionActive {
		return
	}
	m.Elapsed += deltaTime
	m.CheckTimer += deltaTime
	if m.CheckTimer >= config.ObjectiveInterval {
		m.CheckTimer -= config.ObjectiveInterval
		s.Evaluate()
	}
	if m.Status == component.MissionActive && m.TimeLimit > 0 && m.Elapsed >= m.TimeLimit {
		s.Fail("time limit reached")
	}
}

// Evaluate refreshes progress of every open objective, then completes the
// mission when no mandatory objective is left. A mission without objectives
// never completes.
func (s *MissionSystem) Evaluate() {
	m := s.world.Mission
	if m.Status != component.MissionActive || len(m.Objectives) == 0 {
		return
	}
	for _, o := range m.Objectives {
		if o.Completed {
			continue
		}
		if o.SetProgress(s.progress(o.Def)) {
			s.objectiveCompleted(o)
		}
	}
	for _, o := range m.Objectives {
		if !o.Def.Optional && !o.Completed {
			return
		}
	}
	s.Complete()
}

func (s *MissionSystem) progress(def defs.ObjectiveDefinition) int {
	switch def.Kind {
	case defs.ObjectiveScareAll:
		scared := 0
		for _, mortal := range s.world.Mortals {
			if scaredEnough(mortal) {
				scared++
			}
		}
		return scared
	case defs.ObjectiveScareSpecific:
		if id, ok := s.world.FindMortal(def.MortalName); ok && scaredEnough(s.world.Mortals[id]) {
			return 1
		}
		return 0
	case defs.ObjectiveCollectPlasm:
		total := 0
		for _, g := range s.world.Ghosts {
			total += int(math.Round(g.Plasm))
		}
		return total
	case defs.ObjectiveSurviveTime:
		return int(math.Round(s.world.Mission.Elapsed))
	}
	return 0
}

func scaredEnough(m *component.Mortal) bool {
	return m.Fear > config.ScaredFearLevel || m.HasFled
}

func (s *MissionSystem) objectiveCompleted(o *component.Objective) {
	log.Info().Str("objective", o.Def.Name).Bool("optional", o.Def.Optional).Msg("objective completed")
	s.events.Emit(event.ObjectiveCompleted{Name: o.Def.Name, Optional: o.Def.Optional})
}

// Complete finishes the mission and computes its score.
func (s *MissionSystem) Complete() {
	m := s.world.Mission
	if m.Status != component.MissionActive {
		return
	}
	m.Status = component.MissionCompleted
	m.Score = s.score()
	log.Info().Int("score", m.Score).Msg("mission completed")
	s.events.Emit(event.MissionComplete{Score: m.Score})
}

// Fail ends the mission. No-op once it is over.
func (s *MissionSystem) Fail(reason string) {
	m := s.world.Mission
	if m.Status != component.MissionActive {
		return
	}
	m.Status = component.MissionFailed
	m.FailReason = reason
	log.Info().Str("reason", reason).Msg("mission failed")
	s.events.Emit(event.MissionFailed{Reason: reason})
}

func (s *MissionSystem) score() int {
	score := config.BaseMissionScore
	for _, o := range s.world.Mission.Objectives {
		if !o.Completed {
			continue
		}
		score += config.ObjectiveScoreBonus
		if o.Def.Optional {
			score += config.OptionalScoreBonus
		}
	}
	return score
}

// CheckWinCondition marks the level complete once every mortal has fled.
func (s *MissionSystem) CheckWinCondition() bool {
	m := s.world.Mission
	if m.LevelComplete || len(s.world.Mortals) == 0 {
		return m.LevelComplete
	}
	for _, mortal := range s.world.Mortals {
		if !mortal.HasFled {
			return false
		}
	}
	m.LevelComplete = true
	log.Info().Msg("level complete")
	s.events.Emit(event.LevelComplete{})
	return true
}
