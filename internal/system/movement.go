// internal/system/movement.go
package system

import (
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

// NavigationSystem двигает агентов к их цели по прямой. Реализует
// interfaces.Navigator; поиск пути на уровне не моделируется.
type NavigationSystem struct {
	world *entity.World
}

func NewNavigationSystem(world *entity.World) *NavigationSystem {
	return &NavigationSystem{world: world}
}

func (s *NavigationSystem) Update(deltaTime float64) {
	for id, agent := range s.world.Agents {
		agent.PathPending = false
		if agent.Stopped || !agent.HasDestination {
			continue
		}
		pos, ok := s.world.Positions[id]
		if !ok {
			continue
		}
		delta := agent.Destination.Sub(pos.Vec3)
		dist := delta.Length()
		moveDistance := agent.Speed * deltaTime
		if dist <= moveDistance {
			pos.Vec3 = agent.Destination
		} else {
			pos.Vec3 = pos.Add(delta.Scale(moveDistance / dist))
		}
	}
}

func (s *NavigationSystem) SetDestination(id types.EntityID, destination types.Vec3) {
	agent, ok := s.world.Agents[id]
	if !ok {
		return
	}
	agent.Destination = destination
	agent.HasDestination = true
	agent.PathPending = true
}

// RemainingDistance is zero for agents without a destination.
func (s *NavigationSystem) RemainingDistance(id types.EntityID) float64 {
	agent, ok := s.world.Agents[id]
	if !ok || !agent.HasDestination {
		return 0
	}
	return s.world.PositionOf(id).Distance(agent.Destination)
}

func (s *NavigationSystem) IsPathPending(id types.EntityID) bool {
	agent, ok := s.world.Agents[id]
	return ok && agent.PathPending
}

// SamplePosition clamps p to the level floor. It fails when the nearest
// floor point is farther than radius.
func (s *NavigationSystem) SamplePosition(p types.Vec3, radius float64) (types.Vec3, bool) {
	w := s.world
	if w.Min == w.Max || w.Contains(p) {
		return p, true
	}
	clamped := types.Vec3{
		X: min(max(p.X, w.Min.X), w.Max.X),
		Y: p.Y,
		Z: min(max(p.Z, w.Min.Z), w.Max.Z),
	}
	if clamped.Distance(p) > radius {
		return types.Vec3{}, false
	}
	return clamped, true
}

// Stop clears the agent destination and any pending path.
func (s *NavigationSystem) Stop(id types.EntityID) {
	if agent, ok := s.world.Agents[id]; ok {
		agent.HasDestination = false
		agent.PathPending = false
	}
}
