// internal/system/utils.go
package system

import (
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

// syncAgent переносит скорость и возможность движения смертного в его агента.
// Вызывается после любого изменения статусов, страха или фазы.
func syncAgent(w *entity.World, id types.EntityID) {
	m, agent := w.Mortals[id], w.Agents[id]
	if m == nil || agent == nil {
		return
	}
	speed := m.WalkSpeed
	if m.HasFled {
		speed = m.FleeSpeed
	}
	agent.Speed = speed * m.Status.SpeedMultiplier()
	agent.Stopped = !m.IsActive || m.MovementBlocked()
}
