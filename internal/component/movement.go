// component/movement.go
package component

import "go-haunted-house/internal/types"

// Position — компонент позиции
type Position struct {
	types.Vec3
}

// NavAgent — компонент навигации: цель, скорость и флаг остановки.
// Движение к цели выполняет NavigationSystem.
type NavAgent struct {
	Destination    types.Vec3
	HasDestination bool
	Speed          float64
	Stopped        bool
	// PathPending is true between SetDestination and the next navigation step.
	PathPending bool
}
