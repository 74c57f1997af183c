// internal/interfaces/game_context.go
package interfaces

import "go-haunted-house/internal/types"

// SpatialQuery finds entities around a world point. Distances are 3D and the
// radius is inclusive.
type SpatialQuery interface {
	MortalsWithinRange(position types.Vec3, radius float64) []types.EntityID
	AnchorsWithinRange(position types.Vec3, radius float64) []types.EntityID
}

// Navigator moves agents toward destinations over time.
type Navigator interface {
	SetDestination(id types.EntityID, destination types.Vec3)
	RemainingDistance(id types.EntityID) float64
	IsPathPending(id types.EntityID) bool
	Stop(id types.EntityID)
	// SamplePosition returns the nearest walkable point within radius of p.
	SamplePosition(p types.Vec3, radius float64) (types.Vec3, bool)
}

// ResourcePool is the player's shared plasm store.
type ResourcePool interface {
	Spend(amount int) bool
	Gain(amount int)
	Current() int
}
