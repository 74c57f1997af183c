// internal/entity/world.go
package entity

import (
	"slices"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/types"
)

// World — хранилище компонентов уровня. Все сущности принадлежат миру;
// ссылки между сущностями хранятся как EntityID.
type World struct {
	GameTime      float64
	NextID        types.EntityID
	Positions     map[types.EntityID]*component.Position
	Agents        map[types.EntityID]*component.NavAgent
	Renderables   map[types.EntityID]*component.Renderable
	Mortals       map[types.EntityID]*component.Mortal
	Ghosts        map[types.EntityID]*component.Ghost
	Anchors       map[types.EntityID]*component.Anchor
	Interactables map[types.EntityID]*component.Interactable
	Haunts        map[types.EntityID]*component.Haunt
	Pickups       map[types.EntityID]*component.PlasmPickup
	FearFlashes   map[types.EntityID]*component.FearFlash
	Pulses        map[types.EntityID]*component.PulseRing
	// Exits keep placement order; nearest-exit ties resolve by this order.
	Exits    []component.ExitMarker
	Pool     *component.PlasmPool
	Mission  *component.Mission
	Selected types.EntityID
	// Viewer — точка наблюдателя (камеры); бегство без выхода — прочь от неё.
	Viewer   types.Vec3
	Min, Max types.Vec3
}

func NewWorld() *World {
	return &World{
		NextID:        1,
		Positions:     make(map[types.EntityID]*component.Position),
		Agents:        make(map[types.EntityID]*component.NavAgent),
		Renderables:   make(map[types.EntityID]*component.Renderable),
		Mortals:       make(map[types.EntityID]*component.Mortal),
		Ghosts:        make(map[types.EntityID]*component.Ghost),
		Anchors:       make(map[types.EntityID]*component.Anchor),
		Interactables: make(map[types.EntityID]*component.Interactable),
		Haunts:        make(map[types.EntityID]*component.Haunt),
		Pickups:       make(map[types.EntityID]*component.PlasmPickup),
		FearFlashes:   make(map[types.EntityID]*component.FearFlash),
		Pulses:        make(map[types.EntityID]*component.PulseRing),
		Pool:          &component.PlasmPool{},
		Mission:       &component.Mission{},
	}
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// PositionOf returns the entity position, or the origin when it has none.
func (w *World) PositionOf(id types.EntityID) types.Vec3 {
	if pos, ok := w.Positions[id]; ok {
		return pos.Vec3
	}
	return types.Vec3{}
}

// MortalsWithinRange returns active mortals whose distance to position is at
// most radius. Callers must not depend on the order of the result.
func (w *World) MortalsWithinRange(position types.Vec3, radius float64) []types.EntityID {
	var ids []types.EntityID
	for id, m := range w.Mortals {
		if !m.IsActive {
			continue
		}
		if w.withinRange(id, position, radius) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// AnchorsWithinRange returns anchors whose distance to position is at most radius.
func (w *World) AnchorsWithinRange(position types.Vec3, radius float64) []types.EntityID {
	var ids []types.EntityID
	for id := range w.Anchors {
		if w.withinRange(id, position, radius) {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

func (w *World) withinRange(id types.EntityID, position types.Vec3, radius float64) bool {
	pos, ok := w.Positions[id]
	if !ok || radius < 0 {
		return false
	}
	return pos.DistanceSq(position) <= radius*radius
}

// SortedMortalIDs returns mortal IDs in creation order.
func (w *World) SortedMortalIDs() []types.EntityID {
	return SortedKeys(w.Mortals)
}

// SortedGhostIDs returns ghost IDs in creation order.
func (w *World) SortedGhostIDs() []types.EntityID {
	return SortedKeys(w.Ghosts)
}

// SortedAnchorIDs returns anchor IDs in creation order.
func (w *World) SortedAnchorIDs() []types.EntityID {
	return SortedKeys(w.Anchors)
}

// SortedKeys returns the IDs of m in creation order.
func SortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// FindMortal returns the first mortal (in creation order) named name.
func (w *World) FindMortal(name string) (types.EntityID, bool) {
	for _, id := range w.SortedMortalIDs() {
		if w.Mortals[id].Name == name {
			return id, true
		}
	}
	return types.NoEntity, false
}

// Contains reports whether p lies inside the level floor (XZ plane).
func (w *World) Contains(p types.Vec3) bool {
	return p.X >= w.Min.X && p.X <= w.Max.X && p.Z >= w.Min.Z && p.Z <= w.Max.Z
}
