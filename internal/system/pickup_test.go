package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

func TestPickupCollectedOnce(t *testing.T) {
	f := newFixture()
	ghostID := f.ghost(defs.Phantom, types.Vec3{}, 50)
	id := f.w.NewEntity()
	f.w.Positions[id] = &component.Position{Vec3: types.Vec3{X: 1}}
	f.w.Pickups[id] = &component.PlasmPickup{Amount: 25, Radius: 1.5}
	f.w.Renderables[id] = &component.Renderable{}

	f.sim.Pickups.Update()
	f.sim.Pickups.Update()

	assert.True(t, f.w.Pickups[id].Collected)
	assert.Equal(t, 75.0, f.w.Ghosts[ghostID].Plasm)
	assert.NotContains(t, f.w.Renderables, id)
	assert.Equal(t, 1, f.rec.count(event.PlasmCollectedType))
}

func TestPickupOutOfRangeStays(t *testing.T) {
	f := newFixture()
	f.ghost(defs.Phantom, types.Vec3{}, 50)
	id := f.w.NewEntity()
	f.w.Positions[id] = &component.Position{Vec3: types.Vec3{X: 3}}
	f.w.Pickups[id] = &component.PlasmPickup{Amount: 25, Radius: 1.5}

	f.sim.Pickups.Update()
	assert.False(t, f.w.Pickups[id].Collected)
}
