package system

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

func TestExpiredPossessionDecaysInSameStep(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	m := f.w.Mortals[id]
	m.Fear = 50
	f.sim.Status.Possess(id, 1)

	f.sim.Tick(1)

	assert.False(t, m.IsPossessed())
	assert.Equal(t, 45.0, m.Fear)
}

func TestFleeCheckSeesDecayedFear(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	m := f.w.Mortals[id]
	m.Fear = 81

	f.sim.Tick(0.5)

	assert.Equal(t, 78.5, m.Fear)
	assert.False(t, m.HasFled)
}

func TestTickAdvancesClockAndRegen(t *testing.T) {
	f := newFixture()
	g := f.ghost(defs.Poltergeist, types.Vec3{}, 10)

	f.sim.Tick(0.5)
	f.sim.Tick(0)
	f.sim.Tick(-1)

	assert.Equal(t, 0.5, f.w.GameTime)
	assert.Equal(t, 11.0, f.w.Ghosts[g].Plasm)
}

func TestPulseRingsExpire(t *testing.T) {
	f := newFixture()
	SpawnPulse(f.w, types.Vec3{}, 4, color.RGBA{})
	f.run(0.2, 0.1)
	for id := range f.w.Pulses {
		assert.Greater(t, f.w.Renderables[id].Radius, float32(0))
	}
	f.run(0.3, 0.1)
	assert.Empty(t, f.w.Pulses)
	assert.Empty(t, f.w.Renderables)
}
