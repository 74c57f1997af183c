package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

func TestPowerRequiresBinding(t *testing.T) {
	f := newFixture()
	id := f.ghost(defs.Poltergeist, types.Vec3{}, 100)
	assert.False(t, f.sim.Ghosts.CanUsePower(id, 1))
	assert.False(t, f.sim.Ghosts.ActivatePrimary(id))
	assert.Equal(t, 100.0, f.w.Ghosts[id].Plasm)
}

func TestFirstPowerUseIsNotOnCooldown(t *testing.T) {
	f := newFixture()
	ghostID, _ := f.bound(defs.Poltergeist, defs.Generic, types.Vec3{})
	assert.True(t, f.sim.Ghosts.ActivatePrimary(ghostID))
}

func TestDoubleActivationWithinCooldownFails(t *testing.T) {
	f := newFixture()
	ghostID, _ := f.bound(defs.Banshee, defs.Generic, types.Vec3{})
	g := f.w.Ghosts[ghostID]

	require.True(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	plasm := g.Plasm
	f.sim.Tick(1)
	plasm += g.RegenRate * 1

	assert.False(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	assert.InDelta(t, plasm, g.Plasm, 1e-9)
	assert.Equal(t, 1, f.rec.count(event.PowerActivatedType))
}

func TestCooldownIsSharedAcrossAbilities(t *testing.T) {
	f := newFixture()
	ghostID, _ := f.bound(defs.Specter, defs.Generic, types.Vec3{})
	g := f.w.Ghosts[ghostID]

	require.True(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	assert.False(t, f.sim.Ghosts.ActivateSecondary(ghostID))
	assert.InDelta(t, g.PowerCooldown, g.CooldownRemaining(f.w.GameTime), 1e-9)

	f.run(2, 0.5)
	assert.True(t, f.sim.Ghosts.ActivateSecondary(ghostID))
	assert.False(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	assert.Equal(t, f.w.GameTime, g.Secondary.LastUsed)
}

func TestInsufficientPlasmFailsWithoutMutation(t *testing.T) {
	f := newFixture()
	ghostID, _ := f.bound(defs.Phantom, defs.Generic, types.Vec3{})
	g := f.w.Ghosts[ghostID]
	g.SetPlasm(11)

	assert.False(t, f.sim.Ghosts.ActivateSecondary(ghostID))
	assert.Equal(t, 11.0, g.Plasm)
	assert.True(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	assert.Equal(t, 3.0, g.Plasm)
}

func TestPowerUsesAnchorBonusAndRange(t *testing.T) {
	f := newFixture()
	ghostID, _ := f.bound(defs.Poltergeist, defs.Furniture, types.Vec3{})
	near := f.mortal(defs.Adult, types.Vec3{X: 3})
	edge := f.mortal(defs.Skeptic, types.Vec3{X: -5.5})

	require.True(t, f.sim.Ghosts.ActivatePrimary(ghostID))
	assert.Equal(t, 30.0, f.w.Mortals[near].Fear)
	assert.Zero(t, f.w.Mortals[edge].Fear)

	f.w.GameTime += 2
	require.True(t, f.sim.Ghosts.ActivateSecondary(ghostID))
	// 35 * 1.5 bonus * 0.5 skeptic
	assert.InDelta(t, 26.25, f.w.Mortals[edge].Fear, 1e-9)
	assert.Len(t, f.w.Pulses, 2)
}

func TestPlasmStaysInBounds(t *testing.T) {
	f := newFixture()
	rng := utils.NewPRNGService(5)
	ghostID, _ := f.bound(defs.Wraith, defs.Generic, types.Vec3{})
	g := f.w.Ghosts[ghostID]
	for i := 0; i < 300; i++ {
		switch rng.Intn(3) {
		case 0:
			f.sim.Ghosts.ActivatePrimary(ghostID)
		case 1:
			f.sim.Ghosts.ActivateSecondary(ghostID)
		default:
			f.sim.Ghosts.GainPlasm(ghostID, rng.Range(0, 40))
		}
		f.sim.Tick(rng.Range(0.05, 1))
		require.GreaterOrEqual(t, g.Plasm, 0.0)
		require.LessOrEqual(t, g.Plasm, g.MaxPlasm)
	}
}

func TestRegenerationIsCappedAndRunsUnbound(t *testing.T) {
	f := newFixture()
	id := f.ghost(defs.Poltergeist, types.Vec3{}, 99)
	f.sim.Ghosts.Regenerate(0.25)
	assert.Equal(t, 99.5, f.w.Ghosts[id].Plasm)
	f.sim.Ghosts.Regenerate(10)
	assert.Equal(t, 100.0, f.w.Ghosts[id].Plasm)
}

func TestSelectionKeepsSingleSelectedGhost(t *testing.T) {
	f := newFixture()
	a := f.ghost(defs.Poltergeist, types.Vec3{}, 50)
	b := f.ghost(defs.Banshee, types.Vec3{}, 50)

	f.sim.Ghosts.Select(a)
	f.sim.Ghosts.Select(b)
	assert.False(t, f.w.Ghosts[a].Selected)
	assert.True(t, f.w.Ghosts[b].Selected)
	assert.Equal(t, b, f.w.Selected)

	f.sim.Ghosts.Select(types.NoEntity)
	assert.False(t, f.w.Ghosts[b].Selected)
	assert.Equal(t, 2, f.rec.count(event.GhostSelectedType))
	assert.Equal(t, 2, f.rec.count(event.GhostDeselectedType))

	f.sim.Ghosts.Select(types.EntityID(999))
	assert.Equal(t, types.NoEntity, f.w.Selected)
}

func TestSpendPlasm(t *testing.T) {
	f := newFixture()
	id := f.ghost(defs.Poltergeist, types.Vec3{}, 5)
	assert.False(t, f.sim.Ghosts.SpendPlasm(id, 6))
	assert.True(t, f.sim.Ghosts.SpendPlasm(id, 5))
	assert.Zero(t, f.w.Ghosts[id].Plasm)
}
