package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

func TestFreezeExpiresAfterDuration(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Freeze(id, 2)
	m := f.w.Mortals[id]
	require.True(t, m.IsFrozen())
	assert.True(t, f.w.Agents[id].Stopped)

	f.run(1.9, 0.1)
	assert.True(t, m.IsFrozen())
	assert.True(t, f.w.Agents[id].Stopped)

	f.run(0.2, 0.1)
	assert.False(t, m.IsFrozen())
	assert.False(t, f.w.Agents[id].Stopped)
}

func TestRestartOverridesCountdown(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Stun(id, 2)
	f.run(1, 0.5)
	f.sim.Status.Stun(id, 0.5)

	assert.InDelta(t, 0.5, f.w.Mortals[id].Status.Remaining(defs.StatusStun), 1e-9)
	f.run(0.6, 0.1)
	assert.False(t, f.w.Mortals[id].IsStunned())
}

func TestStunCancelsWanderButSlowDoesNot(t *testing.T) {
	f := newFixture()
	slowed := f.mortal(defs.Adult, types.Vec3{})
	stunned := f.mortal(defs.Adult, types.Vec3{X: 30})
	f.w.Mortals[slowed].SetBehavior(component.BehaviorPatrol)
	f.w.Mortals[stunned].SetBehavior(component.BehaviorPatrol)

	f.sim.Status.Slow(slowed, 0.5, 3)
	f.sim.Status.Stun(stunned, 1)

	assert.Equal(t, component.BehaviorPatrol, f.w.Mortals[slowed].Behavior.Kind)
	assert.InDelta(t, f.w.Mortals[slowed].WalkSpeed*0.5, f.w.Agents[slowed].Speed, 1e-9)
	assert.False(t, f.w.Agents[slowed].Stopped)

	assert.Equal(t, component.BehaviorHalted, f.w.Mortals[stunned].Behavior.Kind)
	assert.True(t, f.w.Agents[stunned].Stopped)
}

func TestSlowExpiryRestoresSpeed(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Elderly, types.Vec3{})
	f.sim.Status.Slow(id, 0.5, 1)
	f.run(1.1, 0.1)

	m := f.w.Mortals[id]
	assert.False(t, m.IsSlowed())
	assert.Equal(t, m.WalkSpeed, f.w.Agents[id].Speed)
}

func TestStatusIgnoredOnceFled(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Fear.ForceFlee(id)

	f.sim.Status.Stun(id, 2)
	f.sim.Status.Possess(id, 2)
	f.sim.Status.Apply(id, defs.StatusEffectDef{Kind: defs.StatusFreeze, Duration: 2})

	m := f.w.Mortals[id]
	assert.False(t, m.IsStunned())
	assert.False(t, m.IsPossessed())
	assert.False(t, m.IsFrozen())
}

func TestPossessionHopsAndHandsBackControl(t *testing.T) {
	f := newFixture()
	start := types.Vec3{X: 10, Z: 10}
	id := f.mortal(defs.Adult, start)
	f.sim.Status.Possess(id, 1)
	m := f.w.Mortals[id]
	require.Equal(t, component.BehaviorPossessed, m.Behavior.Kind)

	f.sim.Tick(0.1)
	agent := f.w.Agents[id]
	assert.True(t, agent.HasDestination)
	assert.LessOrEqual(t, agent.Destination.Distance(start), 5.0+1e-9)

	f.run(1, 0.1)
	assert.False(t, m.IsPossessed())
	assert.NotEqual(t, component.BehaviorPossessed, m.Behavior.Kind)
}

func TestStunOutranksPossessionForMovement(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Possess(id, 3)
	f.sim.Status.Stun(id, 1)

	m := f.w.Mortals[id]
	assert.Equal(t, component.BehaviorPossessed, m.Behavior.Kind)
	f.run(0.5, 0.1)
	assert.True(t, f.w.Agents[id].Stopped)
	assert.Equal(t, types.Vec3{}, f.w.PositionOf(id))
}

func TestNonPositiveDurationIsIgnored(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Freeze(id, 0)
	f.sim.Status.Slow(id, 0.5, -1)

	m := f.w.Mortals[id]
	assert.False(t, m.IsFrozen())
	assert.False(t, m.IsSlowed())
}
