package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

func TestChildFleesImmediatelyPastThreshold(t *testing.T) {
	f := newFixture()
	f.exit(types.Vec3{X: 20})
	id := f.mortal(defs.Child, types.Vec3{})

	f.sim.Fear.ApplyFear(id, 30)

	m := f.w.Mortals[id]
	assert.Equal(t, 45.0, m.Fear)
	assert.True(t, m.HasFled)
	assert.Equal(t, component.PhaseFleeing, m.Phase)
	assert.Equal(t, component.BehaviorFleeToExit, m.Behavior.Kind)
	assert.Equal(t, 1, f.rec.count(event.MortalFledType))
	assert.Equal(t, m.FleeSpeed, f.w.Agents[id].Speed)
}

func TestCategoryMultiplierAndClamp(t *testing.T) {
	f := newFixture()
	skeptic := f.mortal(defs.Skeptic, types.Vec3{})
	believer := f.mortal(defs.Believer, types.Vec3{X: 50})

	f.sim.Fear.ApplyFear(skeptic, 100)
	f.sim.Fear.ApplyFear(believer, 10)

	assert.Equal(t, 50.0, f.w.Mortals[skeptic].Fear)
	assert.InDelta(t, 13.0, f.w.Mortals[believer].Fear, 1e-9)
	assert.Equal(t, component.PhaseAlarmed, f.w.Mortals[skeptic].Phase)

	f.w.Mortals[skeptic].Fear = 0
	f.sim.Fear.ApplyFear(skeptic, -10)
	assert.Equal(t, 0.0, f.w.Mortals[skeptic].Fear)
}

func TestFearStaysInBoundsUnderRandomTraffic(t *testing.T) {
	f := newFixture()
	rng := utils.NewPRNGService(99)
	var ids []types.EntityID
	for _, c := range []defs.MortalCategory{defs.Child, defs.Adult, defs.Elderly, defs.Skeptic, defs.Believer} {
		ids = append(ids, f.mortal(c, types.Vec3{X: float64(len(ids)) * 30}))
	}
	for i := 0; i < 500; i++ {
		id := ids[rng.Intn(len(ids))]
		f.sim.Fear.ApplyFear(id, rng.Range(-20, 60))
		f.sim.Tick(rng.Range(0.01, 0.5))
		for _, mid := range ids {
			m := f.w.Mortals[mid]
			require.GreaterOrEqual(t, m.Fear, 0.0)
			require.LessOrEqual(t, m.Fear, m.MaxFear)
		}
	}
}

func TestHasFledIsMonotonicAndBlocksFear(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Fear.ForceFlee(id)
	m := f.w.Mortals[id]
	require.True(t, m.HasFled)
	assert.Equal(t, 0.0, m.Fear)

	f.sim.Fear.ApplyFear(id, 50)
	f.sim.Fear.ForceFlee(id)
	f.run(3, 0.1)

	assert.True(t, m.HasFled)
	assert.Equal(t, 0.0, m.Fear)
	assert.Equal(t, 1, f.rec.count(event.MortalFledType))
	assert.Zero(t, f.rec.count(event.MortalFearedType))
}

func TestApplyFearInterruptsWanderWithReactionPause(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	m := f.w.Mortals[id]
	m.SetBehavior(component.BehaviorRandomWander)
	m.Behavior.Stage = component.StageWaiting

	f.sim.Fear.ApplyFear(id, 10)

	assert.Equal(t, component.BehaviorHalted, m.Behavior.Kind)
	assert.Equal(t, component.StageStart, m.Behavior.Stage)
	assert.Equal(t, 1.0, m.ReactionTimer)
	assert.True(t, f.w.Agents[id].Stopped)
	assert.Contains(t, f.w.FearFlashes, id)

	f.run(1.1, 0.1)
	assert.False(t, f.w.Agents[id].Stopped)
	assert.Equal(t, component.BehaviorRandomWander, m.Behavior.Kind)
}

func TestDecaySkipsPossessedAndFleeing(t *testing.T) {
	f := newFixture()
	calm := f.mortal(defs.Adult, types.Vec3{})
	possessed := f.mortal(defs.Adult, types.Vec3{X: 30})
	fleeing := f.mortal(defs.Adult, types.Vec3{X: 60})
	for _, id := range []types.EntityID{calm, possessed, fleeing} {
		f.w.Mortals[id].Fear = 50
	}
	f.sim.Status.Possess(possessed, 10)
	f.sim.Fear.ForceFlee(fleeing)

	f.sim.Fear.Decay(2)

	assert.Equal(t, 40.0, f.w.Mortals[calm].Fear)
	assert.Equal(t, 50.0, f.w.Mortals[possessed].Fear)
	assert.Equal(t, 50.0, f.w.Mortals[fleeing].Fear)
}

func TestDecayReturnsToWandering(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Fear.ApplyFear(id, 5)
	require.Equal(t, component.PhaseAlarmed, f.w.Mortals[id].Phase)

	f.sim.Fear.Decay(2)
	assert.Equal(t, 0.0, f.w.Mortals[id].Fear)
	assert.Equal(t, component.PhaseWandering, f.w.Mortals[id].Phase)
}

func TestFleePicksNearestExitWithTiesInListOrder(t *testing.T) {
	f := newFixture()
	f.exit(types.Vec3{X: -10})
	f.exit(types.Vec3{X: 10})
	near := f.mortal(defs.Adult, types.Vec3{X: 1})
	tied := f.mortal(defs.Adult, types.Vec3{})

	f.sim.Fear.ForceFlee(tied)
	assert.Equal(t, types.Vec3{X: -10}, f.w.Mortals[tied].Exit)

	f.exit(types.Vec3{X: 3})
	f.sim.Fear.ForceFlee(near)
	assert.Equal(t, types.Vec3{X: 3}, f.w.Mortals[near].Exit)
	assert.Equal(t, types.Vec3{X: 3}, f.w.Agents[near].Destination)
}

func TestFleeWithoutExitRunsAwayFromViewer(t *testing.T) {
	f := newFixture()
	f.w.Viewer = types.Vec3{}
	id := f.mortal(defs.Adult, types.Vec3{X: 10})

	f.sim.Fear.ForceFlee(id)

	m := f.w.Mortals[id]
	assert.Equal(t, component.BehaviorFleeAway, m.Behavior.Kind)
	assert.InDelta(t, 30.0, f.w.Agents[id].Destination.X, 1e-9)

	f.run(20, 0.1)
	assert.True(t, m.IsActive)
	assert.Equal(t, component.PhaseFleeing, m.Phase)
}

func TestPossessionDefersThresholdFlee(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Possess(id, 1)

	f.sim.Fear.ApplyFear(id, 90)
	m := f.w.Mortals[id]
	assert.False(t, m.HasFled)
	assert.Equal(t, component.BehaviorPossessed, m.Behavior.Kind)

	f.run(1.1, 0.1)
	assert.True(t, m.HasFled)
}

func TestForceFleeBypassesPossession(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Possess(id, 5)

	f.sim.Fear.ForceFlee(id)

	m := f.w.Mortals[id]
	assert.True(t, m.HasFled)
	assert.False(t, m.IsPossessed())
	assert.Equal(t, component.BehaviorFleeAway, m.Behavior.Kind)
}
