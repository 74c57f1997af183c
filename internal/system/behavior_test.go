package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

func TestPatrolVisitsWaypointsInOrder(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	m := f.w.Mortals[id]
	wp0, wp1 := types.Vec3{X: 5}, types.Vec3{X: 5, Z: 5}
	m.Waypoints = []types.Vec3{wp0, wp1}

	f.sim.Tick(0.1)
	require.Equal(t, component.BehaviorPatrol, m.Behavior.Kind)
	assert.Equal(t, wp0, f.w.Agents[id].Destination)

	// ~1.9 s walking, 2 s waiting at wp0
	f.run(4.9, 0.1)
	assert.Equal(t, 1, m.NextWaypoint)
	assert.Equal(t, wp1, f.w.Agents[id].Destination)
}

func TestRandomWanderStaysInRadiusAndBounds(t *testing.T) {
	f := newFixture()
	f.w.Min, f.w.Max = types.Vec3{}, types.Vec3{X: 12, Z: 12}
	start := types.Vec3{X: 2, Z: 2}
	id := f.mortal(defs.Adult, start)

	for i := 0; i < 20; i++ {
		f.sim.Tick(0.1)
		agent := f.w.Agents[id]
		if !agent.HasDestination {
			continue
		}
		assert.True(t, f.w.Contains(agent.Destination))
	}
	m := f.w.Mortals[id]
	assert.Equal(t, component.BehaviorRandomWander, m.Behavior.Kind)
	assert.LessOrEqual(t, m.Behavior.Target.Distance(start), m.WanderRadius+1e-9)
}

func TestFleeingMortalDepartsAndRewardsPool(t *testing.T) {
	f := newFixture()
	f.w.Pool.Stored = 95
	f.exit(types.Vec3{X: 10})
	id := f.mortal(defs.Adult, types.Vec3{})

	f.sim.Fear.ForceFlee(id)
	f.run(5, 0.1)

	m := f.w.Mortals[id]
	assert.False(t, m.IsActive)
	assert.Equal(t, component.PhaseDeparted, m.Phase)
	assert.Equal(t, component.BehaviorGone, m.Behavior.Kind)
	assert.False(t, f.w.Agents[id].HasDestination)
	assert.True(t, f.w.Agents[id].Stopped)
	assert.Zero(t, m.Status.SpeedMultiplier()-1)
	assert.Equal(t, 100, f.w.Pool.Current())
	assert.Equal(t, 1, f.rec.count(event.MortalDepartedType))
	assert.LessOrEqual(t, f.w.PositionOf(id).Distance(types.Vec3{X: 10}), config.ExitReachDistance)
}

func TestCancelledWanderNeverRedirectsAFleeingMortal(t *testing.T) {
	f := newFixture()
	exit := types.Vec3{X: 40}
	f.exit(exit)
	id := f.mortal(defs.Adult, types.Vec3{})
	f.w.Mortals[id].Waypoints = []types.Vec3{{X: -20}, {X: -20, Z: 10}}

	f.run(0.5, 0.1)
	require.Equal(t, types.Vec3{X: -20}, f.w.Agents[id].Destination)

	f.sim.Fear.ForceFlee(id)
	for i := 0; i < 50 && f.w.Mortals[id].IsActive; i++ {
		f.sim.Tick(0.1)
		assert.Equal(t, exit, f.w.Agents[id].Destination)
	}
}

func TestFleeTrackingReissuesDestination(t *testing.T) {
	f := newFixture()
	exit := types.Vec3{X: 30}
	f.exit(exit)
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Fear.ForceFlee(id)

	// a stray redirect is corrected by the next tracking step
	f.sim.Navigation.SetDestination(id, types.Vec3{Z: 30})
	f.run(0.2, 0.1)
	assert.Equal(t, exit, f.w.Agents[id].Destination)
}

func TestSelectorWaitsUntilMortalIsFree(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.sim.Status.Stun(id, 0.5)

	f.sim.Tick(0.1)
	m := f.w.Mortals[id]
	assert.Equal(t, component.BehaviorHalted, m.Behavior.Kind)

	f.run(0.5, 0.1)
	assert.Equal(t, component.BehaviorRandomWander, m.Behavior.Kind)
}
