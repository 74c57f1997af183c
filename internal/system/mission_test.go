package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
)

func TestScareAllCompletesMissionWithScore(t *testing.T) {
	f := newFixture()
	a := f.mortal(defs.Adult, types.Vec3{})
	b := f.mortal(defs.Adult, types.Vec3{X: 30})
	f.sim.Missions.Start("m", "", []defs.ObjectiveDefinition{
		{Name: "all", Kind: defs.ObjectiveScareAll, Target: 2},
		{Name: "bonus", Kind: defs.ObjectiveScareSpecific, Target: 1, MortalName: "Nobody", Optional: true},
	}, 0)

	f.sim.Fear.ForceFlee(a)
	f.w.Mortals[b].Fear = 81
	f.w.Mortals[b].ScareThreshold = 1000
	f.w.Mortals[b].FearDecayRate = 0
	f.sim.Tick(0.5)
	assert.Equal(t, component.MissionActive, f.w.Mission.Status)

	f.sim.Missions.Evaluate()
	mission := f.w.Mission
	assert.Equal(t, component.MissionCompleted, mission.Status)
	assert.Equal(t, 1500, mission.Score)
	assert.Equal(t, 1, f.rec.count(event.ObjectiveCompletedType))
	assert.Equal(t, 1, f.rec.count(event.MissionCompleteType))
}

func TestObjectivesEvaluatedOncePerSecond(t *testing.T) {
	f := newFixture()
	f.ghost(defs.Poltergeist, types.Vec3{}, 40)
	f.sim.Missions.Start("m", "", []defs.ObjectiveDefinition{
		{Name: "plasm", Kind: defs.ObjectiveCollectPlasm, Target: 1000},
	}, 0)

	f.run(0.9, 0.1)
	assert.Zero(t, f.w.Mission.Objectives[0].Current)
	f.run(0.2, 0.1)
	assert.InDelta(t, 42, f.w.Mission.Objectives[0].Current, 1)
}

func TestOptionalObjectivesAddBonus(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Adult, types.Vec3{})
	f.w.Mortals[id].Name = "Dr. Crane"
	f.sim.Missions.Start("m", "", []defs.ObjectiveDefinition{
		{Name: "skeptic", Kind: defs.ObjectiveScareSpecific, Target: 1, MortalName: "Dr. Crane", Optional: true},
		{Name: "survive", Kind: defs.ObjectiveSurviveTime, Target: 3},
	}, 0)
	f.sim.Fear.ForceFlee(id)

	f.run(3.5, 0.5)

	require.Equal(t, component.MissionCompleted, f.w.Mission.Status)
	assert.Equal(t, 1000+2*500+250, f.w.Mission.Score)
}

func TestTimeLimitFailsMission(t *testing.T) {
	f := newFixture()
	f.mortal(defs.Adult, types.Vec3{})
	f.sim.Missions.Start("m", "", []defs.ObjectiveDefinition{
		{Name: "all", Kind: defs.ObjectiveScareAll, Target: 1},
	}, 2)

	f.run(2.5, 0.5)

	assert.Equal(t, component.MissionFailed, f.w.Mission.Status)
	assert.Equal(t, "time limit reached", f.w.Mission.FailReason)
	assert.Equal(t, 1, f.rec.count(event.MissionFailedType))

	f.sim.Missions.Complete()
	assert.Equal(t, component.MissionFailed, f.w.Mission.Status)
}

func TestLevelCompleteFiresOnceAllMortalsFled(t *testing.T) {
	f := newFixture()
	a := f.mortal(defs.Adult, types.Vec3{})
	b := f.mortal(defs.Adult, types.Vec3{X: 30})

	f.sim.Fear.ForceFlee(a)
	f.sim.Tick(0.1)
	assert.False(t, f.w.Mission.LevelComplete)

	f.sim.Fear.ForceFlee(b)
	f.run(0.3, 0.1)
	assert.True(t, f.w.Mission.LevelComplete)
	assert.Equal(t, 1, f.rec.count(event.LevelCompleteType))
}

func TestOptionalObjectiveAfterMandatoryCountsInSamePass(t *testing.T) {
	f := newFixture()
	id := f.mortal(defs.Skeptic, types.Vec3{})
	f.w.Mortals[id].Name = "Dr. Crane"
	f.sim.Missions.Start("m", "", []defs.ObjectiveDefinition{
		{Name: "all", Kind: defs.ObjectiveScareAll, Target: 1},
		{Name: "skeptic", Kind: defs.ObjectiveScareSpecific, Target: 1, MortalName: "Dr. Crane", Optional: true},
	}, 0)
	f.sim.Fear.ForceFlee(id)

	f.sim.Missions.Evaluate()

	require.Equal(t, component.MissionCompleted, f.w.Mission.Status)
	assert.Equal(t, 1000+2*500+250, f.w.Mission.Score)
	assert.Equal(t, 2, f.rec.count(event.ObjectiveCompletedType))
}

func TestMissionWithoutObjectivesStaysActive(t *testing.T) {
	f := newFixture()
	f.run(2, 0.5)
	assert.Equal(t, component.MissionActive, f.w.Mission.Status)
	assert.Zero(t, f.rec.count(event.MissionCompleteType))
}
