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

func TestBindDebitsCostAndTeleports(t *testing.T) {
	f := newFixture()
	ghostID := f.ghost(defs.Poltergeist, types.Vec3{}, 50)
	anchorID := f.anchor(defs.Furniture, types.Vec3{X: 7, Z: 3}, true)

	require.True(t, f.sim.Binding.TryBind(ghostID, anchorID))

	g, a := f.w.Ghosts[ghostID], f.w.Anchors[anchorID]
	assert.Equal(t, 40.0, g.Plasm)
	assert.True(t, a.Occupied)
	assert.Equal(t, ghostID, a.BoundGhost)
	assert.Equal(t, anchorID, g.BoundAnchor)
	assert.Equal(t, types.Vec3{X: 7, Z: 3}, f.w.PositionOf(ghostID))
	assert.Equal(t, 1, f.rec.count(event.GhostBoundType))
}

func TestBindFailuresLeaveStateUntouched(t *testing.T) {
	f := newFixture()
	first := f.ghost(defs.Poltergeist, types.Vec3{}, 50)
	second := f.ghost(defs.Wraith, types.Vec3{}, 50)
	poor := f.ghost(defs.Poltergeist, types.Vec3{}, 9)
	third := f.ghost(defs.Poltergeist, types.Vec3{}, 50)
	taken := f.anchor(defs.Generic, types.Vec3{}, false)
	mirror := f.anchor(defs.Mirror, types.Vec3{X: 5}, true)
	free := f.anchor(defs.Generic, types.Vec3{X: 9}, false)
	require.True(t, f.sim.Binding.TryBind(first, taken))

	assert.False(t, f.sim.Binding.TryBind(second, taken), "occupied")
	assert.False(t, f.sim.Binding.TryBind(first, free), "already bound")
	assert.False(t, f.sim.Binding.TryBind(poor, free), "bind cost")
	assert.False(t, f.sim.Binding.TryBind(third, mirror), "incompatible")

	assert.Equal(t, 50.0, f.w.Ghosts[second].Plasm)
	assert.Equal(t, 9.0, f.w.Ghosts[poor].Plasm)
	assert.Equal(t, 50.0, f.w.Ghosts[third].Plasm)
	assert.False(t, f.w.Anchors[free].Occupied)
	assert.False(t, f.w.Anchors[mirror].Occupied)
	assert.Equal(t, taken, f.w.Ghosts[first].BoundAnchor)
	assert.Equal(t, types.Vec3{}, f.w.PositionOf(second))

	assert.True(t, f.sim.Binding.TryBind(second, mirror))
}

func TestUnrestrictedAnchorAcceptsAnyCategory(t *testing.T) {
	f := newFixture()
	ghostID := f.ghost(defs.Banshee, types.Vec3{}, 50)
	anchorID := f.anchor(defs.Mirror, types.Vec3{}, false)
	assert.True(t, f.sim.Binding.CanBind(anchorID, ghostID))
}

func TestBindUnbindRoundTrip(t *testing.T) {
	f := newFixture()
	ghostID := f.ghost(defs.Specter, types.Vec3{}, 50)
	anchorID := f.anchor(defs.Temperature, types.Vec3{X: 2}, true)
	before := *f.w.Anchors[anchorID]

	require.True(t, f.sim.Binding.TryBind(ghostID, anchorID))
	f.sim.Binding.Unbind(ghostID)

	assert.Equal(t, before, *f.w.Anchors[anchorID])
	assert.Equal(t, types.NoEntity, f.w.Ghosts[ghostID].BoundAnchor)
	assert.False(t, f.w.Ghosts[ghostID].IsBound())
	assert.Equal(t, 1, f.rec.count(event.GhostUnboundType))

	f.sim.Binding.Unbind(ghostID)
	assert.Equal(t, 1, f.rec.count(event.GhostUnboundType))
}

func TestReleaseAnchor(t *testing.T) {
	f := newFixture()
	ghostID, anchorID := f.bound(defs.Poltergeist, defs.Electrical, types.Vec3{})
	f.sim.Binding.ReleaseAnchor(anchorID)
	assert.False(t, f.w.Anchors[anchorID].Occupied)
	assert.False(t, f.w.Ghosts[ghostID].IsBound())
	f.sim.Binding.ReleaseAnchor(anchorID)
}

func TestBindingStaysMutuallyExclusive(t *testing.T) {
	f := newFixture()
	rng := utils.NewPRNGService(3)
	var ghosts, anchors []types.EntityID
	for i := 0; i < 3; i++ {
		ghosts = append(ghosts, f.ghost(defs.Poltergeist, types.Vec3{}, 100))
		anchors = append(anchors, f.anchor(defs.Generic, types.Vec3{X: float64(i)}, false))
	}
	for i := 0; i < 400; i++ {
		g := ghosts[rng.Intn(len(ghosts))]
		a := anchors[rng.Intn(len(anchors))]
		switch rng.Intn(3) {
		case 0:
			f.sim.Binding.TryBind(g, a)
		case 1:
			f.sim.Binding.Unbind(g)
		default:
			f.sim.Binding.ReleaseAnchor(a)
		}
		f.w.Ghosts[g].SetPlasm(100)

		holders := map[types.EntityID]int{}
		for _, gid := range ghosts {
			if ghost := f.w.Ghosts[gid]; ghost.IsBound() {
				holders[ghost.BoundAnchor]++
				require.Equal(t, gid, f.w.Anchors[ghost.BoundAnchor].BoundGhost)
			}
		}
		for _, aid := range anchors {
			anchor := f.w.Anchors[aid]
			require.LessOrEqual(t, holders[aid], 1)
			if anchor.Occupied {
				require.Equal(t, aid, f.w.Ghosts[anchor.BoundGhost].BoundAnchor)
			} else {
				require.Equal(t, types.NoEntity, anchor.BoundGhost)
			}
		}
	}
}
