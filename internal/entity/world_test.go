package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

func addMortal(w *World, at types.Vec3) types.EntityID {
	id := w.NewEntity()
	w.Mortals[id] = component.NewMortal("m", defs.MortalLibrary[defs.Adult], nil)
	w.Positions[id] = &component.Position{Vec3: at}
	return id
}

func TestMortalsWithinRangeIsInclusiveAndSkipsInactive(t *testing.T) {
	w := NewWorld()
	onEdge := addMortal(w, types.Vec3{X: 3, Y: 4})
	inside := addMortal(w, types.Vec3{X: 1})
	outside := addMortal(w, types.Vec3{X: 5.01})
	gone := addMortal(w, types.Vec3{})
	w.Mortals[gone].IsActive = false

	got := w.MortalsWithinRange(types.Vec3{}, 5)
	assert.ElementsMatch(t, []types.EntityID{onEdge, inside}, got)
	assert.NotContains(t, got, outside)
}

func TestAnchorsWithinRange(t *testing.T) {
	w := NewWorld()
	a := w.NewEntity()
	w.Anchors[a] = component.NewAnchor("a", defs.AnchorLibrary[defs.Generic], false)
	w.Positions[a] = &component.Position{Vec3: types.Vec3{Z: 2}}

	assert.Equal(t, []types.EntityID{a}, w.AnchorsWithinRange(types.Vec3{}, 2))
	assert.Empty(t, w.AnchorsWithinRange(types.Vec3{}, 1.9))
	assert.Empty(t, w.AnchorsWithinRange(types.Vec3{}, -1))
}

func TestFindMortalAndBounds(t *testing.T) {
	w := NewWorld()
	w.Max = types.Vec3{X: 10, Z: 10}
	id := addMortal(w, types.Vec3{})
	w.Mortals[id].Name = "Luna"

	found, ok := w.FindMortal("Luna")
	assert.True(t, ok)
	assert.Equal(t, id, found)
	_, ok = w.FindMortal("Nobody")
	assert.False(t, ok)

	assert.True(t, w.Contains(types.Vec3{X: 10, Z: 0}))
	assert.False(t, w.Contains(types.Vec3{X: -0.1}))
}

func TestSortedKeysFollowsCreationOrder(t *testing.T) {
	m := map[types.EntityID]string{7: "c", 2: "a", 5: "b"}
	assert.Equal(t, []types.EntityID{2, 5, 7}, SortedKeys(m))
	assert.Empty(t, SortedKeys(map[types.EntityID]int{}))
}
