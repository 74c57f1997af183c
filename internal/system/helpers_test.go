package system

import (
	"os"
	"testing"

	"github.com/rs/zerolog"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/event"
	"go-haunted-house/internal/types"
	"go-haunted-house/internal/utils"
)

func TestMain(m *testing.M) {
	zerolog.SetGlobalLevel(zerolog.Disabled)
	os.Exit(m.Run())
}

type recorder struct{ events []event.Event }

func (r *recorder) OnEvent(e event.Event) { r.events = append(r.events, e) }

func (r *recorder) count(t event.Type) int {
	n := 0
	for _, e := range r.events {
		if e.Type == t {
			n++
		}
	}
	return n
}

type fixture struct {
	sim *Simulation
	w   *entity.World
	rec *recorder
}

func newFixture() *fixture {
	w := entity.NewWorld()
	w.Pool.Max = 100
	d := event.NewDispatcher()
	rec := &recorder{}
	d.SubscribeAll(rec)
	return &fixture{sim: NewSimulation(w, d, utils.NewPRNGService(1)), w: w, rec: rec}
}

func (f *fixture) mortal(c defs.MortalCategory, at types.Vec3) types.EntityID {
	id := f.w.NewEntity()
	f.w.Mortals[id] = component.NewMortal(c.String(), defs.MortalLibrary[c], nil)
	f.w.Positions[id] = &component.Position{Vec3: at}
	f.w.Agents[id] = &component.NavAgent{}
	syncAgent(f.w, id)
	return id
}

func (f *fixture) ghost(c defs.GhostCategory, at types.Vec3, plasm float64) types.EntityID {
	id := f.w.NewEntity()
	f.w.Ghosts[id] = component.NewGhost(c.String(), defs.GhostLibrary[c], plasm)
	f.w.Positions[id] = &component.Position{Vec3: at}
	return id
}

func (f *fixture) anchor(c defs.AnchorCategory, at types.Vec3, restricted bool) types.EntityID {
	id := f.w.NewEntity()
	f.w.Anchors[id] = component.NewAnchor(c.String(), defs.AnchorLibrary[c], restricted)
	f.w.Positions[id] = &component.Position{Vec3: at}
	return id
}

func (f *fixture) exit(at types.Vec3) {
	f.w.Exits = append(f.w.Exits, component.ExitMarker{Position: at})
}

// bound returns a ghost already bound to a fresh anchor at the same spot.
func (f *fixture) bound(g defs.GhostCategory, a defs.AnchorCategory, at types.Vec3) (types.EntityID, types.EntityID) {
	ghostID := f.ghost(g, at, 100)
	anchorID := f.anchor(a, at, false)
	if !f.sim.Binding.TryBind(ghostID, anchorID) {
		panic("fixture bind failed")
	}
	f.w.Ghosts[ghostID].SetPlasm(100)
	return ghostID, anchorID
}

func (f *fixture) run(seconds, step float64) {
	for t := 0.0; t < seconds-1e-9; t += step {
		f.sim.Tick(step)
	}
}
