// internal/system/effect_dispatcher.go
package system

import (
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/interfaces"
	"go-haunted-house/internal/types"
)

// EffectDispatcher применяет воздействие ко всем смертным в радиусе:
// страх, затем сопутствующий статус. Каждый смертный обрабатывается
// независимо, порядок обхода значения не имеет.
type EffectDispatcher struct {
	world  *entity.World
	query  interfaces.SpatialQuery
	fear   *FearSystem
	status *StatusEffectSystem
}

func NewEffectDispatcher(world *entity.World, query interfaces.SpatialQuery, fear *FearSystem, status *StatusEffectSystem) *EffectDispatcher {
	return &EffectDispatcher{world: world, query: query, fear: fear, status: status}
}

// Dispatch applies effect to mortals within radius of source. Fear is scaled
// by bonus. Mortals that already fled are skipped. It returns the number of
// mortals affected.
func (d *EffectDispatcher) Dispatch(source types.Vec3, radius float64, effect defs.EffectDef, bonus float64) int {
	targets := d.receptive(d.query.MortalsWithinRange(source, radius))
	if effect.SingleTarget {
		targets = d.nearest(source, targets)
	}
	for _, id := range targets {
		d.applyTo(id, effect, bonus)
	}
	log.Debug().Int("affected", len(targets)).Float64("radius", radius).Float64("fear", effect.Fear*bonus).Msg("effect dispatched")
	return len(targets)
}

func (d *EffectDispatcher) applyTo(id types.EntityID, effect defs.EffectDef, bonus float64) {
	if effect.Fear > 0 {
		d.fear.ApplyFear(id, effect.Fear*bonus)
	}
	if effect.HasStatus() {
		d.status.Apply(id, *effect.Status)
	}
	if effect.ForceFlee {
		d.fear.ForceFlee(id)
	}
}

// receptive drops mortals that no longer take fear, such as those already
// fleeing.
func (d *EffectDispatcher) receptive(ids []types.EntityID) []types.EntityID {
	kept := ids[:0:0]
	for _, id := range ids {
		if m, ok := d.world.Mortals[id]; ok && m.AcceptsFear() {
			kept = append(kept, id)
		}
	}
	return kept
}

// nearest keeps only the closest mortal; ties go to the lower ID.
func (d *EffectDispatcher) nearest(source types.Vec3, ids []types.EntityID) []types.EntityID {
	if len(ids) == 0 {
		return nil
	}
	best := ids[0]
	bestDist := d.world.PositionOf(best).DistanceSq(source)
	for _, id := range ids[1:] {
		dist := d.world.PositionOf(id).DistanceSq(source)
		if dist < bestDist || (dist == bestDist && id < best) {
			best, bestDist = id, dist
		}
	}
	return []types.EntityID{best}
}
