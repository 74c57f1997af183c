// internal/component/anchor.go
package component

import (
	"slices"

	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

// Anchor — точка в мире, к которой привязывается призрак.
type Anchor struct {
	Name       string
	Category   defs.AnchorCategory
	PowerBonus float64
	Occupied   bool
	// BoundGhost is a non-owning reference; NoEntity when free.
	BoundGhost types.EntityID
	Compatible []defs.GhostCategory
	Restricted bool
	Pulse      *defs.PulseDef
}

// NewAnchor builds an anchor from its category definition.
func NewAnchor(name string, def defs.AnchorDefinition, restricted bool) *Anchor {
	return &Anchor{
		Name:       name,
		Category:   def.Category,
		PowerBonus: def.PowerBonus,
		Compatible: slices.Clone(def.Compatible),
		Restricted: restricted,
		Pulse:      def.Pulse,
	}
}

// Accepts reports whether a ghost of category c may use this anchor.
// An empty compatibility list, or an unrestricted anchor, accepts everyone.
func (a *Anchor) Accepts(c defs.GhostCategory) bool {
	if !a.Restricted || len(a.Compatible) == 0 {
		return true
	}
	return slices.Contains(a.Compatible, c)
}
