// internal/component/ghost.go
package component

import (
	"math"

	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

// Ability — одна из двух сил призрака.
type Ability struct {
	Name     string
	Cost     float64
	Cooldown float64
	LastUsed float64
	Def      defs.PowerDef
}

// Ready reports whether the ability's own cooldown has elapsed at now.
func (a *Ability) Ready(now float64) bool {
	return now-a.LastUsed >= a.Cooldown
}

// CooldownRemaining is the time until Ready, never negative.
func (a *Ability) CooldownRemaining(now float64) float64 {
	return math.Max(0, a.LastUsed+a.Cooldown-now)
}

// Ghost представляет призрака игрока.
type Ghost struct {
	Name       string
	Category   defs.GhostCategory
	Plasm      float64
	MaxPlasm   float64
	RegenRate  float64
	BindCost   float64
	PowerRange float64
	// BoundAnchor is a non-owning reference; NoEntity when unbound.
	BoundAnchor types.EntityID
	Primary     Ability
	Secondary   Ability
	// Общая перезарядка обеих сил: использование любой сбрасывает обе.
	PowerCooldown float64
	LastPowerUse  float64
	Selected      bool
}

// NewGhost builds a ghost from its category definition with the given plasm.
func NewGhost(name string, def defs.GhostDefinition, plasm float64) *Ghost {
	never := math.Inf(-1)
	g := &Ghost{
		Name:          name,
		Category:      def.Category,
		MaxPlasm:      def.MaxPlasm,
		RegenRate:     def.RegenRate,
		BindCost:      def.BindCost,
		PowerRange:    def.PowerRange,
		PowerCooldown: def.PowerCooldown,
		LastPowerUse:  never,
		Primary: Ability{
			Name: def.Primary.Name, Cost: def.Primary.Cost, Cooldown: def.PowerCooldown,
			LastUsed: never, Def: def.Primary,
		},
		Secondary: Ability{
			Name: def.Secondary.Name, Cost: def.Secondary.Cost, Cooldown: def.PowerCooldown,
			LastUsed: never, Def: def.Secondary,
		},
	}
	g.SetPlasm(plasm)
	return g
}

// IsBound reports whether the ghost currently occupies an anchor.
func (g *Ghost) IsBound() bool {
	return g.BoundAnchor != types.NoEntity
}

// SetPlasm stores v clamped to [0, MaxPlasm].
func (g *Ghost) SetPlasm(v float64) {
	g.Plasm = math.Max(0, math.Min(v, g.MaxPlasm))
}

// CooldownRemaining is the time left on the shared power cooldown.
func (g *Ghost) CooldownRemaining(now float64) float64 {
	return math.Max(0, g.LastPowerUse+g.PowerCooldown-now)
}
