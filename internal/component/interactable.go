// internal/component/interactable.go
package component

import (
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/types"
)

// Interactable is a world object a bound ghost can haunt.
type Interactable struct {
	Name            string
	Effects         []string // ID из defs.HauntLibrary
	Cooldown        float64
	LastInteraction float64
	Highlighted     bool
}

// Haunt — активный эффект одержимости предмета.
type Haunt struct {
	Def        defs.HauntDefinition
	Source     types.EntityID // Interactable
	Ghost      types.EntityID
	Elapsed    float64
	PulseTimer float64
	Started    bool
}
