// internal/defs/ghosts.go
package defs

// PowerDef describes one ghost ability.
type PowerDef struct {
	Name string  `json:"name"`
	Cost float64 `json:"cost"`
	// RangeMultiplier scales the ghost's base power range.
	RangeMultiplier float64   `json:"range_multiplier"`
	Effect          EffectDef `json:"effect"`
}

// GhostDefinition holds all the static data for a ghost category.
type GhostDefinition struct {
	Category      GhostCategory `json:"category"`
	MaxPlasm      float64       `json:"max_plasm"`
	RegenRate     float64       `json:"regen_rate"` // плазмы в секунду
	BindCost      float64       `json:"bind_cost"`
	PowerRange    float64       `json:"power_range"`
	PowerCooldown float64       `json:"power_cooldown"`
	Primary       PowerDef      `json:"primary"`
	Secondary     PowerDef      `json:"secondary"`
}

// GhostLibrary is indexed by category.
var GhostLibrary = map[GhostCategory]GhostDefinition{
	Poltergeist: {
		Category: Poltergeist, MaxPlasm: 100, RegenRate: 2, BindCost: 10, PowerRange: 4, PowerCooldown: 2,
		Primary:   PowerDef{Name: "Throw Object", Cost: 3, RangeMultiplier: 1, Effect: EffectDef{Fear: 20}},
		Secondary: PowerDef{Name: "Shake Room", Cost: 6, RangeMultiplier: 1.5, Effect: EffectDef{Fear: 35}},
	},
	Banshee: {
		Category: Banshee, MaxPlasm: 100, RegenRate: 1.5, BindCost: 10, PowerRange: 8, PowerCooldown: 2,
		Primary: PowerDef{Name: "Wail", Cost: 5, RangeMultiplier: 1, Effect: EffectDef{Fear: 30}},
		Secondary: PowerDef{Name: "Terrifying Scream", Cost: 10, RangeMultiplier: 1, Effect: EffectDef{
			Fear:   50,
			Status: &StatusEffectDef{Kind: StatusStun, Duration: 2},
		}},
	},
	Wraith: {
		Category: Wraith, MaxPlasm: 100, RegenRate: 2, BindCost: 10, PowerRange: 3, PowerCooldown: 2,
		Primary:   PowerDef{Name: "Phase", Cost: 4, RangeMultiplier: 1, Effect: EffectDef{Fear: 25}},
		Secondary: PowerDef{Name: "Possession Attempt", Cost: 7, RangeMultiplier: 1, Effect: EffectDef{Fear: 40, SingleTarget: true}},
	},
	Phantom: {
		Category: Phantom, MaxPlasm: 100, RegenRate: 1, BindCost: 10, PowerRange: 2, PowerCooldown: 2,
		Primary: PowerDef{Name: "Appear", Cost: 8, RangeMultiplier: 1, Effect: EffectDef{Fear: 35}},
		Secondary: PowerDef{Name: "Possess", Cost: 12, RangeMultiplier: 1, Effect: EffectDef{
			SingleTarget: true,
			Status:       &StatusEffectDef{Kind: StatusPossess, Duration: 3},
		}},
	},
	Specter: {
		Category: Specter, MaxPlasm: 100, RegenRate: 1.5, BindCost: 10, PowerRange: 6, PowerCooldown: 2,
		Primary: PowerDef{Name: "Chill", Cost: 4, RangeMultiplier: 1, Effect: EffectDef{
			Fear:   20,
			Status: &StatusEffectDef{Kind: StatusSlow, Duration: 3, Multiplier: 0.5},
		}},
		Secondary: PowerDef{Name: "Freeze", Cost: 8, RangeMultiplier: 1, Effect: EffectDef{
			Fear:   30,
			Status: &StatusEffectDef{Kind: StatusFreeze, Duration: 2},
		}},
	},
}
