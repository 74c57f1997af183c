// internal/defs/anchors.go
package defs

// PulseDef — импульс страха, который якорь может выпустить сам по себе.
type PulseDef struct {
	Radius float64   `json:"radius"`
	Effect EffectDef `json:"effect"`
}

// AnchorDefinition holds the static data for an anchor category.
type AnchorDefinition struct {
	Category   AnchorCategory  `json:"category"`
	PowerBonus float64         `json:"power_bonus"`
	Compatible []GhostCategory `json:"compatible"` // пусто — подходит любой призрак
	Pulse      *PulseDef       `json:"pulse,omitempty"`
}

// AnchorLibrary is indexed by category.
var AnchorLibrary = map[AnchorCategory]AnchorDefinition{
	Mirror: {
		Category: Mirror, PowerBonus: 1.3, Compatible: []GhostCategory{Wraith, Phantom},
		Pulse: &PulseDef{Radius: 8, Effect: EffectDef{Fear: 25}},
	},
	Electrical: {
		Category: Electrical, PowerBonus: 1.4, Compatible: []GhostCategory{Poltergeist, Specter},
		Pulse: &PulseDef{Radius: 10, Effect: EffectDef{Fear: 20}},
	},
	Furniture: {
		Category: Furniture, PowerBonus: 1.5, Compatible: []GhostCategory{Poltergeist},
		Pulse: &PulseDef{Radius: 6, Effect: EffectDef{Fear: 30}},
	},
	Plumbing: {
		Category: Plumbing, PowerBonus: 1.2, Compatible: []GhostCategory{Specter, Banshee},
		Pulse: &PulseDef{Radius: 7, Effect: EffectDef{Fear: 15}},
	},
	Temperature: {
		Category: Temperature, PowerBonus: 1.4, Compatible: []GhostCategory{Specter},
		Pulse: &PulseDef{Radius: 12, Effect: EffectDef{
			Fear:   18,
			Status: &StatusEffectDef{Kind: StatusSlow, Duration: 3, Multiplier: 0.8},
		}},
	},
	Generic: {Category: Generic, PowerBonus: 1.0},
}
