// internal/defs/mortals.go
package defs

// MortalDefinition holds the tuning shared by every mortal of a category.
type MortalDefinition struct {
	Category       MortalCategory `json:"category"`
	MaxFear        float64        `json:"max_fear"`
	ScareThreshold float64        `json:"scare_threshold"`
	FearDecayRate  float64        `json:"fear_decay_rate"`
	FleeSpeed      float64        `json:"flee_speed"`
	// WalkSpeedFactor — доля скорости бегства при обычной прогулке.
	WalkSpeedFactor float64 `json:"walk_speed_factor"`
	FearMultiplier  float64 `json:"fear_multiplier"`
	WanderRadius    float64 `json:"wander_radius"`
	WaitTime        float64 `json:"wait_time"`
}

// WalkSpeed is the navigation speed used while wandering.
func (d MortalDefinition) WalkSpeed() float64 {
	return d.FleeSpeed * d.WalkSpeedFactor
}

// MortalLibrary is indexed by category.
var MortalLibrary = map[MortalCategory]MortalDefinition{
	Child: {
		Category: Child, MaxFear: 60, ScareThreshold: 40, FearDecayRate: 3, FleeSpeed: 4,
		WalkSpeedFactor: 0.7, FearMultiplier: 1.5, WanderRadius: 10, WaitTime: 2,
	},
	Adult: {
		Category: Adult, MaxFear: 100, ScareThreshold: 80, FearDecayRate: 5, FleeSpeed: 3.5,
		WalkSpeedFactor: 0.7, FearMultiplier: 1.0, WanderRadius: 10, WaitTime: 2,
	},
	Elderly: {
		Category: Elderly, MaxFear: 120, ScareThreshold: 100, FearDecayRate: 2, FleeSpeed: 2,
		WalkSpeedFactor: 0.7, FearMultiplier: 1.0, WanderRadius: 10, WaitTime: 2,
	},
	Skeptic: {
		Category: Skeptic, MaxFear: 150, ScareThreshold: 120, FearDecayRate: 8, FleeSpeed: 3,
		WalkSpeedFactor: 0.7, FearMultiplier: 0.5, WanderRadius: 10, WaitTime: 2,
	},
	Believer: {
		Category: Believer, MaxFear: 80, ScareThreshold: 60, FearDecayRate: 2, FleeSpeed: 4.5,
		WalkSpeedFactor: 0.7, FearMultiplier: 1.3, WanderRadius: 10, WaitTime: 2,
	},
}
