// internal/defs/effects.go
package defs

// StatusEffectDef describes a timed overlay bundled with a fear effect.
type StatusEffectDef struct {
	Kind       StatusKind `json:"kind"`
	Duration   float64    `json:"duration"`
	Multiplier float64    `json:"multiplier,omitempty"` // только для Slow
}

// EffectDef — дескриптор воздействия на смертных в радиусе.
type EffectDef struct {
	Fear   float64          `json:"fear"`
	Status *StatusEffectDef `json:"status,omitempty"`
	// SingleTarget limits the effect to the nearest mortal in range.
	SingleTarget bool `json:"single_target,omitempty"`
	// ForceFlee sends every affected mortal into flight regardless of fear.
	ForceFlee bool `json:"force_flee,omitempty"`
}

// HasStatus reports whether the effect carries a usable status overlay.
func (e EffectDef) HasStatus() bool {
	return e.Status != nil && e.Status.Kind != StatusNone && e.Status.Duration > 0
}
