// internal/defs/haunts.go
package defs

// HauntKind selects how a haunting effect plays out over its duration.
type HauntKind string

const (
	// HauntScare frightens everything in ScareRadius once and forces flight.
	HauntScare HauntKind = "SCARE"
	// HauntPoltergeist throws objects every PulseInterval for Duration seconds.
	HauntPoltergeist HauntKind = "POLTERGEIST"
)

// HauntDefinition describes an effect an interactable object can host.
type HauntDefinition struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          HauntKind `json:"kind"`
	Duration      float64   `json:"duration"`
	Intensity     float64   `json:"intensity"`
	PlasmCost     float64   `json:"plasm_cost"`
	Radius        float64   `json:"radius"`
	Fear          float64   `json:"fear"`
	PulseInterval float64   `json:"pulse_interval,omitempty"`
}

// HauntLibrary is keyed by HauntDefinition.ID.
var HauntLibrary = map[string]HauntDefinition{
	"HAUNT_SCARE": {
		ID: "HAUNT_SCARE", Name: "Scare", Kind: HauntScare,
		Duration: 5, Intensity: 1, PlasmCost: 10, Radius: 5, Fear: 50,
	},
	"HAUNT_POLTERGEIST": {
		ID: "HAUNT_POLTERGEIST", Name: "Poltergeist", Kind: HauntPoltergeist,
		Duration: 5, Intensity: 1, PlasmCost: 10, Radius: 8, Fear: 20,
		PulseInterval: 0.5,
	},
}
