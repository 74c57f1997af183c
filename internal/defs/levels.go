// internal/defs/levels.go
package defs

import "go-haunted-house/internal/types"

// Placement types describe instances placed in a level at scene init.

type GhostPlacement struct {
	Name     string        `json:"name"`
	Category GhostCategory `json:"category"`
	Position types.Vec3    `json:"position"`
	Plasm    float64       `json:"plasm"`
}

type AnchorPlacement struct {
	Name     string         `json:"name"`
	Category AnchorCategory `json:"category"`
	Position types.Vec3     `json:"position"`
	// Restricted enforces the category's compatibility list.
	Restricted bool `json:"restricted"`
}

type MortalPlacement struct {
	Name      string         `json:"name"`
	Category  MortalCategory `json:"category"`
	Position  types.Vec3     `json:"position"`
	Waypoints []types.Vec3   `json:"waypoints,omitempty"` // пусто — случайное блуждание
}

type InteractablePlacement struct {
	Name     string     `json:"name"`
	Position types.Vec3 `json:"position"`
	Effects  []string   `json:"effects"` // ID из HauntLibrary
	Cooldown float64    `json:"cooldown"`
}

type PickupPlacement struct {
	Position types.Vec3 `json:"position"`
	Amount   float64    `json:"amount"`
	Radius   float64    `json:"radius"`
}

// ObjectiveKind mirrors the objective types a mission can track.
type ObjectiveKind string

const (
	ObjectiveScareAll      ObjectiveKind = "SCARE_ALL_MORTALS"
	ObjectiveScareSpecific ObjectiveKind = "SCARE_SPECIFIC_MORTAL"
	ObjectiveCollectPlasm  ObjectiveKind = "COLLECT_PLASM"
	ObjectiveSurviveTime   ObjectiveKind = "SURVIVE_TIME"
)

type ObjectiveDefinition struct {
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Kind        ObjectiveKind `json:"kind"`
	Target      int           `json:"target"`
	MortalName  string        `json:"mortal_name,omitempty"` // для SCARE_SPECIFIC_MORTAL
	Optional    bool          `json:"optional"`
}

// LevelDefinition is the full set of placed instances for one level.
type LevelDefinition struct {
	Name          string                  `json:"name"`
	Description   string                  `json:"description"`
	Min, Max      types.Vec3              `json:"-"` // границы пола
	Viewer        types.Vec3              `json:"viewer"`
	Exits         []types.Vec3            `json:"exits"`
	Ghosts        []GhostPlacement        `json:"ghosts"`
	Anchors       []AnchorPlacement       `json:"anchors"`
	Mortals       []MortalPlacement       `json:"mortals"`
	Interactables []InteractablePlacement `json:"interactables"`
	Pickups       []PickupPlacement       `json:"pickups"`
	Objectives    []ObjectiveDefinition   `json:"objectives"`
}

// HauntedManor is the built-in demo level.
func HauntedManor() LevelDefinition {
	return LevelDefinition{
		Name:        "Haunt the House",
		Description: "Scare all the mortals out of the house",
		Min:         types.Vec3{X: 0, Z: 0},
		Max:         types.Vec3{X: 60, Z: 44},
		Viewer:      types.Vec3{X: 30, Y: 30, Z: -20},
		Exits: []types.Vec3{
			{X: 30, Z: 0},
			{X: 60, Z: 22},
		},
		Ghosts: []GhostPlacement{
			{Name: "Mabel", Category: Poltergeist, Position: types.Vec3{X: 6, Z: 6}, Plasm: 50},
			{Name: "Wailing Wren", Category: Banshee, Position: types.Vec3{X: 10, Z: 6}, Plasm: 50},
			{Name: "Frost", Category: Specter, Position: types.Vec3{X: 14, Z: 6}, Plasm: 50},
			{Name: "Hollow", Category: Phantom, Position: types.Vec3{X: 18, Z: 6}, Plasm: 50},
		},
		Anchors: []AnchorPlacement{
			{Name: "Hall Mirror", Category: Mirror, Position: types.Vec3{X: 12, Z: 30}},
			{Name: "Fuse Box", Category: Electrical, Position: types.Vec3{X: 48, Z: 10}, Restricted: true},
			{Name: "Rocking Chair", Category: Furniture, Position: types.Vec3{X: 24, Z: 36}},
			{Name: "Old Boiler", Category: Temperature, Position: types.Vec3{X: 40, Z: 34}, Restricted: true},
			{Name: "Attic Beam", Category: Generic, Position: types.Vec3{X: 30, Z: 20}},
		},
		Mortals: []MortalPlacement{
			{Name: "Tommy", Category: Child, Position: types.Vec3{X: 20, Z: 30}},
			{Name: "Mr. Hale", Category: Adult, Position: types.Vec3{X: 34, Z: 24}, Waypoints: []types.Vec3{
				{X: 34, Z: 24}, {X: 44, Z: 30}, {X: 26, Z: 34},
			}},
			{Name: "Grandma Pearl", Category: Elderly, Position: types.Vec3{X: 42, Z: 36}},
			{Name: "Dr. Crane", Category: Skeptic, Position: types.Vec3{X: 28, Z: 14}},
			{Name: "Luna", Category: Believer, Position: types.Vec3{X: 14, Z: 26}},
		},
		Interactables: []InteractablePlacement{
			{Name: "Grand Piano", Position: types.Vec3{X: 22, Z: 31}, Effects: []string{"HAUNT_POLTERGEIST"}, Cooldown: 2},
			{Name: "Portrait", Position: types.Vec3{X: 36, Z: 30}, Effects: []string{"HAUNT_SCARE"}, Cooldown: 2},
		},
		Pickups: []PickupPlacement{
			{Position: types.Vec3{X: 13, Z: 31}, Amount: 25, Radius: 1.5},
			{Position: types.Vec3{X: 41, Z: 33}, Amount: 25, Radius: 1.5},
		},
		Objectives: []ObjectiveDefinition{
			{Name: "Empty the House", Description: "Scare every mortal away", Kind: ObjectiveScareAll, Target: 5},
			{Name: "The Skeptic", Description: "Make Dr. Crane believe", Kind: ObjectiveScareSpecific, Target: 1, MortalName: "Dr. Crane", Optional: true},
			{Name: "Hoarder", Description: "Hold 300 plasm across your ghosts", Kind: ObjectiveCollectPlasm, Target: 300, Optional: true},
		},
	}
}
