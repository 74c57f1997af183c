// internal/app/level.go
package app

import (
	"image/color"
	"math"
	"slices"

	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/component"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/entity"
	"go-haunted-house/internal/types"
)

// Радиусы отрисовки в единицах мира.
const (
	ghostRadius  = 0.5
	mortalRadius = 0.45
	anchorRadius = 0.4
)

// spawnLevel places every instance of level into an empty world.
func spawnLevel(w *entity.World, level defs.LevelDefinition) {
	w.Min, w.Max = level.Min, level.Max
	w.Viewer = level.Viewer
	for _, p := range level.Exits {
		w.Exits = append(w.Exits, component.ExitMarker{Position: p})
	}

	for _, p := range level.Anchors {
		id := place(w, p.Position, config.AnchorColor, anchorRadius, '#', p.Name)
		w.Anchors[id] = component.NewAnchor(p.Name, defs.AnchorLibrary[p.Category], p.Restricted)
	}
	for _, p := range level.Ghosts {
		id := place(w, p.Position, config.GhostColor, ghostRadius, 'G', p.Name)
		w.Ghosts[id] = component.NewGhost(p.Name, defs.GhostLibrary[p.Category], p.Plasm)
	}
	for _, p := range level.Mortals {
		id := place(w, p.Position, config.MortalColor, mortalRadius, mortalGlyph(p.Category), p.Name)
		m := component.NewMortal(p.Name, defs.MortalLibrary[p.Category], slices.Clone(p.Waypoints))
		w.Mortals[id] = m
		w.Agents[id] = &component.NavAgent{Speed: m.WalkSpeed}
	}
	for _, p := range level.Interactables {
		id := place(w, p.Position, config.InteractColor, anchorRadius, '&', p.Name)
		w.Interactables[id] = &component.Interactable{
			Name:            p.Name,
			Effects:         slices.Clone(p.Effects),
			Cooldown:        p.Cooldown,
			LastInteraction: math.Inf(-1),
		}
	}
	for _, p := range level.Pickups {
		id := place(w, p.Position, config.PickupColor, float32(p.Radius), '*', "")
		w.Pickups[id] = &component.PlasmPickup{Amount: p.Amount, Radius: p.Radius}
	}

	log.Info().
		Str("level", level.Name).
		Int("ghosts", len(w.Ghosts)).
		Int("mortals", len(w.Mortals)).
		Int("anchors", len(w.Anchors)).
		Msg("level spawned")
}

func place(w *entity.World, at types.Vec3, c color.RGBA, radius float32, glyph rune, label string) types.EntityID {
	id := w.NewEntity()
	w.Positions[id] = &component.Position{Vec3: at}
	w.Renderables[id] = &component.Renderable{Color: c, Radius: radius, Glyph: glyph, Label: label}
	return id
}

func mortalGlyph(c defs.MortalCategory) rune {
	switch c {
	case defs.Child:
		return 'c'
	case defs.Adult:
		return 'a'
	case defs.Elderly:
		return 'e'
	case defs.Skeptic:
		return 's'
	case defs.Believer:
		return 'b'
	}
	return 'm'
}
