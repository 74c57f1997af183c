// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// LoadMortalDefinitions reads a JSON array of mortal definitions and replaces
// the matching entries of MortalLibrary.
func LoadMortalDefinitions(path string) error {
	var mortalDefs []MortalDefinition
	if err := readJSON(path, "mortal", &mortalDefs); err != nil {
		return err
	}
	for _, def := range mortalDefs {
		if def.MaxFear <= 0 || def.ScareThreshold <= 0 {
			return fmt.Errorf("mortal definition %s: max_fear and scare_threshold must be positive", def.Category)
		}
		MortalLibrary[def.Category] = def
	}
	log.Info().Int("count", len(mortalDefs)).Str("path", path).Msg("loaded mortal definitions")
	return nil
}

// LoadGhostDefinitions reads a JSON array of ghost definitions and replaces
// the matching entries of GhostLibrary.
func LoadGhostDefinitions(path string) error {
	var ghostDefs []GhostDefinition
	if err := readJSON(path, "ghost", &ghostDefs); err != nil {
		return err
	}
	for _, def := range ghostDefs {
		if def.MaxPlasm <= 0 {
			return fmt.Errorf("ghost definition %s: max_plasm must be positive", def.Category)
		}
		GhostLibrary[def.Category] = def
	}
	log.Info().Int("count", len(ghostDefs)).Str("path", path).Msg("loaded ghost definitions")
	return nil
}

// LoadAnchorDefinitions reads a JSON array of anchor definitions and replaces
// the matching entries of AnchorLibrary.
func LoadAnchorDefinitions(path string) error {
	var anchorDefs []AnchorDefinition
	if err := readJSON(path, "anchor", &anchorDefs); err != nil {
		return err
	}
	for _, def := range anchorDefs {
		AnchorLibrary[def.Category] = def
	}
	log.Info().Int("count", len(anchorDefs)).Str("path", path).Msg("loaded anchor definitions")
	return nil
}

// LoadHauntDefinitions reads a JSON array of haunting effects into HauntLibrary.
func LoadHauntDefinitions(path string) error {
	var hauntDefs []HauntDefinition
	if err := readJSON(path, "haunt", &hauntDefs); err != nil {
		return err
	}
	for _, def := range hauntDefs {
		if def.ID == "" {
			return fmt.Errorf("haunt definition without id in %s", path)
		}
		HauntLibrary[def.ID] = def
	}
	log.Info().Int("count", len(hauntDefs)).Str("path", path).Msg("loaded haunt definitions")
	return nil
}

// LoadDir applies every known definitions file present in dir. Missing files
// keep the built-in tables.
func LoadDir(dir string) error {
	loaders := []struct {
		file string
		load func(string) error
	}{
		{"mortals.json", LoadMortalDefinitions},
		{"ghosts.json", LoadGhostDefinitions},
		{"anchors.json", LoadAnchorDefinitions},
		{"haunts.json", LoadHauntDefinitions},
	}
	for _, l := range loaders {
		path := filepath.Join(dir, l.file)
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := l.load(path); err != nil {
			return err
		}
	}
	return nil
}

func readJSON(path, what string, out any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s definitions file: %w", what, err)
	}
	if err := json.Unmarshal(file, out); err != nil {
		return fmt.Errorf("failed to unmarshal %s definitions: %w", what, err)
	}
	return nil
}
