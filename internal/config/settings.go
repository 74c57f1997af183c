// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Settings holds the runtime knobs of a session. Values come from an optional
// TOML file and are then overridden by HAUNT_* environment variables.
type Settings struct {
	StartingPlasm    int     `toml:"starting_plasm" env:"STARTING_PLASM"`
	MaxPlasm         int     `toml:"max_plasm" env:"MAX_PLASM"`
	TimeScale        float64 `toml:"time_scale" env:"TIME_SCALE"`
	Seed             int64   `toml:"seed" env:"SEED"`
	LogLevel         string  `toml:"log_level" env:"LOG_LEVEL"`
	DefsDir          string  `toml:"defs_dir" env:"DEFS_DIR"`
	Audio            bool    `toml:"audio" env:"AUDIO"`
	MissionTimeLimit float64 `toml:"mission_time_limit" env:"MISSION_TIME_LIMIT"`
	StartInMenu      bool    `toml:"start_in_menu" env:"START_IN_MENU"`
}

// Default returns the settings used when no file is present.
func Default() Settings {
	return Settings{
		StartingPlasm:    DefaultStartingPlasm,
		MaxPlasm:         DefaultMaxPlasm,
		TimeScale:        1,
		LogLevel:         "info",
		Audio:            true,
		MissionTimeLimit: 300,
	}
}

// Load reads path (a missing file is not an error) and applies env overrides.
func Load(path string) (Settings, error) {
	cfg := Default()
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("config parse failed (%s): %w", path, err)
		}
	}
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "HAUNT_"}); err != nil {
		return Settings{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	if s.MaxPlasm <= 0 {
		return fmt.Errorf("max_plasm must be positive, got %d", s.MaxPlasm)
	}
	if s.StartingPlasm < 0 || s.StartingPlasm > s.MaxPlasm {
		return fmt.Errorf("starting_plasm %d out of range [0, %d]", s.StartingPlasm, s.MaxPlasm)
	}
	if s.TimeScale <= 0 {
		return fmt.Errorf("time_scale must be positive, got %v", s.TimeScale)
	}
	if s.MissionTimeLimit < 0 {
		return fmt.Errorf("mission_time_limit must not be negative, got %v", s.MissionTimeLimit)
	}
	return nil
}
