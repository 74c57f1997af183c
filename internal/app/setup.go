// internal/app/setup.go
package app

import (
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/logging"
)

// Setup loads settings from configPath and the environment, installs the
// global logger for name writing to logOut and applies definition overrides
// from the configured defs directory.
func Setup(name, configPath string, logOut io.Writer) (config.Settings, error) {
	settings, err := config.Load(configPath)
	if err != nil {
		return config.Settings{}, err
	}
	logging.Init(name, settings.LogLevel, logOut)

	if settings.DefsDir != "" {
		if err := defs.LoadDir(settings.DefsDir); err != nil {
			return config.Settings{}, fmt.Errorf("load definitions from %s: %w", settings.DefsDir, err)
		}
	}
	log.Info().
		Str("config", configPath).
		Float64("time_scale", settings.TimeScale).
		Int64("seed", settings.Seed).
		Msg("settings loaded")
	return settings, nil
}
