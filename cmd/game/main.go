// cmd/game/main.go
package main

import (
	"flag"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/app"
	"go-haunted-house/internal/audio"
	"go-haunted-house/internal/audio/device"
	"go-haunted-house/internal/config"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/state"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func main() {
	configPath := flag.String("config", "haunt.toml", "settings file (optional)")
	volume := flag.Float64("volume", 0.5, "sound volume, 0..1")
	flag.Parse()

	settings, err := app.Setup("haunted-house", *configPath, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	var observers []state.Observer
	if settings.Audio {
		out, err := device.Open(audio.DefaultSampleRate)
		if err != nil {
			// без звука играть можно
			log.Warn().Err(err).Msg("audio disabled")
		} else {
			defer out.Close()
			observers = append(observers, audio.NewSink(out, audio.DefaultSampleRate, *volume))
		}
	}

	level := defs.HauntedManor()
	sm := state.NewStateMachine() // Создаём машину состояний
	if settings.StartInMenu {
		sm.SetState(state.NewMenuState(sm, settings, level, observers...))
	} else {
		sm.SetState(state.NewGameState(sm, settings, level, observers...))
	}
	game := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}
	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Haunted House")
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal().Err(err).Msg("game loop failed")
	}
}
