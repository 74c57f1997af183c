// cmd/hauntty/main.go
package main

import (
	"context"
	"flag"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog/log"

	"go-haunted-house/internal/app"
	"go-haunted-house/internal/defs"
	"go-haunted-house/internal/tui"
)

func main() {
	configPath := flag.String("config", "haunt.toml", "settings file (optional)")
	logPath := flag.String("log", "", "write logs to this file instead of discarding them")
	tick := flag.Duration("tick", 50*time.Millisecond, "simulation step")
	flag.Parse()

	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			log.Fatal().Err(err).Msg("open log file")
		}
		defer f.Close()
		logOut = f
	}

	settings, err := app.Setup("hauntty", *configPath, logOut)
	if err != nil {
		log.Fatal().Err(err).Msg("startup failed")
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("create screen")
	}
	if err := screen.Init(); err != nil {
		log.Fatal().Err(err).Msg("init screen")
	}
	defer screen.Fini()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	viewer := tui.NewViewer(screen, app.NewGame(settings, defs.HauntedManor()))
	if err := viewer.Run(ctx, *tick); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("viewer stopped")
	}
}
