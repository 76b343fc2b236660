package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"retry-snake/game"
	"retry-snake/game/clock"
	"retry-snake/game/manager"
	"retry-snake/spectate"
	"retry-snake/ui"
)

const (
	windowWidth  = 960
	windowHeight = 640
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	opts, err := parseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "retry-snake: %v\n", err)
		return 2
	}

	if logFile := setupLogging(opts.debug); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := opts.gameConfig()
	if err != nil {
		if isConfigError(err) {
			log.Printf("startup: %v", err)
		}
		fmt.Fprintf(os.Stderr, "retry-snake: %v\n", err)
		return 1
	}

	board := ui.NewBoard(cfg.Grid)
	renderers := game.Renderers{board}
	sinks := []manager.StatusSink{board}

	if !opts.mute {
		cues, err := ui.NewAudioCues()
		if err != nil {
			log.Printf("audio disabled: %v", err)
		} else {
			defer cues.Close()
			sinks = append(sinks, cues)
		}
	}

	if opts.spectate != "" {
		hub := spectate.NewHub(cfg.Grid)
		srv, err := spectate.Listen(opts.spectate, hub)
		if err != nil {
			fmt.Fprintf(os.Stderr, "retry-snake: %v\n", err)
			return 1
		}
		defer srv.Close()
		renderers = append(renderers, hub)
		sinks = append(sinks, hub)
	}

	g := game.NewGame(cfg, clock.NewTickerScheduler(), renderers, sinks...)
	defer g.Session.Close()

	switch opts.frontend {
	case frontendTerminal:
		term, err := ui.OpenTerminal(board, g)
		if err != nil {
			fmt.Fprintf(os.Stderr, "retry-snake: %v\n", err)
			return 1
		}
		term.Run()
		term.Close()
	default:
		ui.RunDesktop(g, board, windowWidth, windowHeight)
	}

	st := g.Session.Status()
	log.Printf("session %s closed after %.0fs: score %d, failures %d/%d, %d lives",
		g.UUID, g.ElapsedTime(), st.Score, st.Failures, st.MaxFailures, g.Stats.GetLivesPlayed())
	return 0
}
