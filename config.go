package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"retry-snake/game"
	"retry-snake/game/types"
)

const (
	frontendRaylib   = "raylib"
	frontendTerminal = "terminal"
)

// options are the raw command line values
type options struct {
	speed    string
	board    int
	cell     int
	seed     uint64
	frontend string
	mute     bool
	spectate string
	debug    bool
}

func parseFlags(args []string, output io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("retry-snake", flag.ContinueOnError)
	fs.SetOutput(output)

	fs.StringVar(&opts.speed, "speed", "normal", "Tick rate: slow, normal or fast")
	fs.IntVar(&opts.board, "board", types.BoardSize, "Board side in pixels")
	fs.IntVar(&opts.cell, "cell", types.CellSize, "Cell side in pixels")
	fs.Uint64Var(&opts.seed, "seed", 0, "Food placement seed (0 picks one from the clock)")
	fs.StringVar(&opts.frontend, "frontend", frontendRaylib, "Frontend: raylib or terminal")
	fs.BoolVar(&opts.mute, "mute", false, "Disable sound effects")
	fs.StringVar(&opts.spectate, "spectate", "", "Serve a read-only websocket feed on this address, e.g. :8080")
	fs.BoolVar(&opts.debug, "debug", false, "Write logs to logs/retry-snake.log")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}

// gameConfig validates opts into a session config. Geometry problems come
// back as *types.ConfigError.
func (o options) gameConfig() (game.Config, error) {
	grid, err := types.NewGrid(o.board, o.board, o.cell)
	if err != nil {
		return game.Config{}, err
	}

	speed, err := types.ParseSpeed(o.speed)
	if err != nil {
		return game.Config{}, err
	}

	switch o.frontend {
	case frontendRaylib, frontendTerminal:
	default:
		return game.Config{}, &types.ConfigError{Field: "frontend", Reason: fmt.Sprintf("unknown frontend %q", o.frontend)}
	}

	seed := o.seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return game.Config{Grid: grid, Speed: speed, Seed: seed}, nil
}

// isConfigError reports whether err came from validating the options
func isConfigError(err error) bool {
	var cfgErr *types.ConfigError
	return errors.As(err, &cfgErr)
}
