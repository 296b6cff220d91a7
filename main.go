package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"snakey-game/game"
	"snakey-game/game/types"
	"snakey-game/ui"
	"snakey-game/ui/terminal"
	"snakey-game/ui/window"
)

const (
	logDir      = "logs"
	logFileName = "snakey.log"
)

var (
	backendFlag   = flag.String("backend", "window", "Where to play: window or terminal")
	selfCollision = flag.Bool("self-collision", false, "End the game when the snake runs into its own tail")
	seedFlag      = flag.Uint64("seed", 0, "Food placement seed (0 = random)")
	debugFlag     = flag.Bool("debug", false, "Write a debug log to "+filepath.Join(logDir, logFileName))
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg := types.DefaultConfig()
	cfg.SelfCollision = *selfCollision
	cfg.Seed = *seedFlag

	summary, err := run(cfg, *backendFlag)
	if err != nil {
		log.Printf("fatal: %v", err)
		fmt.Fprintf(os.Stderr, "snakey: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(summary)
}

// run plays one session and returns its summary line. Only setup failures
// are returned as errors; dying is a normal end.
func run(cfg types.Config, backendName string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", errors.Wrap(err, "invalid configuration")
	}

	backend, err := openBackend(cfg, backendName)
	if err != nil {
		return "", err
	}
	defer backend.Close()

	g := game.NewGame(cfg)
	outcome, err := ui.NewLoop(backend).Run(context.Background(), g)
	if err != nil {
		return "", errors.Wrap(err, "game loop")
	}
	log.Printf("game finished: %s", outcome)
	return g.Summary(), nil
}

func openBackend(cfg types.Config, name string) (ui.Backend, error) {
	switch name {
	case "window":
		w, err := window.Open(cfg)
		if err != nil {
			return nil, errors.Wrap(err, "opening window")
		}
		return w, nil
	case "terminal":
		t, err := terminal.Open()
		if err != nil {
			return nil, errors.Wrap(err, "opening terminal")
		}
		return t, nil
	}
	return nil, errors.Errorf("unknown backend %q", name)
}

// setupLogging sends log output to a file when debug is set and discards it
// otherwise, so nothing is printed over the game.
func setupLogging(debug bool) *os.File {
	if !debug {
		log.SetOutput(io.Discard)
		return nil
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := os.OpenFile(filepath.Join(logDir, logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)
	return f
}
