package main

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/loop"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "invaders: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, err := config.FromEnv()
	if err != nil {
		return err
	}

	// stdout is the game screen, so logs go to a file or nowhere.
	logOut, closeLog, err := config.OpenLogFile()
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer closeLog()
	logger := config.NewLogger(logOut, "invaders")

	fd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("failed to enable raw mode: %w", err)
	}
	defer func() {
		_ = term.Restore(fd, oldState)
	}()

	screen := draw.NewTerminal(os.Stdout, draw.DefaultTermSizeFunc, settings.Screen.Width, settings.Screen.Height)
	if err := screen.Begin(); err != nil {
		return err
	}
	defer screen.End()

	game := loop.NewGame(settings, loop.Options{Logger: logger})
	stream := input.StartStream(bufio.NewReader(os.Stdin))

	if err := loop.Run(context.Background(), game, stream, screen, loop.SystemClock()); err != nil {
		logger.Error("game error", "err", err)
		return err
	}
	return nil
}
