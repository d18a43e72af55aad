package main

import (
	"os"

	"github.com/tomz197/invaders/internal/config"
	"github.com/tomz197/invaders/internal/loop"
	"github.com/tomz197/invaders/internal/window"
)

func main() {
	logger := config.NewLogger(os.Stderr, "invaders")

	settings, err := config.FromEnv()
	if err != nil {
		logger.Fatal("invalid configuration", "err", err)
	}

	game := loop.NewGame(settings, loop.Options{Logger: logger})
	if err := window.Run(game); err != nil {
		logger.Fatal("window failed", "err", err)
	}
}
