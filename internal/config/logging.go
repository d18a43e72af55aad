package config

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
)

// Logging environment variables.
const (
	EnvLogLevel = "INVADERS_LOG_LEVEL"
	EnvLogFile  = "INVADERS_LOG_FILE"
)

// NewLogger creates a logger writing to w at the level named by
// INVADERS_LOG_LEVEL (info when unset or unknown).
func NewLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(GetEnv(EnvLogLevel, "info"))
	if err != nil {
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

// OpenLogFile opens the file named by INVADERS_LOG_FILE for appending.
// With the variable unset it returns io.Discard and a no-op closer.
func OpenLogFile() (io.Writer, func() error, error) {
	path := GetEnv(EnvLogFile, "")
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
