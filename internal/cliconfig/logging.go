package cliconfig

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/bft-labs/d12pack/pkg/log"
)

// Logger returns a console logger on stderr at info level.
func Logger() zerolog.Logger {
	l, _ := log.NewConsoleLogger(os.Stderr, "info")
	return l
}

// LoggerForLevel returns a console logger on stderr at the given level.
func LoggerForLevel(level string) (zerolog.Logger, error) {
	return log.NewConsoleLogger(os.Stderr, level)
}
