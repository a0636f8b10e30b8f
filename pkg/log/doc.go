// Package log provides a logging abstraction for d12pack components.
//
// This package defines a Logger interface that can be implemented by
// any logging library. A zerolog adapter is provided for the CLI and a
// no-op logger for tests and library callers that want silence.
//
// # Usage
//
//	logger := log.NewZerologAdapterWithLogger(zerolog.New(os.Stderr))
//	logger.Info("pack generated", log.Int("tiles", 91))
//
// Or, in tests:
//
//	logger := log.NewNoopLogger()
package log
