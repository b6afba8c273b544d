// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// New builds the root logger. Level falls back to info when the
// configured value does not parse.
func New(level string) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}

	zerolog.TimeFieldFormat = time.RFC3339
	logger := zerolog.New(os.Stderr).
		Level(parsed).
		With().
		Timestamp().
		Logger()

	// Packages without an injected logger use the global one.
	log.Logger = logger
	return logger
}
