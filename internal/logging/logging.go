// Package logging configures the service-wide structured logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the root logger for the service. Development environments
// get a human-readable console writer; everything else logs JSON.
func New(environment string) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	if environment == "development" {
		writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
		return zerolog.New(writer).With().Timestamp().Str("service", "habit-tracker").Logger()
	}

	return zerolog.New(os.Stderr).With().Timestamp().Str("service", "habit-tracker").Logger()
}
