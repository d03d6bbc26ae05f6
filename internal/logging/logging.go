package logging

import (
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const consoleTimeFormat = "2006-01-02T15:04:05.000Z07:00"

// Setup configures the global logger for human readable console output
// at the given level. Unknown level names fall back to info.
func Setup(level string) {
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: consoleTimeFormat}
	log.Logger = zerolog.New(writer).
		Level(parseLevel(level, zerolog.InfoLevel)).
		With().
		Timestamp().
		Logger()
}

// parseLevel maps a level name to a zerolog level, accepting the usual
// aliases (warning for warn).
func parseLevel(s string, def zerolog.Level) zerolog.Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN", "WARNING":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	case "FATAL":
		return zerolog.FatalLevel
	default:
		return def
	}
}
