package logging

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected zerolog.Level
	}{
		{name: "trace", value: "trace", expected: zerolog.TraceLevel},
		{name: "debug", value: "debug", expected: zerolog.DebugLevel},
		{name: "info", value: "info", expected: zerolog.InfoLevel},
		{name: "warn", value: "warn", expected: zerolog.WarnLevel},
		{name: "warning alias", value: "warning", expected: zerolog.WarnLevel},
		{name: "error", value: "error", expected: zerolog.ErrorLevel},
		{name: "fatal", value: "fatal", expected: zerolog.FatalLevel},
		{name: "uppercase", value: "DEBUG", expected: zerolog.DebugLevel},
		{name: "surrounding whitespace", value: "  info  ", expected: zerolog.InfoLevel},
		{name: "empty uses default", value: "", expected: zerolog.InfoLevel},
		{name: "unknown uses default", value: "loud", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, parseLevel(tt.value, zerolog.InfoLevel))
		})
	}
}

func TestSetup(t *testing.T) {
	old := log.Logger
	defer func() { log.Logger = old }()

	Setup("debug")
	assert.Equal(t, zerolog.DebugLevel, log.Logger.GetLevel())

	Setup("warning")
	assert.Equal(t, zerolog.WarnLevel, log.Logger.GetLevel())

	Setup("not-a-level")
	assert.Equal(t, zerolog.InfoLevel, log.Logger.GetLevel())
}
