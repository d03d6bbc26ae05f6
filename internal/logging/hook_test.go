package logging

import (
	"io"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hipchat/internal/api"
)

func TestHook_LevelColors(t *testing.T) {
	tests := []struct {
		name  string
		level zerolog.Level
		want  api.Color
	}{
		{name: "trace is gray", level: zerolog.TraceLevel, want: api.ColorGray},
		{name: "debug is gray", level: zerolog.DebugLevel, want: api.ColorGray},
		{name: "info is yellow", level: zerolog.InfoLevel, want: api.ColorYellow},
		{name: "warn is purple", level: zerolog.WarnLevel, want: api.ColorPurple},
		{name: "error is red", level: zerolog.ErrorLevel, want: api.ColorRed},
		{name: "fatal is red", level: zerolog.FatalLevel, want: api.ColorRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &recordingClient{}
			logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", nil))

			logger.WithLevel(tt.level).Msg("something happened")

			require.Len(t, rec.opts, 1)
			assert.Equal(t, "logs", rec.rooms[0])
			assert.Equal(t, "something happened", rec.messages[0])
			assert.Equal(t, tt.want, rec.opts[0].Color)
		})
	}
}

func TestHook_PassesOptions(t *testing.T) {
	rec := &recordingClient{}
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", &HookOptions{
		Label:  "worker-7",
		Notify: true,
		Format: api.FormatText,
	}))

	logger.Info().Msg("batch done")

	require.Len(t, rec.opts, 1)
	opts := rec.opts[0]
	assert.Equal(t, "worker-7", opts.Label)
	assert.True(t, opts.Notify)
	assert.Equal(t, api.FormatText, opts.Format)
}

func TestHook_MinLevel(t *testing.T) {
	rec := &recordingClient{}
	minLevel := zerolog.WarnLevel
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", &HookOptions{
		MinLevel: &minLevel,
	}))

	logger.Trace().Msg("trace noise")
	logger.Debug().Msg("noise")
	logger.Info().Msg("more noise")
	logger.Warn().Msg("this matters")
	logger.Error().Msg("this matters too")

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "this matters", rec.messages[0])
	assert.Equal(t, "this matters too", rec.messages[1])
}

func TestHook_NilMinLevelSendsEverything(t *testing.T) {
	rec := &recordingClient{}
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", &HookOptions{}))

	logger.Trace().Msg("trace record")
	logger.Debug().Msg("debug record")

	require.Len(t, rec.messages, 2)
	assert.Equal(t, "trace record", rec.messages[0])
	assert.Equal(t, "debug record", rec.messages[1])
	assert.Equal(t, api.ColorGray, rec.opts[0].Color)
}

func TestHook_NoLevelEvents(t *testing.T) {
	rec := &recordingClient{}
	minLevel := zerolog.WarnLevel
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", &HookOptions{
		MinLevel: &minLevel,
	}))

	// Log() events carry no level: they bypass MinLevel and fall back
	// to the yellow default
	logger.Log().Msg("unleveled note")

	require.Len(t, rec.opts, 1)
	assert.Equal(t, "unleveled note", rec.messages[0])
	assert.Equal(t, api.ColorYellow, rec.opts[0].Color)
}

func TestHook_SkipsEmptyMessages(t *testing.T) {
	rec := &recordingClient{}
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", nil))

	logger.Info().Str("key", "value").Msg("")

	assert.Empty(t, rec.messages)
}

func TestHook_ColorOverrides(t *testing.T) {
	rec := &recordingClient{}
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", &HookOptions{
		Colors: map[zerolog.Level]api.Color{zerolog.ErrorLevel: api.ColorGray},
	}))

	logger.Error().Msg("quiet failure")
	logger.Warn().Msg("still default")

	require.Len(t, rec.opts, 2)
	assert.Equal(t, api.ColorGray, rec.opts[0].Color)
	assert.Equal(t, api.ColorPurple, rec.opts[1].Color)
}

func TestHook_SendFailure(t *testing.T) {
	rec := &recordingClient{err: &api.RemoteError{StatusCode: 503, Message: "Service is under maintenance"}}
	logger := zerolog.New(io.Discard).Hook(NewHook(rec, "logs", nil))

	// Send failures are swallowed, logging goes on
	assert.NotPanics(t, func() {
		logger.Error().Msg("boom")
		logger.Info().Msg("boom again")
	})
	assert.Len(t, rec.messages, 2)
}
