package logging

import (
	"github.com/rs/zerolog"

	"hipchat/internal/api"
)

// defaultHookColors returns the per-level notification colors.
func defaultHookColors() map[zerolog.Level]api.Color {
	return map[zerolog.Level]api.Color{
		zerolog.TraceLevel: api.ColorGray,
		zerolog.DebugLevel: api.ColorGray,
		zerolog.InfoLevel:  api.ColorYellow,
		zerolog.WarnLevel:  api.ColorPurple,
		zerolog.ErrorLevel: api.ColorRed,
		zerolog.FatalLevel: api.ColorRed,
		zerolog.PanicLevel: api.ColorRed,
	}
}

// HookOptions configures a Hook. The zero value sends every leveled
// event as an HTML message with the default colors and no label.
type HookOptions struct {
	// Label overrides the sender name on the notifications.
	Label string

	// Notify triggers a room notification for each event.
	Notify bool

	// Format selects text or html rendering (defaults to html).
	Format api.MessageFormat

	// MinLevel is the minimum event level that will be sent. Nil
	// imposes no floor, so trace events are sent too. Events logged
	// without a level bypass it.
	MinLevel *zerolog.Level

	// Colors overrides per-level notification colors. Levels not
	// listed keep their defaults (trace and debug gray, info yellow,
	// warn purple, error and above red); levels unknown to both maps
	// fall back to yellow.
	Colors map[zerolog.Level]api.Color
}

// Hook is a zerolog hook that mirrors log events to a room, colored by
// event level. Attach it to a logger the client itself does not log
// through, otherwise a failing send could feed back into the hook.
type Hook struct {
	client   api.HipChatClient
	room     string
	label    string
	notify   bool
	format   api.MessageFormat
	minLevel zerolog.Level
	colors   map[zerolog.Level]api.Color
}

// NewHook creates a Hook posting to the given room. opts may be nil.
func NewHook(client api.HipChatClient, room string, opts *HookOptions) *Hook {
	if opts == nil {
		opts = &HookOptions{}
	}
	colors := defaultHookColors()
	for level, color := range opts.Colors {
		colors[level] = color
	}
	// Nil resolves to trace, the same floor zerolog.New gives loggers
	minLevel := zerolog.TraceLevel
	if opts.MinLevel != nil {
		minLevel = *opts.MinLevel
	}
	return &Hook{
		client:   client,
		room:     room,
		label:    opts.Label,
		notify:   opts.Notify,
		format:   opts.Format,
		minLevel: minLevel,
		colors:   colors,
	}
}

// Run implements zerolog.Hook. Events without a message are skipped
// and send failures are dropped.
func (h *Hook) Run(e *zerolog.Event, level zerolog.Level, message string) {
	if level == zerolog.Disabled || message == "" {
		return
	}
	if level != zerolog.NoLevel && level < h.minLevel {
		return
	}
	_, _ = h.client.NotifyRoom(e.GetCtx(), h.room, message, api.RoomMessageOptions{
		Color:  h.color(level),
		Label:  h.label,
		Notify: h.notify,
		Format: h.format,
	})
}

func (h *Hook) color(level zerolog.Level) api.Color {
	if c, ok := h.colors[level]; ok {
		return c
	}
	return api.ColorYellow
}

// Ensure Hook implements zerolog.Hook interface
var _ zerolog.Hook = (*Hook)(nil)
