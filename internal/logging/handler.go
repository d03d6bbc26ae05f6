package logging

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"hipchat/internal/api"
)

// LevelCritical names the slog level conventionally used for fatal
// conditions. It maps to red, like LevelError.
const LevelCritical = slog.LevelError + 4

// defaultSlogColors returns the per-level notification colors.
func defaultSlogColors() map[slog.Level]api.Color {
	return map[slog.Level]api.Color{
		slog.LevelDebug: api.ColorGray,
		slog.LevelInfo:  api.ColorYellow,
		slog.LevelWarn:  api.ColorPurple,
		slog.LevelError: api.ColorRed,
		LevelCritical:   api.ColorRed,
	}
}

// HandlerOptions configures a Handler. The zero value sends every
// record as an HTML message with the default colors and no label.
type HandlerOptions struct {
	// Label overrides the sender name on the notifications.
	Label string

	// Notify triggers a room notification for each record.
	Notify bool

	// Format selects text or html rendering (defaults to html).
	Format api.MessageFormat

	// Level is the minimum record level that will be sent.
	// A nil Level sends every record the logger emits.
	Level slog.Leveler

	// Colors overrides per-level notification colors. Levels not
	// listed keep their defaults (debug gray, info yellow, warn
	// purple, error and critical red); levels unknown to both maps
	// fall back to yellow.
	Colors map[slog.Level]api.Color
}

// Handler is a slog.Handler that posts each record to a room, colored
// by record level. Send failures are returned from Handle for the
// benefit of direct callers; slog.Logger itself discards them, so a
// chat outage never disturbs the logging pipeline.
type Handler struct {
	client api.HipChatClient
	room   string
	label  string
	notify bool
	format api.MessageFormat
	level  slog.Leveler
	colors map[slog.Level]api.Color

	attrs  []slog.Attr
	groups []string
}

// NewHandler creates a Handler posting to the given room. opts may be nil.
func NewHandler(client api.HipChatClient, room string, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	colors := defaultSlogColors()
	for level, color := range opts.Colors {
		colors[level] = color
	}
	return &Handler{
		client: client,
		room:   room,
		label:  opts.Label,
		notify: opts.Notify,
		format: opts.Format,
		level:  opts.Level,
		colors: colors,
	}
}

// Enabled implements slog.Handler.
func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	if h.level == nil {
		return true
	}
	return level >= h.level.Level()
}

// Handle implements slog.Handler. The notification text is the record
// message followed by its attributes as key=value pairs.
func (h *Handler) Handle(ctx context.Context, r slog.Record) error {
	var b strings.Builder
	b.WriteString(r.Message)
	for _, a := range h.attrs {
		appendAttr(&b, a.Key, a.Value)
	}
	prefix := groupPrefix(h.groups)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&b, prefix+a.Key, a.Value)
		return true
	})

	_, err := h.client.NotifyRoom(ctx, h.room, b.String(), api.RoomMessageOptions{
		Color:  h.color(r.Level),
		Label:  h.label,
		Notify: h.notify,
		Format: h.format,
	})
	return err
}

// WithAttrs implements slog.Handler. Attribute keys are qualified with
// the groups open at the time of the call.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	prefix := groupPrefix(h.groups)
	clone := *h
	clone.attrs = make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	clone.attrs = append(clone.attrs, h.attrs...)
	for _, a := range attrs {
		clone.attrs = append(clone.attrs, slog.Attr{Key: prefix + a.Key, Value: a.Value})
	}
	return &clone
}

// WithGroup implements slog.Handler.
func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.groups = make([]string, 0, len(h.groups)+1)
	clone.groups = append(clone.groups, h.groups...)
	clone.groups = append(clone.groups, name)
	return &clone
}

func (h *Handler) color(level slog.Level) api.Color {
	if c, ok := h.colors[level]; ok {
		return c
	}
	return api.ColorYellow
}

func groupPrefix(groups []string) string {
	if len(groups) == 0 {
		return ""
	}
	return strings.Join(groups, ".") + "."
}

func appendAttr(b *strings.Builder, key string, v slog.Value) {
	if key == "" {
		return
	}
	b.WriteString(" ")
	b.WriteString(key)
	b.WriteString("=")
	fmt.Fprintf(b, "%v", v.Resolve().Any())
}
