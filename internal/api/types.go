package api

// Color is the background color of a room notification.
// The API accepts a fixed set of values; anything else is rejected
// client-side before a request is made.
type Color string

const (
	ColorYellow Color = "yellow"
	ColorGreen  Color = "green"
	ColorRed    Color = "red"
	ColorPurple Color = "purple"
	ColorGray   Color = "gray"
	ColorRandom Color = "random"
)

// DefaultColor is applied when RoomMessageOptions carries no color.
const DefaultColor = ColorYellow

// Valid reports whether c is a color the API accepts.
func (c Color) Valid() bool {
	switch c {
	case ColorYellow, ColorGreen, ColorRed, ColorPurple, ColorGray, ColorRandom:
		return true
	}
	return false
}

// MessageFormat controls how the API renders a message body.
type MessageFormat string

const (
	FormatText MessageFormat = "text"
	FormatHTML MessageFormat = "html"
)

// DefaultFormat is applied when the message options carry no format.
const DefaultFormat = FormatHTML

// Valid reports whether f is a format the API accepts.
func (f MessageFormat) Valid() bool {
	return f == FormatText || f == FormatHTML
}

// Size limits enforced by the API. Longer values are truncated
// client-side rather than rejected.
const (
	// MaxMessageChars is the maximum message length in characters.
	MaxMessageChars = 10000

	// MaxLabelChars is the maximum sender label length in characters.
	MaxLabelChars = 64
)

// RoomMessageOptions are the optional parameters of a room notification.
// The zero value sends a yellow, non-notifying HTML message with no label.
type RoomMessageOptions struct {
	// Color is the notification background color (defaults to yellow).
	Color Color

	// Label overrides the sender name shown next to the message.
	// Truncated to MaxLabelChars characters.
	Label string

	// Notify triggers a user notification (sound, popup) in the room.
	Notify bool

	// Format selects text or html rendering (defaults to html).
	Format MessageFormat
}

// UserMessageOptions are the optional parameters of a private user
// message. User messages carry no color or label.
type UserMessageOptions struct {
	// Notify triggers a user notification for the recipient.
	Notify bool

	// Format selects text or html rendering (defaults to html).
	Format MessageFormat
}

// Response holds a successful API reply. Room notifications typically
// answer with 204 and an empty body.
type Response struct {
	StatusCode int
	Body       []byte
}

// roomNotification is the request body for the room notification endpoint.
type roomNotification struct {
	Message string        `json:"message"`
	Color   Color         `json:"color"`
	Notify  bool          `json:"notify"`
	Format  MessageFormat `json:"message_format"`
	From    string        `json:"from"`
}

// userMessage is the request body for the private message endpoint.
type userMessage struct {
	Message string        `json:"message"`
	Notify  bool          `json:"notify"`
	Format  MessageFormat `json:"message_format"`
}

// truncateChars caps s at max characters, counting Unicode code points
// rather than bytes.
func truncateChars(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
