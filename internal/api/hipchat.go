package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultServer is the API host used when no override is configured.
const DefaultServer = "api.hipchat.com"

// DefaultServerEnv is the environment variable consulted for an API
// host override when NewHipChatAPI is given an empty server.
const DefaultServerEnv = "HIPCHAT_API_SERVER"

// HipChatAPI is a client for the HipChat v2 REST API.
// It posts room notifications and private user messages, authenticating
// each request with a bearer token drawn from its TokenSource.
type HipChatAPI struct {
	// BaseURL is the v2 API root (https://api.hipchat.com/v2).
	// Tests point it at a local server.
	BaseURL string

	// Tokens supplies the bearer token for each request. When no token
	// is available the client logs messages instead of sending them,
	// so callers keep working in environments without API access.
	Tokens TokenSource

	// HTTPClient executes the requests. Defaults to DefaultHTTPClient.
	HTTPClient *http.Client

	// Logger receives client diagnostics, most notably the messages
	// that were logged instead of sent.
	Logger zerolog.Logger
}

// NewHipChatAPI creates a HipChat API client for the given server host
// (e.g. "api.hipchat.com"). An empty server falls back to the
// HIPCHAT_API_SERVER environment variable, then to DefaultServer.
// A nil tokens source reads HIPCHAT_API_TOKEN on every request.
func NewHipChatAPI(server string, tokens TokenSource) *HipChatAPI {
	if server == "" {
		server = os.Getenv(DefaultServerEnv)
	}
	if server == "" {
		server = DefaultServer
	}
	if tokens == nil {
		tokens = EnvTokens(DefaultTokenEnv)
	}
	return &HipChatAPI{
		BaseURL:    "https://" + server + "/v2",
		Tokens:     tokens,
		HTTPClient: DefaultHTTPClient,
		Logger:     log.Logger,
	}
}

// NotifyRoom posts a notification to a room.
//
// The message is required and truncated to MaxMessageChars characters;
// the label is truncated to MaxLabelChars. Invalid colors and formats
// are rejected with a ValidationError before any request is made.
//
// Returns:
//   - The raw successful response
//   - A RemoteError when the API reports a documented error status,
//     a ContractError when the response breaks the API contract, or
//     the transport error exactly as the HTTP client returned it
//
// When no API token is configured the message is logged at debug level
// and both return values are nil.
func (c *HipChatAPI) NotifyRoom(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	if opts.Color == "" {
		opts.Color = DefaultColor
	}
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	if message == "" {
		return nil, &ValidationError{Reason: "message is required"}
	}
	if !opts.Color.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid color %q", opts.Color)}
	}
	if !opts.Format.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid message format %q", opts.Format)}
	}

	payload := roomNotification{
		Message: truncateChars(message, MaxMessageChars),
		Color:   opts.Color,
		Notify:  opts.Notify,
		Format:  opts.Format,
		From:    truncateChars(opts.Label, MaxLabelChars),
	}
	return c.send(ctx, "/room/"+url.PathEscape(room)+"/notification", message, payload)
}

// NotifyUser sends a private message to a user, addressed by id, email
// or @mention name. User messages carry no color or label.
//
// Validation, truncation, the no-token behavior and the returned error
// kinds match NotifyRoom.
func (c *HipChatAPI) NotifyUser(ctx context.Context, user, message string, opts UserMessageOptions) (*Response, error) {
	if opts.Format == "" {
		opts.Format = DefaultFormat
	}

	if message == "" {
		return nil, &ValidationError{Reason: "message is required"}
	}
	if !opts.Format.Valid() {
		return nil, &ValidationError{Reason: fmt.Sprintf("invalid message format %q", opts.Format)}
	}

	payload := userMessage{
		Message: truncateChars(message, MaxMessageChars),
		Notify:  opts.Notify,
		Format:  opts.Format,
	}
	return c.send(ctx, "/user/"+url.PathEscape(user)+"/message", message, payload)
}

// send posts the JSON payload to the API path and maps the response.
// Transport failures are returned as they come from the HTTP client.
func (c *HipChatAPI) send(ctx context.Context, path, message string, payload any) (*Response, error) {
	token, ok := c.tokenSource().Token()
	if !ok {
		c.Logger.Debug().
			Str("path", path).
			Str("message", message).
			Msg("no api token configured, logging message instead of sending")
		return nil, nil
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return &Response{StatusCode: resp.StatusCode, Body: respBody}, nil
	}
	return nil, responseError(resp.StatusCode, respBody)
}

func (c *HipChatAPI) tokenSource() TokenSource {
	if c.Tokens != nil {
		return c.Tokens
	}
	return EnvTokens(DefaultTokenEnv)
}

func (c *HipChatAPI) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return DefaultHTTPClient
}

// Yellow posts a yellow room notification, overriding any color in opts.
func (c *HipChatAPI) Yellow(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	opts.Color = ColorYellow
	return c.NotifyRoom(ctx, room, message, opts)
}

// Gray posts a gray room notification, overriding any color in opts.
func (c *HipChatAPI) Gray(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	opts.Color = ColorGray
	return c.NotifyRoom(ctx, room, message, opts)
}

// Grey is an alias for Gray.
func (c *HipChatAPI) Grey(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	return c.Gray(ctx, room, message, opts)
}

// Green posts a green room notification, overriding any color in opts.
func (c *HipChatAPI) Green(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	opts.Color = ColorGreen
	return c.NotifyRoom(ctx, room, message, opts)
}

// Purple posts a purple room notification, overriding any color in opts.
func (c *HipChatAPI) Purple(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	opts.Color = ColorPurple
	return c.NotifyRoom(ctx, room, message, opts)
}

// Red posts a red room notification, overriding any color in opts.
func (c *HipChatAPI) Red(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error) {
	opts.Color = ColorRed
	return c.NotifyRoom(ctx, room, message, opts)
}
