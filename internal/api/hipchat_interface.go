package api

import "context"

// HipChatClient defines the interface for HipChat API operations.
// This allows for easy mocking in tests.
type HipChatClient interface {
	NotifyRoom(ctx context.Context, room, message string, opts RoomMessageOptions) (*Response, error)
	NotifyUser(ctx context.Context, user, message string, opts UserMessageOptions) (*Response, error)
}

// Ensure HipChatAPI implements HipChatClient interface
var _ HipChatClient = (*HipChatAPI)(nil)
