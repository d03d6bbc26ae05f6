package notifier

import (
	"context"

	"hipchat/internal/api"
)

// RoomNotifier sends notifications to a single room with fixed message
// options.
type RoomNotifier struct {
	Client  api.HipChatClient
	Room    string
	Options api.RoomMessageOptions
}

func NewRoomNotifier(client api.HipChatClient, room string, opts api.RoomMessageOptions) *RoomNotifier {
	return &RoomNotifier{
		Client:  client,
		Room:    room,
		Options: opts,
	}
}

func (r *RoomNotifier) Notify(ctx context.Context, message string) error {
	_, err := r.Client.NotifyRoom(ctx, r.Room, message, r.Options)
	return err
}
