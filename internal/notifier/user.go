package notifier

import (
	"context"

	"hipchat/internal/api"
)

// UserNotifier sends private messages to a single user with fixed
// message options.
type UserNotifier struct {
	Client  api.HipChatClient
	User    string
	Options api.UserMessageOptions
}

func NewUserNotifier(client api.HipChatClient, user string, opts api.UserMessageOptions) *UserNotifier {
	return &UserNotifier{
		Client:  client,
		User:    user,
		Options: opts,
	}
}

func (u *UserNotifier) Notify(ctx context.Context, message string) error {
	_, err := u.Client.NotifyUser(ctx, u.User, message, u.Options)
	return err
}
