package notifier

import "context"

// Notifier sends a message to a fixed destination.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}
