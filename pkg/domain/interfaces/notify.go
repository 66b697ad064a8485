package interfaces

import "context"

// Notifier reports pipeline outcomes to an external channel
type Notifier interface {
	Notify(ctx context.Context, text string) error
}
