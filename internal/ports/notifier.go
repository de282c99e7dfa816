package ports

import "context"

// Notifier tells an account holder that something happened.
type Notifier interface {
	Send(ctx context.Context, recipient, message string) error
}
