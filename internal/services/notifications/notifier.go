// Package notifications delivers in-app notifications produced by the
// rating and lifecycle services and exposes the user-facing notification
// inbox. Delivery is always a post-commit side effect: a failed notification
// never rolls back the operation that produced it.
package notifications

import (
	"context"
	"log"
)

// Notifier is the collaborator contract the core services depend on
type Notifier interface {
	Notify(ctx context.Context, userID uint, kind, title, message, link string) error
}

// NoopNotifier discards notifications; used in tests and when the
// notification store is disabled.
type NoopNotifier struct{}

var _ Notifier = (*NoopNotifier)(nil)

func (NoopNotifier) Notify(ctx context.Context, userID uint, kind, title, message, link string) error {
	return nil
}

// LoggingNotifier wraps a Notifier and swallows failures after logging.
// Services use this at the call site so notification errors stay invisible
// to callers by construction rather than by convention.
type LoggingNotifier struct {
	Next Notifier
}

var _ Notifier = (*LoggingNotifier)(nil)

func (n LoggingNotifier) Notify(ctx context.Context, userID uint, kind, title, message, link string) error {
	if err := n.Next.Notify(ctx, userID, kind, title, message, link); err != nil {
		log.Printf("[ERROR] Failed to notify user %d (%s): %v", userID, kind, err)
	}
	return nil
}
