// Package notify delivers short user-facing notifications. The notifier is
// carried on the request context so rules code can warn whoever triggered it.
package notify

import (
	"context"
	"log"
)

//go:generate mockgen -destination=mock/mock_notifier.go -package=mocknotify github.com/KirkDiggler/projectfu-discord/internal/notify Notifier

// Level is the severity of a notification
type Level string

const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Notifier shows a localized notification to the current user
type Notifier interface {
	Notify(ctx context.Context, level Level, key string) error
}

type contextKey struct{}

// WithNotifier returns a context carrying n
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, contextKey{}, n)
}

// FromContext returns the context's notifier, or a logging notifier
func FromContext(ctx context.Context) Notifier {
	if n, ok := ctx.Value(contextKey{}).(Notifier); ok && n != nil {
		return n
	}
	return LogNotifier{}
}

// Info notifies through the context's notifier, logging failures
func Info(ctx context.Context, key string) {
	send(ctx, LevelInfo, key)
}

// Warn notifies through the context's notifier, logging failures
func Warn(ctx context.Context, key string) {
	send(ctx, LevelWarning, key)
}

// Error notifies through the context's notifier, logging failures
func Error(ctx context.Context, key string) {
	send(ctx, LevelError, key)
}

func send(ctx context.Context, level Level, key string) {
	if err := FromContext(ctx).Notify(ctx, level, key); err != nil {
		log.Printf("Notify: failed to send %s notification %s: %v", level, key, err)
	}
}

// LogNotifier writes notifications to the log
type LogNotifier struct{}

func (LogNotifier) Notify(_ context.Context, level Level, key string) error {
	log.Printf("Notify [%s]: %s", level, key)
	return nil
}
