package engine

import "context"

// Store is the durable key/value storage the task list is mirrored to.
type Store interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Put(ctx context.Context, key string, value string) error
}

// Tracker receives analytics events. Implementations must not block for long;
// errors are logged and otherwise ignored.
type Tracker interface {
	Track(ctx context.Context, name string, attrs map[string]string) error
}

// Notifier shows transient messages to the user.
type Notifier interface {
	Notify(n Notice)
}

// Confirmer asks the user to approve a destructive operation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// ConfirmFunc adapts a function to Confirmer.
type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

var (
	// Confirmed approves every prompt.
	Confirmed Confirmer = ConfirmFunc(func(string) bool { return true })
	// Declined rejects every prompt.
	Declined Confirmer = ConfirmFunc(func(string) bool { return false })
)

type notifierKey struct{}

// WithNotifier returns a context whose service calls report their notices to
// n instead of the Notifier the service was built with.
func WithNotifier(ctx context.Context, n Notifier) context.Context {
	return context.WithValue(ctx, notifierKey{}, n)
}

func notifierFrom(ctx context.Context) (Notifier, bool) {
	n, ok := ctx.Value(notifierKey{}).(Notifier)
	return n, ok && n != nil
}

// NotifyFunc adapts a function to Notifier.
type NotifyFunc func(n Notice)

func (f NotifyFunc) Notify(n Notice) { f(n) }

type nopTracker struct{}

func (nopTracker) Track(context.Context, string, map[string]string) error { return nil }

type nopNotifier struct{}

func (nopNotifier) Notify(Notice) {}
