package queue

import "context"

type ctxKey struct{}

// WithContext stores a Manager in the context and returns a new derived
// context containing it.
func WithContext(ctx context.Context, manager *Manager) context.Context {
	return context.WithValue(ctx, ctxKey{}, manager)
}

// FromContext retrieves the Manager stored in ctx by WithContext. Unlike a
// zero-value constructor, there is no sensible default Manager to fall back
// to (NewManager requires a CommandFunc), so the second return value
// reports whether one was found.
func FromContext(ctx context.Context) (*Manager, bool) {
	manager, ok := ctx.Value(ctxKey{}).(*Manager)
	return manager, ok
}
