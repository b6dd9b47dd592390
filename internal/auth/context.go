package auth

import "context"

// contextKey is a private type so the user-id value cannot collide with
// context keys from other packages.
type contextKey struct{}

var userIDKey contextKey

// WithUserID returns a context carrying the authenticated user's id.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

// UserIDFrom extracts the authenticated user's id set by the session guard.
func UserIDFrom(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}
