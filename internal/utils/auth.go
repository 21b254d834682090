package utils

import "context"

// SetUserContext stores the authenticated seller on the context (called by middleware).
func SetUserContext(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// GetUserIDFromContext retrieves the seller id set by the auth middleware.
func GetUserIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok && id != ""
}
