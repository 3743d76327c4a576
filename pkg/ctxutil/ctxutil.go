package ctxutil

import "context"

type ctxKey string

const (
	loginKey     ctxKey = "login"
	adminKey     ctxKey = "admin"
	requestIDKey ctxKey = "request_id"
)

// WithLogin stores the caller's login in the context.
func WithLogin(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, loginKey, login)
}

// LoginFromCtx extracts the caller's login from the context.
// Returns "" and false if the value is missing, empty, or the wrong type.
func LoginFromCtx(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey).(string)
	if !ok || login == "" {
		return "", false
	}
	return login, true
}

// WithAdmin stores the admin flag in the context.
func WithAdmin(ctx context.Context, admin bool) context.Context {
	return context.WithValue(ctx, adminKey, admin)
}

// IsAdminCtx reports whether the context caller has admin rights.
func IsAdminCtx(ctx context.Context) bool {
	admin, _ := ctx.Value(adminKey).(bool)
	return admin
}

// WithRequestID stores the request ID in the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx extracts the request ID from the context.
// Returns an empty string if absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
