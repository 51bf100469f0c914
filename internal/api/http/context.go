package http

import (
	"context"
	"net/http"

	"autorental-backend/internal/logger"
	"autorental-backend/internal/security"
)

type ctxKey int

const claimsKey ctxKey = iota

func withClaims(ctx context.Context, c *security.UserClaims) context.Context {
	return context.WithValue(ctx, claimsKey, c)
}

// ClaimsFromContext returns the caller's validated claims on admin routes.
func ClaimsFromContext(ctx context.Context) (*security.UserClaims, bool) {
	c, ok := ctx.Value(claimsKey).(*security.UserClaims)
	return c, ok
}

// audit records a successful admin mutation against the acting user.
func audit(r *http.Request, action string, args ...any) {
	attrs := []any{"action", action}
	if c, ok := ClaimsFromContext(r.Context()); ok {
		attrs = append(attrs, "userID", c.UserID, "email", c.Email)
	}
	logger.InfoContext(r.Context(), "Admin change", append(attrs, args...)...)
}
