package middleware

import (
	"context"

	"github.com/averyhollis/stockroom-backend/pkg/db/models"
)

type contextKey string

const ctxActingUser contextKey = "acting_user"

// ActingUserFromContext returns the authenticated user seeded by Auth, or nil
// on an unauthenticated request.
func ActingUserFromContext(ctx context.Context) *models.User {
	if ctx == nil {
		return nil
	}
	if u, ok := ctx.Value(ctxActingUser).(*models.User); ok {
		return u
	}
	return nil
}

// WithActingUser injects the authenticated user into the context.
func WithActingUser(ctx context.Context, user *models.User) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, ctxActingUser, user)
}
