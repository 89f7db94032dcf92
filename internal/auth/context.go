package auth

import (
	"context"

	"personalblog/internal/models"
)

type contextKey struct{}

func WithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, contextKey{}, session)
}

// SessionFromContext returns the session injected by the session middleware.
func SessionFromContext(ctx context.Context) (*Session, bool) {
	session, ok := ctx.Value(contextKey{}).(*Session)
	return session, ok && session != nil
}

func ClaimFromContext(ctx context.Context) (models.SessionClaim, bool) {
	session, ok := SessionFromContext(ctx)
	if !ok {
		return models.SessionClaim{}, false
	}
	return session.Claim, true
}
