package middleware

import (
	"context"

	"travelbook/application/ports"
	apperrors "travelbook/pkg/errors"
)

// RequireAuth guards a use case behind the session store. When no
// session is set the inner use case is never invoked, so a rejected
// call has no side effects at all.
type RequireAuth[Q any, R any] struct {
	inner    UseCase[Q, R]
	sessions ports.SessionStore
}

// NewRequireAuth decorates a use case with an authentication check
func NewRequireAuth[Q any, R any](inner UseCase[Q, R], sessions ports.SessionStore) *RequireAuth[Q, R] {
	return &RequireAuth[Q, R]{inner: inner, sessions: sessions}
}

// Execute delegates only when a session is present
func (r *RequireAuth[Q, R]) Execute(ctx context.Context, query Q) (R, error) {
	if r.sessions.Session() == nil {
		var zero R
		return zero, apperrors.NewUnauthorizedError("sign in to continue")
	}
	return r.inner.Execute(ctx, query)
}
