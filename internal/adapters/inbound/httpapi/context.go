package httpapi

import (
	"context"

	"github.com/sufield/prdash/internal/domain"
)

// sessionKey is an unexported type for the request-scoped session.
type sessionKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s domain.Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

// SessionFromContext returns the session the session middleware decoded for
// this request. Requests that never passed the middleware are anonymous.
func SessionFromContext(ctx context.Context) domain.Session {
	s, ok := ctx.Value(sessionKey{}).(domain.Session)
	if !ok {
		return domain.Anonymous()
	}
	return s
}
