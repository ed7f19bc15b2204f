// Package session carries the caller's identity through a request.
package session

import (
	"context"
	"time"
)

// CookieName is the cookie holding the signed session token.
const CookieName = "loveuad_admin_session"

type Identity struct {
	Admin     bool
	SessionID string
	ExpiresAt time.Time
}

type ctxKey struct{}

// Anonymous is the identity of a request without a valid session.
func Anonymous() Identity {
	return Identity{}
}

func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ctxKey{}, id)
}

// FromContext returns the request identity, or Anonymous when none was set.
func FromContext(ctx context.Context) Identity {
	if id, ok := ctx.Value(ctxKey{}).(Identity); ok {
		return id
	}
	return Anonymous()
}

func IsAdmin(ctx context.Context) bool {
	return FromContext(ctx).Admin
}
