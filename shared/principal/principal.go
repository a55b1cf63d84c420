package principal

import (
	"context"
	"garage/shared/constant"
)

type contextKey string

const principalKey contextKey = "principal"

// Principal is the authenticated identity attached to a request after the
// session token has been verified.
type Principal struct {
	UserID string
	Email  string
	Role   string
}

func (p Principal) IsAdmin() bool {
	return p.Role == constant.RoleAdmin
}

// WithContext returns a copy of ctx carrying the principal.
func WithContext(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

// FromContext extracts the principal attached by the auth middleware.
// The second return value is false for unauthenticated requests.
func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey).(Principal)

	return p, ok
}

// ActorFromContext returns the acting user id for audit columns, falling back
// to the system actor when the request carries no principal.
func ActorFromContext(ctx context.Context) string {
	p, ok := FromContext(ctx)
	if !ok || p.UserID == "" {
		return constant.SystemActor
	}

	return p.UserID
}
