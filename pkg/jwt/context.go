package jwt

import "context"

// contextKey is a private type for context keys to avoid collisions.
type contextKey struct{ name string }

func (c contextKey) String() string { return c.name }

var (
	tokenContextKey  = &contextKey{name: "jwt"}
	claimsContextKey = &contextKey{name: "jwt_claims"}
)

// SetToken stores the raw token string in the context.
func SetToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, tokenContextKey, token)
}

// GetToken returns the raw token string from the context.
func GetToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(tokenContextKey).(string)
	return token, ok
}

// SetClaims stores verified role claims in the context.
func SetClaims(ctx context.Context, claims RoleClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

// GetClaims returns the verified role claims from the context. The second
// return value is false when no middleware ran or verification failed, which
// downstream access checks must treat as an anonymous request.
func GetClaims(ctx context.Context) (RoleClaims, bool) {
	claims, ok := ctx.Value(claimsContextKey).(RoleClaims)
	return claims, ok
}
