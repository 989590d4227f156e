package token

import "context"

// Authentication describes the caller of the current request: the principal
// name established at login (the email) and the raw bearer credential. The
// auth middleware stores one per request; nothing here is process-global, so
// concurrent requests never observe each other's caller.
type Authentication struct {
	Name       string
	Credential string
}

type authContextKey struct{}

// WithAuthentication returns a context carrying the request's caller.
func WithAuthentication(ctx context.Context, auth Authentication) context.Context {
	return context.WithValue(ctx, authContextKey{}, auth)
}

// CurrentUserLogin returns the authenticated principal's name. The second
// return is false when the request carries no authentication; that is a
// normal state for public endpoints, not an error.
func CurrentUserLogin(ctx context.Context) (string, bool) {
	auth, ok := ctx.Value(authContextKey{}).(Authentication)
	if !ok || auth.Name == "" {
		return "", false
	}
	return auth.Name, true
}

// CurrentUserJWT returns the raw bearer token of the current request, used
// at logout to know which refresh session to invalidate.
func CurrentUserJWT(ctx context.Context) (string, bool) {
	auth, ok := ctx.Value(authContextKey{}).(Authentication)
	if !ok || auth.Credential == "" {
		return "", false
	}
	return auth.Credential, true
}
