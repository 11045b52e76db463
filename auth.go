package safemocker

import (
	"context"
	"errors"
)

// Context keys populated by AuthMiddleware.
const (
	CtxUserID    = "userId"
	CtxUserEmail = "userEmail"
	CtxAuthToken = "authToken"
)

// ErrUnauthorized is the failure produced by AuthMiddleware when auth is
// disabled on the client. It surfaces as a ServerError in the envelope.
var ErrUnauthorized = errors.New("unauthorized")

// AuthMiddleware returns a middleware injecting the configured test
// identity into the action context, emulating the framework's
// authenticated-action surface. When auth.Enabled is false the middleware
// aborts the chain with ErrUnauthorized instead, so tests can exercise
// their unauthenticated paths by building a client with auth disabled.
//
// No real authentication happens: the identity is whatever AuthConfig says.
func AuthMiddleware(auth AuthConfig) Middleware {
	return func(ctx context.Context, mc *MiddlewareContext) (any, error) {
		if !auth.Enabled {
			return nil, ErrUnauthorized
		}
		return mc.Next(ActionContext{
			CtxUserID:    auth.TestUserID,
			CtxUserEmail: auth.TestUserEmail,
			CtxAuthToken: auth.TestAuthToken,
		})
	}
}
