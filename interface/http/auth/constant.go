package auth

import "net/http"

const UserIdentityContextKey = "AuthenticatedUserIdentity"

// AuthenticationProvider guards the inventory APIs, each provider
// supplies middleware for protected routes and a router for its own
// endpoints, such as token issue or refresh.
type AuthenticationProvider interface {
	AuthenticationMiddleware(next http.Handler) http.Handler
	AuthenticationRouter() http.Handler
	AuthenticationType() any
}

type AuthenticatorType struct {
	Type string `json:"type"`
}
