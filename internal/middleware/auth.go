package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/folio/folio-api/internal/pkg/response"
)

// Authenticator decides whether a request comes from the site operator.
// The CMS is single-operator, so implementations only answer yes or no.
type Authenticator interface {
	Authenticate(r *http.Request) bool
}

// TokenAuthenticator authenticates against a static bearer token
type TokenAuthenticator struct {
	token string
}

// NewTokenAuthenticator creates a token authenticator.
// An empty token rejects every request.
func NewTokenAuthenticator(token string) *TokenAuthenticator {
	return &TokenAuthenticator{token: token}
}

// Authenticate checks the Authorization header for the operator token
func (a *TokenAuthenticator) Authenticate(r *http.Request) bool {
	if a.token == "" {
		return false
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(parts[1]), []byte(a.token)) == 1
}

// Auth returns middleware that rejects unauthenticated requests
func Auth(a Authenticator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !a.Authenticate(r) {
				response.Unauthorized(w, "Authentication required")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
