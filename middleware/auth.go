package middleware

import (
	"errors"
	"net/http"
	"strings"

	"mini-bookmarks/auth"
	"mini-bookmarks/logger"
)

// TokenVerifier turns a bearer token into the caller's identity.
type TokenVerifier interface {
	Verify(token string) (auth.Identity, error)
}

// AuthedHandlerFunc is a handler that runs only for an authenticated caller.
type AuthedHandlerFunc func(w http.ResponseWriter, r *http.Request, id auth.Identity)

type Authenticator struct {
	tokens TokenVerifier
}

func NewAuthenticator(tokens TokenVerifier) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Protect verifies the bearer token and hands the identity to next.
// Requests without a valid token get 401 and never reach next.
func (a *Authenticator) Protect(next AuthedHandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			unauthorized(w, r, "Authorization header missing")
			return
		}

		tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || strings.TrimSpace(tokenStr) == "" {
			log.Debug("bearer prefix missing in authorization header")
			unauthorized(w, r, "Invalid token format")
			return
		}

		id, err := a.tokens.Verify(strings.TrimSpace(tokenStr))
		if err != nil {
			log.Debug("token rejected", "error", err)
			if errors.Is(err, auth.ErrExpiredToken) {
				unauthorized(w, r, "Token expired")
				return
			}
			unauthorized(w, r, "Unauthorized")
			return
		}

		next(w, r, id)
	}
}
