// Package middleware provides HTTP middleware for authentication and authorization.
package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"slices"
	"strings"

	"github.com/jonathan/smartjob/internal/types"
)

// ContextKey is a typed key for context values to avoid collisions.
type ContextKey string

// sessionKey is the context key for the authenticated session.
const sessionKey ContextKey = "session"

// Session identifies the authenticated caller.
type Session struct {
	UserID string
	Role   types.Role
}

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (SessionGetter, error)
}

// SessionGetter extracts the session from validated token claims.
type SessionGetter interface {
	GetSession() Session
}

// AuthMiddleware validates the bearer token and stores the session in the request context.
func AuthMiddleware(validator TokenValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, ok := bearerToken(r)
			if !ok {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			claims, err := validator.ValidateToken(tokenString)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := WithSession(r.Context(), claims.GetSession())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole rejects sessions whose role is not listed. It must run after AuthMiddleware.
func RequireRole(roles ...types.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := GetSession(r)
			if err != nil {
				writeError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}
			if len(roles) > 0 && !slices.Contains(roles, sess.Role) {
				writeError(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// bearerToken parses "Authorization: Bearer <token>", accepting any case for the scheme.
func bearerToken(r *http.Request) (string, bool) {
	parts := strings.Fields(r.Header.Get("Authorization"))
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], parts[1] != ""
}

// WithSession returns a context carrying sess.
func WithSession(ctx context.Context, sess Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// GetSession extracts the authenticated session from the request context.
func GetSession(r *http.Request) (Session, error) {
	sess, ok := r.Context().Value(sessionKey).(Session)
	if !ok {
		return Session{}, fmt.Errorf("session not found in request context")
	}
	return sess, nil
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
