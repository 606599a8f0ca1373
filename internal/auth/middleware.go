package auth

import (
	"context"
	"net/http"
)

type contextKey string

const SessionContextKey contextKey = "session"

// Middleware gates admin routes: the request must carry a session cookie
// whose token verifies against secret AND whose session is still live in
// the store. A valid token for a destroyed session (cookie replay after
// logout) is rejected.
func Middleware(secret string, sessions *SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(CookieName)
			if err != nil {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			sessionID, err := ValidateToken(secret, cookie.Value)
			if err != nil || !sessions.Valid(sessionID) {
				http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), SessionContextKey, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID returns the session id attached by Middleware, or "".
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionContextKey).(string)
	return id
}
