package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

type sessionContextKey string

const sessionIDKey = sessionContextKey("session_id")

// SessionCookie names the checkout-session cookie. The booking wizard
// runs before sign-in, so in-progress state is keyed by this session
// id rather than by a user id.
const SessionCookie = "laundry_session"

// Session ensures every request carries a checkout session id, minting
// a new one when the cookie is absent.
func Session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := ""

		if cookie, err := r.Cookie(SessionCookie); err == nil && cookie.Value != "" {
			sessionID = cookie.Value
		}

		if sessionID == "" {
			sessionID = uuid.NewString()

			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sessionID,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func SessionFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}

	return ""
}

// WithSession seeds a session id outside the HTTP path, used by tests.
func WithSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, sessionIDKey, sessionID)
}
