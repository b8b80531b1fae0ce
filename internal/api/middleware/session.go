package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/styleloom/clothing-store/internal/models"
)

type sessionContextKey string

const SessionContextKey = sessionContextKey("session")

// SessionCookieName is the cookie the login handler issues.
const SessionCookieName = "session"

type SessionMiddleware struct {
	sessionKey []byte
}

func NewSessionMiddleware(sessionKey []byte) *SessionMiddleware {
	return &SessionMiddleware{sessionKey: sessionKey}
}

// Attach decodes the session cookie when one is present and enriches the
// request context and logger with the username. Browsing stays open to
// anonymous clients; no route is rejected here.
func (m *SessionMiddleware) Attach(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(cookie.Value, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}

			return m.sessionKey, nil
		})

		if err != nil || !token.Valid {
			// Stale or tampered cookie: continue anonymously.
			next.ServeHTTP(w, r)
			return
		}

		logger := LoggerFromContext(r.Context()).With(slog.String("username", claims.Username))

		ctx := context.WithValue(r.Context(), SessionContextKey, claims)
		ctx = context.WithValue(ctx, LoggerKey, logger)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the decoded session claims, if any.
func SessionFromContext(ctx context.Context) (*models.Claims, bool) {
	claims, ok := ctx.Value(SessionContextKey).(*models.Claims)

	return claims, ok
}
