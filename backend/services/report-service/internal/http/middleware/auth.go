package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"eyewave/backend/services/report-service/internal/auth"
	"eyewave/backend/services/report-service/internal/session"
)

type contextKey string

const (
	sessionIDKey     contextKey = "sessionID"
	upstreamTokenKey contextKey = "upstreamToken"
)

// SessionMiddleware validates the gateway JWT and resolves the stored
// upstream access token into the request context. The websocket chart
// endpoint cannot set headers, so the token is also accepted as a query
// parameter.
func SessionMiddleware(tokens *auth.TokenService, sessions session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := bearerToken(r)
			if tokenStr == "" {
				tokenStr = r.URL.Query().Get("token")
			}
			if tokenStr == "" {
				http.Error(w, "missing authorization", http.StatusUnauthorized)
				return
			}

			claims, err := tokens.Validate(tokenStr)
			if err != nil {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			upstream, err := sessions.Get(r.Context(), claims.SessionID)
			if errors.Is(err, session.ErrNotFound) {
				http.Error(w, "session expired", http.StatusUnauthorized)
				return
			}
			if err != nil {
				http.Error(w, "session lookup failed", http.StatusInternalServerError)
				return
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, claims.SessionID)
			ctx = context.WithValue(ctx, upstreamTokenKey, upstream)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// SessionIDFromContext retrieves the gateway session id.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok
}

// UpstreamTokenFromContext retrieves the platform access token.
func UpstreamTokenFromContext(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(upstreamTokenKey).(string)
	return token, ok
}
