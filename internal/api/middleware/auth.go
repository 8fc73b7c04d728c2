package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/sinalize/sinalize-api/internal/api/shared"
	"github.com/sinalize/sinalize-api/internal/redact"
	"github.com/sinalize/sinalize-api/internal/service/auth"
)

// AuthMiddleware provides JWT authentication for routes. Paths matching one
// of the configured allow-list prefixes pass through unauthenticated.
type AuthMiddleware struct {
	jwtService auth.JWTService
	allowlist  []string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
// allowlist entries are path prefixes exempt from authentication.
func NewAuthMiddleware(jwtService auth.JWTService, allowlist []string) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		allowlist:  allowlist,
	}
}

// isAllowlisted reports whether the path matches an exempt prefix.
func (m *AuthMiddleware) isAllowlisted(path string) bool {
	for _, prefix := range m.allowlist {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// Authenticate validates JWT tokens from the Authorization header and adds
// the user ID to the request context for authorized requests.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if m.isAllowlisted(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid authorization format")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), parts[1])
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate token", "error", redact.Error(err))
				shared.RespondWithError(
					w,
					r,
					http.StatusInternalServerError,
					"Authentication error",
				)
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (uuid.UUID, bool) {
	userID, ok := r.Context().Value(shared.UserIDContextKey).(uuid.UUID)
	return userID, ok
}
