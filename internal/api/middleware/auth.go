package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/service/auth"
)

// TokenCookieName is the cookie that carries the identity token.
const TokenCookieName = "token"

// UnauthorizedMessage is the message of every 401 envelope.
const UnauthorizedMessage = "Unauthorized access"

// AuthMiddleware provides JWT authentication for routes.
type AuthMiddleware struct {
	jwtService auth.JWTService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(jwtService auth.JWTService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
	}
}

// Authenticate validates the identity token and adds the email it carries
// to the request context. The token is read from the token cookie, falling
// back to an Authorization: Bearer header.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken),
				errors.Is(err, auth.ErrInvalidToken),
				errors.Is(err, auth.ErrTokenNotYetValid),
				errors.Is(err, auth.ErrMissingToken):
				logger.FromContext(r.Context()).Debug("rejected identity token", "reason", err.Error())
				shared.RespondWithError(w, r, http.StatusUnauthorized, UnauthorizedMessage)
			default:
				shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError, "Authentication error", err)
			}
			return
		}

		ctx := shared.WithOwner(r.Context(), claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetOwner extracts the authenticated email from the request context.
// Returns the email and a boolean indicating if it was found.
func GetOwner(r *http.Request) (string, bool) {
	return shared.GetOwner(r.Context())
}

func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie(TokenCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
