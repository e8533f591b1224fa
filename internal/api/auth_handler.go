package api

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/api/middleware"
	"github.com/mdhasanali39/taskQuest-server/internal/api/shared"
	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/mdhasanali39/taskQuest-server/internal/domain"
	"github.com/mdhasanali39/taskQuest-server/internal/platform/logger"
	"github.com/mdhasanali39/taskQuest-server/internal/service/auth"
)

// CookieOptions controls the attributes of the identity cookie.
type CookieOptions struct {
	// Secure marks the cookie HTTPS-only and allows cross-site delivery.
	Secure bool
	// MaxAge is the cookie lifetime; it matches the token lifetime.
	MaxAge time.Duration
}

// CookieOptionsFromConfig derives cookie attributes from the deployment
// environment and token lifetime.
func CookieOptionsFromConfig(server config.ServerConfig, authCfg config.AuthConfig) CookieOptions {
	return CookieOptions{
		Secure: server.IsProduction(),
		MaxAge: time.Duration(authCfg.TokenLifetimeMinutes) * time.Minute,
	}
}

func (o CookieOptions) sameSite() http.SameSite {
	if o.Secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteStrictMode
}

// AuthHandler issues and clears identity tokens.
type AuthHandler struct {
	jwtService auth.JWTService
	cookie     CookieOptions
	logger     *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(jwtService auth.JWTService, cookie CookieOptions, logger *slog.Logger) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		jwtService: jwtService,
		cookie:     cookie,
		logger:     logger.With("component", "auth_handler"),
	}
}

// IssueToken handles POST /task-quest/access-token. It signs a token for
// the email in the body and sets it as an HTTP-only cookie.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req AccessTokenRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		HandleAPIError(w, r, domain.ErrInvalidFormat)
		return
	}
	req.Email = strings.TrimSpace(req.Email)
	if err := shared.ValidateRequest(req); err != nil {
		log.Debug("access token request failed validation", "error", err)
		HandleAPIError(w, r, domain.ErrInvalidEmail)
		return
	}

	token, err := h.jwtService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.sameSite(),
	})

	log.Debug("identity token issued")
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Status: true, Message: MsgTokenIssued})
}

// ClearToken handles GET /task-quest/delete-token by expiring the cookie.
func (h *AuthHandler) ClearToken(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     middleware.TokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: h.cookie.sameSite(),
	})

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Status: true, Message: MsgTokenCleared})
}
