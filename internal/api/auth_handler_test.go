package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/mdhasanali39/taskQuest-server/internal/api/middleware"
	"github.com/mdhasanali39/taskQuest-server/internal/config"
	"github.com/mdhasanali39/taskQuest-server/internal/mocks"
	"github.com/mdhasanali39/taskQuest-server/internal/service/auth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == middleware.TokenCookieName {
			return c
		}
	}
	require.FailNow(t, "token cookie not set")
	return nil
}

func TestCookieOptionsFromConfig(t *testing.T) {
	t.Parallel()

	authCfg := config.AuthConfig{TokenLifetimeMinutes: 60}

	dev := CookieOptionsFromConfig(config.ServerConfig{Environment: config.EnvironmentDevelopment}, authCfg)
	assert.False(t, dev.Secure)
	assert.Equal(t, time.Hour, dev.MaxAge)
	assert.Equal(t, http.SameSiteStrictMode, dev.sameSite())

	prod := CookieOptionsFromConfig(config.ServerConfig{Environment: config.EnvironmentProduction}, authCfg)
	assert.True(t, prod.Secure)
	assert.Equal(t, http.SameSiteNoneMode, prod.sameSite())
}

func TestIssueToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		secure       bool
		wantSameSite http.SameSite
	}{
		{name: "development", secure: false, wantSameSite: http.SameSiteStrictMode},
		{name: "production", secure: true, wantSameSite: http.SameSiteNoneMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotEmail string
			jwtService := &mocks.MockJWTService{
				GenerateTokenFn: func(_ context.Context, email string) (string, error) {
					gotEmail = email
					return "signed-token", nil
				},
			}
			h := NewAuthHandler(jwtService, CookieOptions{Secure: tt.secure, MaxAge: time.Hour}, nil)

			req := httptest.NewRequest(http.MethodPost, "/task-quest/access-token",
				strings.NewReader(`{"email":"  a@x.com "}`))
			rec := httptest.NewRecorder()
			h.IssueToken(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.JSONEq(t, `{"status":true,"message":"Token issued successfully"}`, rec.Body.String())
			assert.Equal(t, "a@x.com", gotEmail)

			c := tokenCookie(t, rec)
			assert.Equal(t, "signed-token", c.Value)
			assert.Equal(t, "/", c.Path)
			assert.Equal(t, 3600, c.MaxAge)
			assert.True(t, c.HttpOnly)
			assert.Equal(t, tt.secure, c.Secure)
			assert.Equal(t, tt.wantSameSite, c.SameSite)
		})
	}
}

func TestIssueTokenRejectsBadInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{name: "not an email", body: `{"email":"alice"}`, wantMessage: "A valid email is required"},
		{name: "missing email", body: `{}`, wantMessage: "A valid email is required"},
		{name: "malformed json", body: `{"email"`, wantMessage: "Invalid request format"},
		{name: "empty body", body: ``, wantMessage: "Invalid request format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			jwtService := &mocks.MockJWTService{
				GenerateTokenFn: func(context.Context, string) (string, error) {
					t.Error("no token may be issued for invalid input")
					return "", nil
				},
			}
			h := NewAuthHandler(jwtService, CookieOptions{MaxAge: time.Hour}, nil)

			rec := httptest.NewRecorder()
			h.IssueToken(rec, httptest.NewRequest(http.MethodPost, "/task-quest/access-token",
				strings.NewReader(tt.body)))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantMessage)
			assert.Empty(t, rec.Result().Cookies())
		})
	}
}

func TestIssueTokenSigningFailure(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&mocks.MockJWTService{Err: errors.New("signer offline")}, CookieOptions{}, nil)

	rec := httptest.NewRecorder()
	h.IssueToken(rec, httptest.NewRequest(http.MethodPost, "/task-quest/access-token",
		strings.NewReader(`{"email":"a@x.com"}`)))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Internal server error signer offline")
}

func TestIssuedTokenAuthenticates(t *testing.T) {
	t.Parallel()

	svc := auth.RequireTestJWTService(t)
	h := NewAuthHandler(svc, CookieOptions{MaxAge: time.Hour}, nil)

	rec := httptest.NewRecorder()
	h.IssueToken(rec, httptest.NewRequest(http.MethodPost, "/task-quest/access-token",
		strings.NewReader(`{"email":"a@x.com"}`)))
	require.Equal(t, http.StatusOK, rec.Code)

	claims, err := svc.ValidateToken(context.Background(), tokenCookie(t, rec).Value)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
}

func TestClearToken(t *testing.T) {
	t.Parallel()

	h := NewAuthHandler(&mocks.MockJWTService{}, CookieOptions{Secure: true, MaxAge: time.Hour}, nil)

	rec := httptest.NewRecorder()
	h.ClearToken(rec, httptest.NewRequest(http.MethodGet, "/task-quest/delete-token", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":true,"message":"Token cleared successfully"}`, rec.Body.String())

	c := tokenCookie(t, rec)
	assert.Empty(t, c.Value)
	assert.Equal(t, -1, c.MaxAge)
	assert.True(t, c.HttpOnly)
	assert.True(t, c.Secure)
	assert.Equal(t, http.SameSiteNoneMode, c.SameSite)
}
