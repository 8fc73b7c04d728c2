package main

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinalize/sinalize-api/internal/config"
	"github.com/sinalize/sinalize-api/internal/mocks"
	"github.com/sinalize/sinalize-api/internal/service/auth"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: 8080, LogLevel: "info"},
		Auth: config.AuthConfig{
			JWTSecret:            "test-secret-that-is-long-enough-000",
			TokenLifetimeMinutes: 60,
			AllowlistPaths:       []string{"/health", "/users/register", "/check/user"},
		},
	}
}

func newTestApplication(t *testing.T) *application {
	t.Helper()

	cfg := testConfig()
	jwtService, err := auth.NewJWTService(cfg.Auth)
	require.NoError(t, err)

	return &application{
		config:     cfg,
		logger:     slog.Default(),
		userStore:  mocks.NewMockUserStore(),
		jwtService: jwtService,
	}
}

func TestRouter_HealthIsPublic(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "OK", rr.Body.String())
}

func TestRouter_ProtectedRoutesRequireToken(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/generate/content"},
		{http.MethodPost, "/generate/image"},
		{http.MethodPost, "/api/student-roadmap"},
		{http.MethodPost, "/api/parent-roadmap"},
		{http.MethodPost, "/chat"},
		{http.MethodPost, "/generate-introduction"},
	}

	for _, tc := range paths {
		tc := tc
		t.Run(tc.path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(tc.method, tc.path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRouter_AllowlistedRoutesSkipAuth(t *testing.T) {
	t.Parallel()

	app := newTestApplication(t)
	router := app.setupRouter()

	// Empty bodies fail validation, but the requests must get past the auth
	// middleware without a token.
	paths := []string{"/users/register", "/check/user"}

	for _, path := range paths {
		path := path
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodPost, path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
		})
	}
}
