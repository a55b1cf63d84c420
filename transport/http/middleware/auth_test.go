package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"garage/config"
	"garage/infras/jwt"
	"garage/infras/otel/mocks"
	"garage/permissions"
	"garage/shared/constant"
	"garage/shared/failure"
	"garage/transport/http/middleware"
	"garage/transport/http/response"
)

func newTestMux(t *testing.T) *chi.Mux {
	t.Helper()

	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpireMin = 60

	perms := &permissions.PermissionData{
		Endpoints: []permissions.Permission{
			{Path: "/public", Method: http.MethodGet, Skip: true},
			{Path: "/private", Method: http.MethodGet, Roles: []string{constant.RoleAdmin}},
		},
	}

	authRole := middleware.NewAuthRoleMiddleware(jwt.New(cfg), mocks.NewOtel(), perms)

	mux := chi.NewRouter()
	mux.Use(authRole.Auth)
	mux.Use(authRole.RBAC)

	mux.Get("/public", func(writer http.ResponseWriter, request *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	})
	mux.Get("/private", func(writer http.ResponseWriter, request *http.Request) {
		response.WithMessage(writer, http.StatusOK, "OK")
	})
	mux.NotFound(func(writer http.ResponseWriter, request *http.Request) {
		response.WithError(writer, failure.NotFound(constant.ResponseErrorRouteNotFound))
	})

	return mux
}

func TestAuth_UnknownRoute(t *testing.T) {
	mux := newTestMux(t)

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodGet, "/definitely-not-a-route", nil)

	mux.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)

	var envelope response.Envelope
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, constant.ResponseErrorRouteNotFound, envelope.Message)
}

func TestAuth_KnownRoutes(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		authHeader string
		wantCode   int
	}{
		{
			name:     "skipped route needs no token",
			path:     "/public",
			wantCode: http.StatusOK,
		},
		{
			name:     "protected route without token",
			path:     "/private",
			wantCode: http.StatusUnauthorized,
		},
		{
			name:       "protected route with malformed header",
			path:       "/private",
			authHeader: "Basic abc",
			wantCode:   http.StatusUnauthorized,
		},
		{
			name:       "protected route with invalid token",
			path:       "/private",
			authHeader: "Bearer not-a-token",
			wantCode:   http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mux := newTestMux(t)

			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodGet, tt.path, nil)

			if tt.authHeader != "" {
				request.Header.Set(constant.RequestHeaderAuthorization, tt.authHeader)
			}

			mux.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantCode, recorder.Code)
		})
	}
}
