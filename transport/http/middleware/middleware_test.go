package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"floorplan/config"
	"floorplan/infras/jwt"
	jwtMocks "floorplan/infras/jwt/mocks"
	otelMocks "floorplan/infras/otel/mocks"
	"floorplan/permissions"
	"floorplan/shared/cache"
	"floorplan/shared/constant"
	"floorplan/transport/http/middleware"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type captured struct {
	userID string
	role   string
	token  string
	calls  int
}

func (c *captured) handler(w http.ResponseWriter, r *http.Request) {
	c.calls++
	c.userID, _ = r.Context().Value(constant.ContextKeyUserID).(string)
	c.role, _ = r.Context().Value(constant.ContextKeyUserRole).(string)
	c.token, _ = r.Context().Value(constant.ContextKeyAccessToken).(string)

	w.WriteHeader(http.StatusNoContent)
}

func newAuthRouter(t *testing.T, jwtService jwt.JWT, cfg *config.Config) (*chi.Mux, *captured) {
	t.Helper()

	perms, err := permissions.Parse([]byte(`{
		"endpoints": [
			{"path": "/v1/open", "method": "GET", "skip": true},
			{"path": "/v1/sessions/{id}/floors/{floorID}", "method": "DELETE", "permissions": ["owner"]}
		]
	}`))
	require.NoError(t, err)

	auth := middleware.NewAuthRoleMiddleware(jwtService, otelMocks.NewOtel(), perms, cfg)
	capture := &captured{}

	router := chi.NewRouter()
	router.Use(auth.APIKey, auth.Auth, auth.RBAC)
	router.Get("/v1/open", capture.handler)
	router.Get("/v1/sessions/{id}", capture.handler)
	router.Delete("/v1/sessions/{id}/floors/{floorID}", capture.handler)

	return router, capture
}

func serve(router http.Handler, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func TestAuth(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		claims    *jwt.Claims
		err       error
		code      int
		wantToken bool
	}{
		{name: "missing header", code: http.StatusUnauthorized},
		{name: "not bearer", header: "Basic abc", code: http.StatusUnauthorized},
		{name: "expired", header: "Bearer tok", err: jwt.ErrExpiredToken, code: http.StatusUnauthorized},
		{name: "invalid", header: "Bearer tok", err: jwt.ErrInvalidToken, code: http.StatusUnauthorized},
		{
			name:      "valid",
			header:    "Bearer tok",
			claims:    &jwt.Claims{UserID: "user-1", Role: "staff"},
			code:      http.StatusNoContent,
			wantToken: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)

			if tt.claims != nil || tt.err != nil {
				jwtService.EXPECT().ValidateToken("tok").Return(tt.claims, tt.err)
			}

			router, capture := newAuthRouter(t, jwtService, &config.Config{})

			rec := serve(router, http.MethodGet, "/v1/sessions/s-1", map[string]string{
				constant.RequestHeaderAuthorization: tt.header,
			})

			assert.Equal(t, tt.code, rec.Code)

			if tt.wantToken {
				assert.Equal(t, "user-1", capture.userID)
				assert.Equal(t, "staff", capture.role)
				assert.Equal(t, "tok", capture.token)
			} else {
				assert.Zero(t, capture.calls)
			}
		})
	}
}

func TestAuth_SkippedRoute(t *testing.T) {
	ctrl := gomock.NewController(t)
	router, capture := newAuthRouter(t, jwtMocks.NewMockJWT(ctrl), &config.Config{})

	rec := serve(router, http.MethodGet, "/v1/open", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, capture.calls)
}

func TestRBAC(t *testing.T) {
	tests := []struct {
		name string
		role string
		code int
	}{
		{name: "allowed role", role: "owner", code: http.StatusNoContent},
		{name: "other role", role: "staff", code: http.StatusForbidden},
		{name: "no role", code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			jwtService.EXPECT().ValidateToken("tok").Return(&jwt.Claims{UserID: "user-1", Role: tt.role}, nil)

			router, _ := newAuthRouter(t, jwtService, &config.Config{})

			rec := serve(router, http.MethodDelete, "/v1/sessions/s-1/floors/f-1", map[string]string{
				constant.RequestHeaderAuthorization: "Bearer tok",
			})

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestAPIKey(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.APIKey = "secret"

	ctrl := gomock.NewController(t)
	router, capture := newAuthRouter(t, jwtMocks.NewMockJWT(ctrl), cfg)

	rec := serve(router, http.MethodDelete, "/v1/sessions/s-1/floors/f-1", map[string]string{
		constant.RequestHeaderAPIKey: "secret",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, 1, capture.calls)

	rec = serve(router, http.MethodGet, "/v1/sessions/s-1", map[string]string{
		constant.RequestHeaderAPIKey: "wrong",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, 1, capture.calls)
}

func newAppMiddleware(t *testing.T, cfg *config.Config) middleware.AppMiddleware {
	t.Helper()

	server := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	otl := otelMocks.NewOtel()

	return middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(client, otl))
}

func TestRateLimit(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = true
	cfg.App.RateLimiter.MaxRequests = 2
	cfg.App.RateLimiter.WindowSeconds = 60

	app := newAppMiddleware(t, cfg)

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	headers := map[string]string{constant.RequestHeaderForwardedFor: "10.0.0.1, 10.0.0.2"}

	rec := serve(handler, http.MethodGet, "/", headers)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "1", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

	rec = serve(handler, http.MethodGet, "/", headers)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "0", rec.Header().Get(constant.RequestHeaderRateLimitRemaining))

	rec = serve(handler, http.MethodGet, "/", headers)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)

	rec = serve(handler, http.MethodGet, "/", map[string]string{constant.RequestHeaderForwardedFor: "10.0.0.9"})
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	app := newAppMiddleware(t, &config.Config{})

	handler := app.RateLimit()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rec := serve(handler, http.MethodGet, "/", nil)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get(constant.RequestHeaderRateLimit))
}

func TestCORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"https://dashboard.example.com"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	app := newAppMiddleware(t, cfg)

	handler := app.Tracing(app.CORS()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})))

	rec := serve(handler, http.MethodGet, "/", map[string]string{"Origin": "https://dashboard.example.com"})
	assert.Equal(t, "https://dashboard.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(handler, http.MethodGet, "/", map[string]string{"Origin": "https://evil.example.com"})
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
