package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"floorplan/config"
	"floorplan/infras/jwt"
	jwtMocks "floorplan/infras/jwt/mocks"
	otelMocks "floorplan/infras/otel/mocks"
	"floorplan/internal/domains/floor/mocks"
	"floorplan/internal/domains/floor/model/dto"
	"floorplan/internal/handlers/floor"
	"floorplan/permissions"
	"floorplan/shared/cache"
	"floorplan/shared/constant"
	transport "floorplan/transport/http"
	"floorplan/transport/http/middleware"
	"floorplan/transport/http/router"

	"github.com/alicebob/miniredis/v2"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T) (*transport.HTTP, *mocks.MockFloor, *jwtMocks.MockJWT) {
	t.Helper()

	ctrl := gomock.NewController(t)
	svc := mocks.NewMockFloor(ctrl)
	jwtService := jwtMocks.NewMockJWT(ctrl)

	redisServer := miniredis.RunT(t)
	client := goRedis.NewClient(&goRedis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	cfg := &config.Config{}
	otl := otelMocks.NewOtel()

	app := middleware.NewAppMiddleware(otl, cfg, cache.NewRedisCache(client, otl))
	auth := middleware.NewAuthRoleMiddleware(jwtService, otl, permissions.Get(), cfg)

	routes := router.New(router.DomainHandlers{Floor: floor.New(svc, otl)})

	return transport.New(cfg, routes, app, auth), svc, jwtService
}

func TestHTTP_Health(t *testing.T) {
	server, _, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, transport.ServerStateReady, server.State())
}

func TestHTTP_RequiresToken(t *testing.T) {
	server, _, _ := newServer(t)

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHTTP_RoutesToFloorHandler(t *testing.T) {
	server, svc, jwtService := newServer(t)

	jwtService.EXPECT().ValidateToken("tok").Return(&jwt.Claims{UserID: "user-1"}, nil)
	svc.EXPECT().GetSession(gomock.Any(), "s-1").Return(dto.SessionResponse{ID: "s-1"}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderContentType))
}

func TestHTTP_DeleteFloorRequiresRole(t *testing.T) {
	server, _, jwtService := newServer(t)

	jwtService.EXPECT().ValidateToken("tok").Return(&jwt.Claims{UserID: "user-1", Role: "staff"}, nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/s-1/floors/f-1", nil)
	req.Header.Set(constant.RequestHeaderAuthorization, "Bearer tok")

	rec := httptest.NewRecorder()
	server.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
