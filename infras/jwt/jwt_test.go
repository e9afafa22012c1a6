package jwt_test

import (
	"testing"
	"time"

	"floorplan/config"
	floorJWT "floorplan/infras/jwt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

func sign(t *testing.T, claims floorJWT.Claims, key string) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(key))
	require.NoError(t, err)

	return token
}

func newService() floorJWT.JWT {
	cfg := &config.Config{}
	cfg.JWT.AccessSecret = secret

	return floorJWT.New(cfg)
}

func TestValidateToken(t *testing.T) {
	now := time.Now()
	valid := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour))}
	expired := jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour))}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
		wantID  string
	}{
		{
			name: "valid access token",
			token: func(t *testing.T) string {
				return sign(t, floorJWT.Claims{UserID: "u-1", Type: floorJWT.AccessToken, RegisteredClaims: valid}, secret)
			},
			wantID: "u-1",
		},
		{
			name: "subject used when user id missing",
			token: func(t *testing.T) string {
				claims := valid
				claims.Subject = "u-2"

				return sign(t, floorJWT.Claims{RegisteredClaims: claims}, secret)
			},
			wantID: "u-2",
		},
		{
			name: "expired token",
			token: func(t *testing.T) string {
				return sign(t, floorJWT.Claims{UserID: "u-1", RegisteredClaims: expired}, secret)
			},
			wantErr: floorJWT.ErrExpiredToken,
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return sign(t, floorJWT.Claims{UserID: "u-1", RegisteredClaims: valid}, "other")
			},
			wantErr: floorJWT.ErrInvalidToken,
		},
		{
			name: "refresh token rejected",
			token: func(t *testing.T) string {
				return sign(t, floorJWT.Claims{UserID: "u-1", Type: "refresh", RegisteredClaims: valid}, secret)
			},
			wantErr: floorJWT.ErrInvalidClaim,
		},
		{
			name: "no identity",
			token: func(t *testing.T) string {
				return sign(t, floorJWT.Claims{RegisteredClaims: valid}, secret)
			},
			wantErr: floorJWT.ErrInvalidClaim,
		},
		{
			name:    "garbage",
			token:   func(_ *testing.T) string { return "not-a-jwt" },
			wantErr: floorJWT.ErrInvalidToken,
		},
	}

	service := newService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.ValidateToken(tt.token(t))

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, claims.OwnerID())
		})
	}
}

func TestExtractTokenFromHeader(t *testing.T) {
	token, err := floorJWT.ExtractTokenFromHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = floorJWT.ExtractTokenFromHeader("")
	assert.ErrorIs(t, err, floorJWT.ErrMissingHeader)

	_, err = floorJWT.ExtractTokenFromHeader("Basic dXNlcg==")
	assert.ErrorIs(t, err, floorJWT.ErrInvalidHeader)

	_, err = floorJWT.ExtractTokenFromHeader("Bearer ")
	assert.ErrorIs(t, err, floorJWT.ErrInvalidHeader)
}
