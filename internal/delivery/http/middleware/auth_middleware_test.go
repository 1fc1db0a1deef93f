package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"sensorhub/config"
	"sensorhub/internal/errors"
	mocks "sensorhub/internal/mocks/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authorization string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/admin/devices", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Admin = "admin-signing-key"

	reached := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	t.Run("valid token exposes subject and roles", func(t *testing.T) {
		tokens := mocks.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("good", "admin-signing-key").Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"sub": "ops", "roles": []any{RoleAdmin}},
		}, nil).Once()

		c, rec := newAuthContext("Bearer good")
		m := NewAuthMiddleware(tokens, cfg)
		require.NoError(t, m.Authenticate(m.RequireRole(RoleAdmin)(reached))(c))

		assert.Equal(t, http.StatusNoContent, rec.Code)
		subject, ok := GetSubject(c)
		assert.True(t, ok)
		assert.Equal(t, "ops", subject)
	})

	t.Run("not a bearer token", func(t *testing.T) {
		c, rec := newAuthContext("Basic b3BzOnB3")
		require.NoError(t, NewAuthMiddleware(mocks.NewMockTokenService(t), cfg).Authenticate(reached)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
	})

	t.Run("rejected by the token service", func(t *testing.T) {
		tokens := mocks.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("expired", "admin-signing-key").Return(nil, errors.New("token is expired")).Once()

		c, rec := newAuthContext("Bearer expired")
		require.NoError(t, NewAuthMiddleware(tokens, cfg).Authenticate(reached)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without subject", func(t *testing.T) {
		tokens := mocks.NewMockTokenService(t)
		tokens.EXPECT().ValidateToken("anon", "admin-signing-key").Return(&jwt.Token{
			Valid:  true,
			Claims: jwt.MapClaims{"roles": []any{RoleAdmin}},
		}, nil).Once()

		c, rec := newAuthContext("Bearer anon")
		require.NoError(t, NewAuthMiddleware(tokens, cfg).Authenticate(reached)(c))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestAuthMiddleware_RequireRoleWithoutAuthenticate(t *testing.T) {
	c, rec := newAuthContext("")
	m := NewAuthMiddleware(nil, &config.Config{})

	require.NoError(t, m.RequireRole(RoleAdmin)(func(c echo.Context) error { return nil })(c))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
