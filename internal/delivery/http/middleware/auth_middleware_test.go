package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "msgboard/internal/delivery/context"
	"msgboard/internal/domain/service"
	mockSvc "msgboard/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/message/all", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "")

	called := false
	handler := m.Authenticate(func(c echo.Context) error {
		called = true

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "CREDENTIALS_MISSING")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	m := NewAuthMiddleware(tokenSvc)

	// A header without the Bearer scheme is a presented-but-unusable
	// credential, so it is rejected as forbidden rather than unauthorized.
	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer ", "just-a-token"} {
		c, rec := newAuthTestContext(t, header)

		handler := m.Authenticate(func(c echo.Context) error {
			t.Fatal("handler should not be called")

			return nil
		})

		err := handler(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusForbidden, rec.Code, "header: %s", header)
		assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("bad-token").Return(nil, errors.New("failed to parse token"))

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer bad-token")

	handler := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler should not be called")

		return nil
	})

	err := handler(c)

	require.NoError(t, err)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "TOKEN_INVALID")
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{
		UserID:   userID,
		Username: "alice",
	}

	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(claims, nil)

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthTestContext(t, "Bearer good-token")

	called := false
	handler := m.Authenticate(func(c echo.Context) error {
		called = true

		// Identity is exposed both on the echo context and the request context.
		assert.Equal(t, userID, c.Get("userID"))
		assert.Equal(t, "alice", c.Get("username"))

		ctxUserID, ok := deliverycontext.GetUserID(c.Request().Context())
		assert.True(t, ok)
		assert.Equal(t, userID, ctxUserID)

		return c.NoContent(http.StatusOK)
	})

	err := handler(c)

	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}
