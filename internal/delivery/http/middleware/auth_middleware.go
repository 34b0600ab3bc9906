package middleware

import (
	"strings"

	deliverycontext "msgboard/internal/delivery/context"
	"msgboard/internal/delivery/http/response"
	"msgboard/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer token ahead of protected handlers.
// The two rejection outcomes are deliberately distinct: a request with no
// Authorization header at all is unauthenticated (401), while a request that
// presented a credential that is malformed, mis-signed or expired is
// forbidden (403).
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "CREDENTIALS_MISSING", "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return response.Forbidden(c, "TOKEN_INVALID", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Validate(tokenString)
		if err != nil {
			return response.Forbidden(c, "TOKEN_INVALID", "Invalid or expired token")
		}

		// Expose the caller's identity to handlers and the service layer.
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)

		ctx := deliverycontext.WithUserID(c.Request().Context(), claims.UserID)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
