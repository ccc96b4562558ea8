package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminMiddleware gates the back office on a shared token. Real session
// validation belongs to the external auth service; this mirrors the
// storefront's flag-based admin gate.
type AdminMiddleware struct {
	token string
}

func NewAdminMiddleware(token string) *AdminMiddleware {
	return &AdminMiddleware{
		token: token,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if m.token == "" {
			return echo.NewHTTPError(http.StatusForbidden, "Back office is disabled")
		}

		provided := c.Request().Header.Get("X-Admin-Token")
		if subtle.ConstantTimeCompare([]byte(provided), []byte(m.token)) != 1 {
			return echo.NewHTTPError(http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
