package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/pkg/metrics"
)

// RequireLogin rejects anonymous requests. For GET requests the requested URL
// is stored so the client can be sent back after logging in.
func RequireLogin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rs := websession.FromContext(c)
			if rs != nil && rs.LoggedIn(c.Request().Context()) {
				return next(c)
			}

			if rs != nil && c.Request().Method == http.MethodGet {
				rs.StoreLocation(c.Request().URL.RequestURI())
			}
			metrics.GateRejectionsTotal.WithLabelValues("login").Inc()
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Please log in."})
		}
	}
}
