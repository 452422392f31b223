package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/pkg/metrics"
)

// RequireAdmin lets only administrators through. Mount it after RequireLogin.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rs := websession.FromContext(c); rs != nil {
				user, err := rs.CurrentUser(c.Request().Context())
				if err != nil {
					return err
				}
				if user != nil && user.Admin {
					return next(c)
				}
			}
			metrics.GateRejectionsTotal.WithLabelValues("admin").Inc()
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}
	}
}
