package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/api/websession"
	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/service"
)

// requestSession returns the session bound by the websession middleware. Its
// absence is a wiring bug, not a client error.
func requestSession(c echo.Context) (*service.RequestSession, error) {
	rs := websession.FromContext(c)
	if rs == nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return rs, nil
}

// currentUser resolves the acting identity and fails with
// domain.ErrUnauthenticated for anonymous requests.
func currentUser(c echo.Context) (*domain.User, error) {
	rs, err := requestSession(c)
	if err != nil {
		return nil, err
	}
	user, err := rs.CurrentUser(c.Request().Context())
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthenticated
	}
	return user, nil
}
