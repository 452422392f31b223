package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
	"github.com/rimonomega/sampleapp/internal/pkg/metrics"
)

// SessionHandler handles signup, login, logout and the current identity.
type SessionHandler struct {
	users ports.UserService
}

func NewSessionHandler(users ports.UserService) *SessionHandler {
	return &SessionHandler{users: users}
}

// Signup creates an account and logs it in.
//
// @Summary      Sign up
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /signup [post]
func (h *SessionHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	rs, err := requestSession(c)
	if err != nil {
		return err
	}

	user, err := h.users.Register(c.Request().Context(), domain.NewUserInput{
		Name:                 req.Name,
		Email:                req.Email,
		Password:             req.Password,
		PasswordConfirmation: req.PasswordConfirmation,
	})
	if err != nil {
		return err
	}

	rs.LogIn(user)
	return c.JSON(http.StatusCreated, sessionResponse{User: toUserResponse(user)})
}

// Login authenticates an email/password pair and starts a session. With
// remember_me the identity also survives the browser session.
//
// @Summary      Log in
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  sessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /login [post]
func (h *SessionHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	rs, err := requestSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := h.users.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			metrics.LoginAttemptsTotal.WithLabelValues("invalid_credentials").Inc()
		} else {
			metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	rs.LogIn(user)
	if req.RememberMe {
		err = rs.Remember(ctx, user)
		metrics.RememberedLoginsTotal.Inc()
	} else {
		err = rs.Forget(ctx, user)
	}
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("error").Inc()
		return err
	}
	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()

	resp := sessionResponse{User: toUserResponse(user), Remembered: req.RememberMe}
	if url, ok := rs.TakeForwardingURL(); ok {
		resp.RedirectTo = url
	}
	return c.JSON(http.StatusOK, resp)
}

// Logout ends the session. Logging out twice is harmless.
//
// @Summary      Log out
// @Tags         sessions
// @Success      204
// @Router       /logout [delete]
func (h *SessionHandler) Logout(c echo.Context) error {
	rs, err := requestSession(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	if rs.LoggedIn(ctx) {
		if err := rs.LogOut(ctx); err != nil {
			return err
		}
		metrics.LogoutsTotal.Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the acting identity.
//
// @Summary      Current user
// @Tags         sessions
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /me [get]
func (h *SessionHandler) Me(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

// Revoke rotates the session token, logging out every other session of the
// current user while keeping this one.
//
// @Summary      Log out other sessions
// @Tags         sessions
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /sessions/revoke [post]
func (h *SessionHandler) Revoke(c echo.Context) error {
	rs, err := requestSession(c)
	if err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	updated, err := h.users.RevokeSessions(c.Request().Context(), user)
	if err != nil {
		return err
	}
	rs.RefreshSession(updated)
	return c.NoContent(http.StatusNoContent)
}
