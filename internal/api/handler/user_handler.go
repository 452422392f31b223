package handler

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/core/domain"
	"github.com/rimonomega/sampleapp/internal/core/ports"
)

// UserHandler serves user profiles, follower lists and admin removal.
type UserHandler struct {
	users         ports.UserService
	relationships ports.RelationshipService
	posts         ports.MicropostService
}

func NewUserHandler(users ports.UserService, relationships ports.RelationshipService, posts ports.MicropostService) *UserHandler {
	return &UserHandler{users: users, relationships: relationships, posts: posts}
}

// Get handles GET /users/:id.
//
// @Summary      Show a user
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [get]
func (h *UserHandler) Get(c echo.Context) error {
	current, err := currentUser(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	user, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	count, err := h.posts.Count(ctx, user.ID)
	if err != nil {
		return err
	}
	following, err := h.relationships.IsFollowing(ctx, current.ID, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, profileResponse{
		User:          toUserResponse(user),
		Microposts:    count,
		Following:     following,
		IsCurrentUser: current.SameAs(user),
	})
}

// Destroy handles DELETE /users/:id. Admin only.
//
// @Summary      Delete a user and everything it owns
// @Tags         users
// @Param        id   path  string  true  "User id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Destroy(c echo.Context) error {
	if err := h.users.Destroy(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Followers handles GET /users/:id/followers.
//
// @Summary      List followers
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  usersResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/followers [get]
func (h *UserHandler) Followers(c echo.Context) error {
	return h.listRelated(c, h.relationships.Followers)
}

// Following handles GET /users/:id/following.
//
// @Summary      List followed users
// @Tags         users
// @Produce      json
// @Param        id   path      string  true  "User id"
// @Success      200  {object}  usersResponse
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/following [get]
func (h *UserHandler) Following(c echo.Context) error {
	return h.listRelated(c, h.relationships.Following)
}

func (h *UserHandler) listRelated(c echo.Context, list func(ctx context.Context, userID string) ([]*domain.User, error)) error {
	ctx := c.Request().Context()
	user, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		return err
	}
	users, err := list(ctx, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUsersResponse(users))
}
