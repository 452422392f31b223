package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rimonomega/sampleapp/internal/core/ports"
	"github.com/rimonomega/sampleapp/internal/pkg/metrics"
)

// RelationshipHandler lets the current user follow and unfollow others.
type RelationshipHandler struct {
	relationships ports.RelationshipService
}

func NewRelationshipHandler(relationships ports.RelationshipService) *RelationshipHandler {
	return &RelationshipHandler{relationships: relationships}
}

// Follow handles POST /relationships.
//
// @Summary      Follow a user
// @Tags         relationships
// @Accept       json
// @Param        body  body  followRequest  true  "User to follow"
// @Success      204
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /relationships [post]
func (h *RelationshipHandler) Follow(c echo.Context) error {
	var req followRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	created, err := h.relationships.Follow(c.Request().Context(), user, req.FollowedID)
	if err != nil {
		return err
	}
	if created {
		metrics.RelationshipChangesTotal.WithLabelValues("follow").Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Unfollow handles DELETE /relationships/:followed_id.
//
// @Summary      Unfollow a user
// @Tags         relationships
// @Param        followed_id  path  string  true  "User to unfollow"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /relationships/{followed_id} [delete]
func (h *RelationshipHandler) Unfollow(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.relationships.Unfollow(c.Request().Context(), user, c.Param("followed_id")); err != nil {
		return err
	}
	metrics.RelationshipChangesTotal.WithLabelValues("unfollow").Inc()
	return c.NoContent(http.StatusNoContent)
}
