package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rimonomega/sampleapp/internal/core/ports"
	"github.com/rimonomega/sampleapp/internal/pkg/metrics"
)

// MicropostHandler serves the feed and micropost creation/removal.
type MicropostHandler struct {
	posts ports.MicropostService
	feed  ports.FeedService
}

func NewMicropostHandler(posts ports.MicropostService, feed ports.FeedService) *MicropostHandler {
	return &MicropostHandler{posts: posts, feed: feed}
}

// Feed handles GET /feed.
//
// @Summary      Current user's feed
// @Description  Own microposts and those of followed users, newest first.
// @Tags         microposts
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size, at most 100"
// @Success      200    {object}  feedResponse
// @Failure      400    {object}  errorResponse
// @Failure      401    {object}  errorResponse
// @Router       /feed [get]
func (h *MicropostHandler) Feed(c echo.Context) error {
	var q feedQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &q); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid query"})
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	timer := prometheus.NewTimer(metrics.FeedDuration)
	result, err := h.feed.Feed(c.Request().Context(), user, ports.PageFilter{Page: q.Page, Limit: q.Limit})
	timer.ObserveDuration()
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toFeedResponse(result))
}

// Create handles POST /microposts.
//
// @Summary      Post a micropost
// @Tags         microposts
// @Accept       json
// @Produce      json
// @Param        body  body      micropostRequest  true  "Content"
// @Success      201   {object}  micropostResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /microposts [post]
func (h *MicropostHandler) Create(c echo.Context) error {
	var req micropostRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	post, err := h.posts.Create(c.Request().Context(), user, req.Content)
	if err != nil {
		return err
	}
	metrics.MicropostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toMicropostResponse(post))
}

// Delete handles DELETE /microposts/:id.
//
// @Summary      Delete own micropost
// @Tags         microposts
// @Param        id   path  string  true  "Micropost id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /microposts/{id} [delete]
func (h *MicropostHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	if err := h.posts.Delete(c.Request().Context(), user, c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
