package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/metrics"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// VideoHandler handles HTTP requests for educational videos.
type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

// List handles GET /api/videos.
//
// @Summary      List videos
// @Tags         videos
// @Produce      json
// @Success      200  {array}   domain.Video
// @Router       /api/videos [get]
func (h *VideoHandler) List(c echo.Context) error {
	videos, err := h.service.ListVideos(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, videos)
}

// Create handles POST /api/videos.
//
// @Summary      Add a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      videoRequest  true  "Video"
// @Success      201   {object}  domain.Video
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/videos [post]
func (h *VideoHandler) Create(c echo.Context) error {
	var req videoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.CreateVideo(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("video", "create").Inc()
	return c.JSON(http.StatusCreated, v)
}

// Update handles PUT /api/videos/:id.
//
// @Summary      Replace a video
// @Tags         videos
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Video id"
// @Param        body  body      videoRequest  true  "Video"
// @Success      200   {object}  domain.Video
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/videos/{id} [put]
func (h *VideoHandler) Update(c echo.Context) error {
	var req videoRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	v, err := h.service.UpdateVideo(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("video", "update").Inc()
	return c.JSON(http.StatusOK, v)
}

// Delete handles DELETE /api/videos/:id.
//
// @Summary      Remove a video
// @Tags         videos
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Video id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/videos/{id} [delete]
func (h *VideoHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteVideo(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("video", "delete").Inc()
	return c.JSON(http.StatusOK, messageResponse{Message: "Vídeo removido com sucesso."})
}
