package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/metrics"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// GardenHandler handles HTTP requests for botanical gardens.
type GardenHandler struct {
	service ports.GardenService
}

func NewGardenHandler(service ports.GardenService) *GardenHandler {
	return &GardenHandler{service: service}
}

// List handles GET /api/gardens.
//
// @Summary      List gardens
// @Tags         gardens
// @Produce      json
// @Success      200  {array}   domain.Garden
// @Failure      500  {object}  errorResponse
// @Router       /api/gardens [get]
func (h *GardenHandler) List(c echo.Context) error {
	gardens, err := h.service.ListGardens(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, gardens)
}

// Get handles GET /api/gardens/:gardenId.
//
// @Summary      Get a garden with its trees
// @Tags         gardens
// @Produce      json
// @Param        gardenId  path      string  true  "Garden id"
// @Success      200       {object}  domain.GardenDetail
// @Failure      400       {object}  errorResponse
// @Failure      404       {object}  errorResponse
// @Router       /api/gardens/{gardenId} [get]
func (h *GardenHandler) Get(c echo.Context) error {
	garden, err := h.service.GetGarden(c.Request().Context(), c.Param("gardenId"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, garden)
}

// Panoramic handles GET /api/gardens/:id/panoramic-garden.
//
// @Summary      Panoramic view of a garden
// @Tags         gardens
// @Produce      json
// @Param        id   path      string  true  "Garden id"
// @Success      200  {object}  panoramicResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/gardens/{id}/panoramic-garden [get]
func (h *GardenHandler) Panoramic(c echo.Context) error {
	url, err := h.service.PanoramicImage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, panoramicResponse{PanoramicImageURL: url})
}

// Create handles POST /api/gardens.
//
// @Summary      Create a garden
// @Tags         gardens
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createGardenRequest  true  "Garden"
// @Success      201   {object}  domain.Garden
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/gardens [post]
func (h *GardenHandler) Create(c echo.Context) error {
	var req createGardenRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	garden, err := h.service.CreateGarden(c.Request().Context(), req.Name, *req.Longitude, *req.Latitude)
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("garden", "create").Inc()
	return c.JSON(http.StatusCreated, garden)
}

// Delete handles DELETE /api/gardens/:gardenId.
//
// @Summary      Delete a garden
// @Tags         gardens
// @Security     BearerAuth
// @Param        gardenId  path  string  true  "Garden id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/gardens/{gardenId} [delete]
func (h *GardenHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteGarden(c.Request().Context(), c.Param("gardenId")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("garden", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
