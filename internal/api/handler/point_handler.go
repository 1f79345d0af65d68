package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/metrics"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// PointHandler handles HTTP requests for points of interest.
type PointHandler struct {
	service ports.PointService
}

func NewPointHandler(service ports.PointService) *PointHandler {
	return &PointHandler{service: service}
}

// List handles GET /api/points-of-interest.
//
// @Summary      List points of interest
// @Tags         points-of-interest
// @Produce      json
// @Success      200  {array}  domain.PointOfInterest
// @Router       /api/points-of-interest [get]
func (h *PointHandler) List(c echo.Context) error {
	points, err := h.service.ListPoints(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, points)
}

// Get handles GET /api/points-of-interest/:id.
//
// @Summary      Get a point of interest
// @Tags         points-of-interest
// @Produce      json
// @Param        id   path      string  true  "Point id"
// @Success      200  {object}  domain.PointOfInterest
// @Failure      404  {object}  errorResponse
// @Router       /api/points-of-interest/{id} [get]
func (h *PointHandler) Get(c echo.Context) error {
	p, err := h.service.GetPoint(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, p)
}

// Create handles POST /api/points-of-interest.
//
// @Summary      Create a point of interest
// @Tags         points-of-interest
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      pointRequest  true  "Point of interest"
// @Success      201   {object}  domain.PointOfInterest
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/points-of-interest [post]
func (h *PointHandler) Create(c echo.Context) error {
	var req pointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.CreatePoint(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("point", "create").Inc()
	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/points-of-interest/:id.
//
// @Summary      Replace a point of interest
// @Tags         points-of-interest
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string        true  "Point id"
// @Param        body  body      pointRequest  true  "Point of interest"
// @Success      200   {object}  domain.PointOfInterest
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/points-of-interest/{id} [put]
func (h *PointHandler) Update(c echo.Context) error {
	var req pointRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	p, err := h.service.UpdatePoint(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("point", "update").Inc()
	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/points-of-interest/:id.
//
// @Summary      Remove a point of interest
// @Tags         points-of-interest
// @Security     BearerAuth
// @Param        id  path  string  true  "Point id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/points-of-interest/{id} [delete]
func (h *PointHandler) Delete(c echo.Context) error {
	if err := h.service.DeletePoint(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("point", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}
