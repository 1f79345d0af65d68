package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/metrics"
	"github.com/esas/tree-species-api/internal/core/ports"
)

// SpeciesHandler handles HTTP requests for the tree species catalog.
type SpeciesHandler struct {
	service ports.SpeciesService
}

func NewSpeciesHandler(service ports.SpeciesService) *SpeciesHandler {
	return &SpeciesHandler{service: service}
}

// List handles GET /api/species.
//
// @Summary      List species
// @Tags         species
// @Produce      json
// @Param        page   query     int  false  "Page number (1-based)"
// @Param        limit  query     int  false  "Page size; omitted returns every species"
// @Success      200    {object}  speciesListResponse
// @Failure      400    {object}  errorResponse
// @Router       /api/species [get]
func (h *SpeciesHandler) List(c echo.Context) error {
	page, err := queryInt(c, "page")
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit")
	if err != nil {
		return err
	}

	result, err := h.service.ListSpecies(c.Request().Context(), ports.SpeciesPage{Page: page, Limit: limit})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, speciesListResponse{
		Species: result.Species,
		Current: result.Current,
		Pages:   result.Pages,
	})
}

// Get handles GET /api/species/:id.
//
// @Summary      Get a species
// @Tags         species
// @Produce      json
// @Param        id   path      string  true  "Species id"
// @Success      200  {object}  domain.Species
// @Failure      400  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/species/{id} [get]
func (h *SpeciesHandler) Get(c echo.Context) error {
	sp, err := h.service.GetSpecies(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sp)
}

// Create handles POST /api/species.
//
// @Summary      Add a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      speciesRequest  true  "Species"
// @Success      201   {object}  domain.Species
// @Failure      401   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/species [post]
func (h *SpeciesHandler) Create(c echo.Context) error {
	var req speciesRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sp, err := h.service.CreateSpecies(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("species", "create").Inc()
	return c.JSON(http.StatusCreated, sp)
}

// Update handles PATCH /api/species/:id.
//
// @Summary      Update a species
// @Tags         species
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Species id"
// @Param        body  body      speciesPatchRequest  true  "Fields to change"
// @Success      200   {object}  domain.Species
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/species/{id} [patch]
func (h *SpeciesHandler) Update(c echo.Context) error {
	var req speciesPatchRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	sp, err := h.service.UpdateSpecies(c.Request().Context(), c.Param("id"), req.toDomain())
	if err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("species", "update").Inc()
	return c.JSON(http.StatusOK, sp)
}

// Delete handles DELETE /api/species/:id.
//
// @Summary      Delete a species
// @Tags         species
// @Security     BearerAuth
// @Param        id  path  string  true  "Species id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/species/{id} [delete]
func (h *SpeciesHandler) Delete(c echo.Context) error {
	if err := h.service.DeleteSpecies(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.CatalogWritesTotal.WithLabelValues("species", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// queryInt parses an optional non-negative integer query parameter.
func queryInt(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Parâmetro "+name+" inválido.")
	}
	return n, nil
}
