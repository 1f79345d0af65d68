package handler

import (
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/middleware"
	"github.com/esas/tree-species-api/internal/core/domain"
)

// ErrNoPrincipal means a protected handler ran without the Auth middleware in
// front of it. It is a routing fault, so it surfaces as a 500.
var ErrNoPrincipal = errors.New("handler: no principal in request context")

// ctxPrincipal returns the principal attached by the Auth middleware.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	p, ok := c.Get(middleware.PrincipalKey).(*domain.Principal)
	if !ok || p == nil {
		return nil, ErrNoPrincipal
	}
	return p, nil
}
