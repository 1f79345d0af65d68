package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/metrics"
	"github.com/esas/tree-species-api/internal/core/domain"
)

// RequireRole admits only principals holding one of allowedRoles. It must run
// after Auth; a request without a principal is forbidden.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(*domain.Principal)
			if !principal.HasRole(allowedRoles...) {
				metrics.AuthorizationDecisionsTotal.WithLabelValues("denied").Inc()
				return domain.ErrForbidden
			}
			metrics.AuthorizationDecisionsTotal.WithLabelValues("allowed").Inc()
			return next(c)
		}
	}
}
