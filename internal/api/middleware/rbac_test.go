package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/core/domain"
)

func newRBACContext(p *domain.Principal) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodDelete, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if p != nil {
		c.Set(PrincipalKey, p)
	}
	return c, rec
}

func TestRequireRole_Allows(t *testing.T) {
	c, rec := newRBACContext(&domain.Principal{ID: "u-1", Username: "root", Role: domain.RoleAdmin})

	called := false
	handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusNoContent)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestRequireRole_AnyOfRoles(t *testing.T) {
	c, _ := newRBACContext(&domain.Principal{ID: "u-2", Role: domain.RoleUser})

	handler := RequireRole(domain.RoleAdmin, domain.RoleUser)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("expected user role to be allowed, got %v", err)
	}
}

func TestRequireRole_Forbids(t *testing.T) {
	for _, p := range []*domain.Principal{
		{ID: "u-2", Username: "bob", Role: domain.RoleUser},
		{ID: "u-3", Username: "eve", Role: ""},
		{ID: "u-4", Username: "mallory", Role: "Admin"},
		nil,
	} {
		c, _ := newRBACContext(p)

		handler := RequireRole(domain.RoleAdmin)(func(c echo.Context) error {
			t.Fatalf("principal %+v: should not reach next handler", p)
			return nil
		})

		err := handler(c)
		if !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("principal %+v: expected ErrForbidden, got %v", p, err)
		}
		if errors.Is(err, domain.ErrInvalidOrMissingToken) {
			t.Fatalf("gate must never emit token errors")
		}
	}
}
