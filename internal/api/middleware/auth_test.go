package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/core/domain"
)

type stubAuthService struct {
	authenticateFn func(ctx context.Context, token string) (*domain.Principal, error)
	calls          int
}

func (s *stubAuthService) Login(context.Context, string, string) (string, error) {
	return "", errors.New("not used")
}

func (s *stubAuthService) Authenticate(ctx context.Context, token string) (*domain.Principal, error) {
	s.calls++
	return s.authenticateFn(ctx, token)
}

func acceptToken(want string, p *domain.Principal) *stubAuthService {
	return &stubAuthService{authenticateFn: func(_ context.Context, token string) (*domain.Principal, error) {
		if token != want {
			return nil, domain.ErrInvalidOrMissingToken
		}
		return p, nil
	}}
}

func newAuthContext(header string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if header != "" {
		req.Header.Set(echo.HeaderAuthorization, header)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	alice := &domain.Principal{ID: "u-1", Username: "alice", Role: domain.RoleUser}
	stub := acceptToken("good.token.sig", alice)
	c, rec := newAuthContext("Bearer good.token.sig")

	called := false
	handler := Auth(stub)(func(c echo.Context) error {
		called = true
		if got, _ := c.Get(PrincipalKey).(*domain.Principal); got != alice {
			t.Fatalf("principal not set on echo context: %+v", got)
		}
		if got, ok := domain.PrincipalFromContext(c.Request().Context()); !ok || got != alice {
			t.Fatalf("principal not set on request context: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	stub := acceptToken("tok", &domain.Principal{ID: "u-1"})
	c, _ := newAuthContext("bearer tok")

	handler := Auth(stub)(func(c echo.Context) error { return nil })
	if err := handler(c); err != nil {
		t.Fatalf("expected lowercase scheme to be accepted, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	for _, header := range []string{
		"",
		"Bearer",
		"Bearer ",
		"Bearer    ",
		"Token abc",
		"Basic YWxpY2U6c2VjcmV0",
		"abc",
	} {
		stub := acceptToken("abc", &domain.Principal{ID: "u-1"})
		c, _ := newAuthContext(header)

		handler := Auth(stub)(func(c echo.Context) error {
			t.Fatalf("header %q: should not reach next", header)
			return nil
		})

		if err := handler(c); !errors.Is(err, domain.ErrInvalidOrMissingToken) {
			t.Fatalf("header %q: expected ErrInvalidOrMissingToken, got %v", header, err)
		}
		if stub.calls != 0 {
			t.Fatalf("header %q: verifier should not be called", header)
		}
	}
}

func TestAuthMiddleware_PropagatesVerifierError(t *testing.T) {
	for _, want := range []error{
		domain.ErrInvalidOrMissingToken,
		domain.ErrExpiredToken,
		domain.ErrUserNotFound,
	} {
		stub := &stubAuthService{authenticateFn: func(context.Context, string) (*domain.Principal, error) {
			return nil, want
		}}
		c, _ := newAuthContext("Bearer some.jwt.value")

		handler := Auth(stub)(func(c echo.Context) error {
			t.Fatalf("should not reach next")
			return nil
		})

		if err := handler(c); !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
		if c.Get(PrincipalKey) != nil {
			t.Fatalf("principal must not be attached on failure")
		}
	}
}
