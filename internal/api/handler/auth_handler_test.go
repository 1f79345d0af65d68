package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/esas/tree-species-api/internal/api/middleware"
	"github.com/esas/tree-species-api/internal/core/domain"
)

type stubAuthService struct {
	loginFn func(ctx context.Context, username, password string) (string, error)
}

func (s *stubAuthService) Login(ctx context.Context, username, password string) (string, error) {
	return s.loginFn(ctx, username, password)
}

func (s *stubAuthService) Authenticate(context.Context, string) (*domain.Principal, error) {
	return nil, errors.New("not used")
}

func newJSONContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(_ context.Context, username, password string) (string, error) {
			if username != "alice" || password != "secret" {
				t.Fatalf("unexpected args: %s %s", username, password)
			}
			return "Bearer header.payload.sig", nil
		},
	}
	handler := NewAuthHandler(stub)

	c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"secret"}`)
	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "Bearer header.payload.sig" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
	if len(resp) != 1 {
		t.Fatalf("expected only the token in the body, got %v", resp)
	}
}

func TestAuthHandler_Login_ReturnsServiceError(t *testing.T) {
	for _, want := range []error{
		domain.ErrMissingCredentials,
		domain.ErrUserNotFound,
		domain.ErrInvalidPassword,
	} {
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (string, error) { return "", want },
		}
		c, rec := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":"alice","password":"wrong"}`)

		err := NewAuthHandler(stub).Login(c)
		if !errors.Is(err, want) {
			t.Fatalf("expected %v, got %v", want, err)
		}
		if rec.Body.Len() != 0 {
			t.Fatalf("handler must not write a body on failure")
		}
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(context.Context, string, string) (string, error) {
			t.Fatalf("service should not be called")
			return "", nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/api/auth/login", `{"username":`)

	err := NewAuthHandler(stub).Login(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	c, rec := newJSONContext(http.MethodGet, "/api/auth/user", "")
	c.Set(middleware.PrincipalKey, &domain.Principal{ID: "u-1", Username: "alice", Role: domain.RoleAdmin})

	if err := NewAuthHandler(&stubAuthService{}).Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var got domain.Principal
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if got.ID != "u-1" || got.Username != "alice" || got.Role != domain.RoleAdmin {
		t.Fatalf("unexpected principal: %+v", got)
	}
}

func TestAuthHandler_Me_WithoutPrincipal(t *testing.T) {
	c, _ := newJSONContext(http.MethodGet, "/api/auth/user", "")

	err := NewAuthHandler(&stubAuthService{}).Me(c)
	if !errors.Is(err, ErrNoPrincipal) {
		t.Fatalf("expected ErrNoPrincipal, got %v", err)
	}
	if errors.Is(err, domain.ErrInvalidOrMissingToken) {
		t.Fatal("a missing principal is a server fault, not a bad token")
	}
}
