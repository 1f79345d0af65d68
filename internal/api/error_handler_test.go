package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/api/handler"
	"github.com/esas/tree-species-api/internal/core/domain"
)

func runErrorHandler(t *testing.T, log zerolog.Logger, err error) (int, string) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/anything", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	NewHTTPErrorHandler(log)(err, c)

	var body errorResponse
	if jerr := json.Unmarshal(rec.Body.Bytes(), &body); jerr != nil {
		t.Fatalf("invalid json %q: %v", rec.Body.String(), jerr)
	}
	return rec.Code, body.Message
}

func TestErrorHandler_DomainErrors(t *testing.T) {
	cases := []struct {
		err  error
		code int
		msg  string
	}{
		{domain.ErrMissingCredentials, http.StatusBadRequest, "Nome de utilizador e senha são obrigatórios."},
		{domain.ErrUserNotFound, http.StatusUnauthorized, "Utilizador não encontrado."},
		{domain.ErrInvalidPassword, http.StatusUnauthorized, "Senha incorreta."},
		{domain.ErrInvalidOrMissingToken, http.StatusUnauthorized, "Token inválido ou ausente."},
		{domain.ErrExpiredToken, http.StatusUnauthorized, "Token expirado."},
		{domain.ErrForbidden, http.StatusForbidden, "Acesso negado."},
		{domain.ErrInvalidID, http.StatusBadRequest, "Identificador inválido."},
		{domain.ErrGardenNotFound, http.StatusNotFound, "Jardim não encontrado."},
		{domain.ErrSpeciesNotFound, http.StatusNotFound, "Espécie não encontrada."},
		{domain.ErrVideoNotFound, http.StatusNotFound, "Vídeo não encontrado."},
		{domain.ErrPointNotFound, http.StatusNotFound, "Ponto de interesse não encontrado."},
		{fmt.Errorf("get garden: %w", domain.ErrGardenNotFound), http.StatusNotFound, "Jardim não encontrado."},
	}

	for _, tc := range cases {
		code, msg := runErrorHandler(t, zerolog.Nop(), tc.err)
		if code != tc.code || msg != tc.msg {
			t.Errorf("%v: got %d %q, want %d %q", tc.err, code, msg, tc.code, tc.msg)
		}
	}
}

func TestErrorHandler_EchoHTTPError(t *testing.T) {
	code, msg := runErrorHandler(t, zerolog.Nop(), echo.NewHTTPError(http.StatusUnprocessableEntity, "name is required"))
	if code != http.StatusUnprocessableEntity || msg != "name is required" {
		t.Fatalf("got %d %q", code, msg)
	}

	code, _ = runErrorHandler(t, zerolog.Nop(), echo.ErrNotFound)
	if code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", code)
	}
}

func TestErrorHandler_UnknownErrorIsGeneric(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf)

	code, msg := runErrorHandler(t, log, errors.New("mongo: connection reset by peer"))
	if code != http.StatusInternalServerError || msg != "Erro interno do servidor." {
		t.Fatalf("got %d %q", code, msg)
	}
	if !strings.Contains(buf.String(), "connection reset by peer") {
		t.Fatalf("expected cause to be logged, got %q", buf.String())
	}
}

func TestErrorHandler_MissingPrincipalIsInternal(t *testing.T) {
	code, msg := runErrorHandler(t, zerolog.Nop(), handler.ErrNoPrincipal)
	if code != http.StatusInternalServerError || msg != "Erro interno do servidor." {
		t.Fatalf("got %d %q", code, msg)
	}
}
