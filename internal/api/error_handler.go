package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/esas/tree-species-api/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Message string `json:"message"`
}

// errorMapping pairs a domain sentinel with its status code and public message.
type errorMapping struct {
	err     error
	code    int
	message string
}

var knownErrors = []errorMapping{
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
}

const internalErrorMessage = "Erro interno do servidor."

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes and Portuguese messages.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"message": "<text>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, errorResponse{Message: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	for _, m := range knownErrors {
		if errors.Is(err, m.err) {
			return m.code, m.message
		}
	}

	// Echo's own errors (bind failures, 404 from router, validation, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		if he.Code >= http.StatusInternalServerError {
			logUnhandled(log, c, err)
			return he.Code, internalErrorMessage
		}
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	logUnhandled(log, c, err)
	return http.StatusInternalServerError, internalErrorMessage
}

func logUnhandled(log zerolog.Logger, c echo.Context, err error) {
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
		Msg("unhandled error")
}
