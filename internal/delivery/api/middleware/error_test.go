package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"penpal/internal/delivery/api/response"
	deliverycontext "penpal/internal/delivery/context"
	domainerrors "penpal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func handle(t *testing.T, err error) (*httptest.ResponseRecorder, response.ErrorResponse, string) {
	t.Helper()

	var logs bytes.Buffer
	m := NewErrorMiddleware(slog.New(slog.NewJSONHandler(&logs, nil)))

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	deliverycontext.SetRequestID(c, "req-1")

	m.HandleHTTPError(err, c)

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return rec, body, logs.String()
}

func TestErrorMiddleware_AppError(t *testing.T) {
	rec, body, logs := handle(t, errors.WithStack(domainerrors.ErrLetterNotFound.WithDetails("abc")))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "LETTER_NOT_FOUND", body.Code)
	assert.Equal(t, "Carta original não encontrada", body.Error)
	assert.Equal(t, "abc", body.Details)
	assert.Equal(t, "req-1", body.RequestID)
	assert.Empty(t, logs, "client errors are not logged here")
}

func TestErrorMiddleware_UnauthorizedHidesDetails(t *testing.T) {
	rec, body, _ := handle(t, domainerrors.ErrInvalidCredentials.WithDetails("ana"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, body.Details)
}

func TestErrorMiddleware_EchoHTTPError(t *testing.T) {
	rec, body, _ := handle(t, echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"))

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "HTTP_ERROR", body.Code)
	assert.Equal(t, "Method Not Allowed", body.Error)
}

func TestErrorMiddleware_UnknownErrorIsOpaque(t *testing.T) {
	rec, body, logs := handle(t, errors.New("pq: relation \"letters\" does not exist"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "INTERNAL_ERROR", body.Code)
	assert.NotContains(t, rec.Body.String(), "relation")
	assert.Contains(t, logs, "Unhandled error")
	assert.Contains(t, logs, "relation")
}

func TestErrorMiddleware_CommittedResponseIsLeftAlone(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, c.String(http.StatusOK, "done"))

	m.HandleHTTPError(domainerrors.ErrInternalError, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "done", rec.Body.String())
}
