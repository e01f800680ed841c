package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"penpal/internal/delivery/api/middleware"
	"penpal/internal/delivery/api/response"
	"penpal/internal/delivery/api/validator"
	mockUsecase "penpal/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type handlerFixtures struct {
	echo     *echo.Echo
	userUC   *mockUsecase.MockUserUsecase
	letterUC *mockUsecase.MockLetterUsecase
}

// newTestServer wires both handlers onto an echo instance with the production
// validator and error handler.
func newTestServer(t *testing.T) handlerFixtures {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	userUC := mockUsecase.NewMockUserUsecase(t)
	letterUC := mockUsecase.NewMockLetterUsecase(t)

	users := NewUserHandler(UserHandlerParams{UserUC: userUC, Logger: logger})
	letters := NewLetterHandler(LetterHandlerParams{LetterUC: letterUC, Logger: logger})

	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(logger).HandleHTTPError

	e.GET("/", Root)
	e.GET("/health", HealthCheck)

	e.POST("/api/usuarios", users.RegisterUser)
	e.GET("/api/usuarios", users.ListUsers)
	e.GET("/api/usuarios/:id", users.GetUser)
	e.PUT("/api/usuarios/:id", users.UpdateUser)
	e.DELETE("/api/usuarios/:id", users.DeleteUser)
	e.POST("/api/login", users.Login)

	e.GET("/api/cartas", letters.ListByAuthor)
	e.POST("/api/cartas", letters.SubmitLetter)
	e.DELETE("/api/cartas", letters.DeleteLetters)
	e.POST("/api/cartas/:id/respostas", letters.ReplyToLetter)
	e.GET("/api/cartas-nao-respondidas", letters.DrawUnanswered)
	e.GET("/api/cartas-recebidas/:userId", letters.ListReceived)
	e.GET("/api/caixa-entrada/:userId", letters.Inbox)

	return handlerFixtures{echo: e, userUC: userUC, letterUC: letterUC}
}

func (f handlerFixtures) do(method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	return out
}

func requireErrorCode(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) response.ErrorResponse {
	t.Helper()

	require.Equal(t, status, rec.Code, rec.Body.String())
	body := decodeBody[response.ErrorResponse](t, rec)
	require.Equal(t, code, body.Code)

	return body
}

