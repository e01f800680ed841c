package handler

import (
	"log/slog"
	"net/http"

	"penpal/internal/delivery/api/response"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// LetterHandlerParams holds dependencies for LetterHandler, injected by Fx.
type LetterHandlerParams struct {
	fx.In

	LetterUC usecase.LetterUsecase
	Logger   *slog.Logger
}

// LetterHandler holds dependencies for letter handlers
type LetterHandler struct {
	letterUC usecase.LetterUsecase
	logger   *slog.Logger
}

// NewLetterHandler is the constructor for LetterHandler
func NewLetterHandler(params LetterHandlerParams) *LetterHandler {
	return &LetterHandler{
		letterUC: params.LetterUC,
		logger:   params.Logger,
	}
}

// WriteLetterRequest is the body of POST /api/cartas and POST /api/cartas/:id/respostas.
// An empty body is rejected for replies only, by the use case.
type WriteLetterRequest struct {
	AuthorID string `json:"escritor" validate:"required,uuid"`
	Body     string `json:"conteudo"`
}

// DeleteLettersRequest is the body of DELETE /api/cartas.
type DeleteLettersRequest struct {
	IDs []string `json:"ids"`
}

// SubmitLetter writes a new letter into the pool.
func (h *LetterHandler) SubmitLetter(c echo.Context) error {
	var req WriteLetterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	authorID, err := parseID(req.AuthorID)
	if err != nil {
		return err
	}

	letter, err := h.letterUC.Submit(c.Request().Context(), authorID, req.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLetterResponse(letter))
}

// ReplyToLetter answers the letter in the path.
func (h *LetterHandler) ReplyToLetter(c echo.Context) error {
	parentID, err := parseLetterID(c.Param("id"))
	if err != nil {
		return err
	}

	var req WriteLetterRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	replierID, err := parseID(req.AuthorID)
	if err != nil {
		return err
	}

	output, err := h.letterUC.Reply(c.Request().Context(), parentID, replierID, req.Body)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, ReplyResponse{
		Reply:  toLetterResponse(output.Reply),
		Parent: toLetterResponse(output.Parent),
	})
}

// DrawUnanswered hands out one random unanswered letter, as a one-element array.
func (h *LetterHandler) DrawUnanswered(c echo.Context) error {
	requesterID, err := parseID(c.QueryParam("escritorId"))
	if err != nil {
		return err
	}

	letter, err := h.letterUC.DrawUnanswered(c.Request().Context(), requesterID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, []LetterResponse{toLetterResponse(letter)})
}

// ListByAuthor lists the letters written by the "escritor" query parameter.
func (h *LetterHandler) ListByAuthor(c echo.Context) error {
	authorID, err := parseID(c.QueryParam("escritor"))
	if err != nil {
		return err
	}

	letters, err := h.letterUC.ListByAuthor(c.Request().Context(), authorID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLetterResponses(letters))
}

// ListReceived lists the letters addressed to the user in the path.
func (h *LetterHandler) ListReceived(c echo.Context) error {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return err
	}

	letters, err := h.letterUC.ListReceived(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toLetterResponses(letters))
}

// Inbox lists the replies addressed to the user in the path, writers populated.
func (h *LetterHandler) Inbox(c echo.Context) error {
	userID, err := parseID(c.Param("userId"))
	if err != nil {
		return err
	}

	letters, err := h.letterUC.Inbox(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toInboxResponses(letters))
}

// DeleteLetters removes the letters listed in the body.
func (h *LetterHandler) DeleteLetters(c echo.Context) error {
	var req DeleteLettersRequest
	if err := c.Bind(&req); err != nil || len(req.IDs) == 0 {
		return domainerrors.ErrInvalidLetterIDs
	}

	ids := make([]uuid.UUID, 0, len(req.IDs))
	for _, raw := range req.IDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return domainerrors.ErrInvalidLetterIDs.WithDetails(raw)
		}
		ids = append(ids, id)
	}

	if _, err := h.letterUC.Delete(c.Request().Context(), ids); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Cartas excluídas com sucesso.")
}
