package handler

import (
	"penpal/internal/delivery/api/validator"
	domainerrors "penpal/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// parseID reads a user id from a path parameter, query value or body field.
func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidID.WithDetails(raw)
	}

	return id, nil
}

// parseLetterID reads a letter id from a path parameter.
func parseLetterID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidLetterID.WithDetails(raw)
	}

	return id, nil
}

// bindAndValidate decodes the request body into req and runs its validate tags.
// A nil return means req is ready to use; otherwise the error is ready to be returned.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("malformed request body")
	}

	if err := c.Validate(req); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(validator.Describe(err))
	}

	return nil
}
