package errors

import (
	"net/http"
	"testing"

	"penpal/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	detailed := ErrUserNotFound.WithDetails("42")

	assert.True(t, errors.Is(detailed, ErrUserNotFound))
	assert.False(t, errors.Is(detailed, ErrLetterNotFound))
	assert.Equal(t, "Usuário não encontrado: 42", detailed.Error())
	assert.Empty(t, ErrUserNotFound.Details(), "original must stay untouched")
}

func TestBaseError_SurvivesWrapping(t *testing.T) {
	wrapped := errors.Wrap(ErrInvalidCredentials, "login")

	appErr, ok := errors.AsType[AppError](wrapped)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "INVALID_CREDENTIALS", appErr.ErrorCode())
	assert.Equal(t, "Senha incorreta", appErr.Message())
}

func TestBaseError_WrapMessage(t *testing.T) {
	err := ErrLetterDeletionFailed.WrapMessage("disk full")

	assert.True(t, errors.Is(err, ErrLetterDeletionFailed))
	assert.Contains(t, err.Error(), "disk full")
}

func TestPredefinedErrors_StatusCodes(t *testing.T) {
	tests := []struct {
		err  *BaseError
		code int
	}{
		{ErrUserNotFound, http.StatusNotFound},
		{ErrLetterNotFound, http.StatusNotFound},
		{ErrNoUnansweredLetters, http.StatusNotFound},
		{ErrEmptyReplyBody, http.StatusBadRequest},
		{ErrInvalidID, http.StatusBadRequest},
		{ErrInvalidLetterID, http.StatusBadRequest},
		{ErrInvalidLetterIDs, http.StatusBadRequest},
		{ErrValidationFailed, http.StatusBadRequest},
		{ErrInvalidCredentials, http.StatusUnauthorized},
		{ErrLetterDeletionFailed, http.StatusInternalServerError},
		{ErrInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.ErrorCode(), func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.HTTPCode())
			assert.NotEmpty(t, tt.err.Message())
		})
	}
}
