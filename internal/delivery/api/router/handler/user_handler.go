// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"penpal/internal/delivery/api/response"
	"penpal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// UserHandlerParams holds dependencies for UserHandler, injected by Fx.
type UserHandlerParams struct {
	fx.In

	UserUC usecase.UserUsecase
	Logger *slog.Logger
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(params UserHandlerParams) *UserHandler {
	return &UserHandler{
		uc:     params.UserUC,
		logger: params.Logger,
	}
}

// RegisterUserRequest is the body of POST /api/usuarios.
type RegisterUserRequest struct {
	Name      string `json:"nome" validate:"required"`
	Secret    string `json:"senha" validate:"required"`
	BirthDate string `json:"nascimento"`
	Age       int    `json:"idade"`
}

// UpdateUserRequest is the body of PUT /api/usuarios/:id. Absent fields are kept.
type UpdateUserRequest struct {
	Name      *string `json:"nome"`
	Secret    *string `json:"senha"`
	BirthDate *string `json:"nascimento"`
	Age       *int    `json:"idade"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Name   string `json:"nome" validate:"required"`
	Secret string `json:"senha" validate:"required"`
}

// RegisterUser handles the user registration request.
func (h *UserHandler) RegisterUser(c echo.Context) error {
	var req RegisterUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Register(c.Request().Context(), usecase.RegisterUserInput{
		Name:      req.Name,
		Secret:    req.Secret,
		BirthDate: req.BirthDate,
		Age:       req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toUserResponse(user))
}

// ListUsers returns every account.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.List(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponses(users))
}

// GetUser returns one account.
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	user, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// UpdateUser changes the supplied account fields.
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Update(c.Request().Context(), id, usecase.UpdateUserInput{
		Name:      req.Name,
		Secret:    req.Secret,
		BirthDate: req.BirthDate,
		Age:       req.Age,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}

// DeleteUser removes an account.
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c.Param("id"))
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "Usuário excluído com sucesso")
}

// Login handles the login request and returns the full account.
func (h *UserHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	user, err := h.uc.Login(c.Request().Context(), usecase.LoginInput{
		Name:   req.Name,
		Secret: req.Secret,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toUserResponse(user))
}
