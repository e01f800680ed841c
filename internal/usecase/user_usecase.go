// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to register a new user.
type RegisterUserInput struct {
	Name      string
	Secret    string
	BirthDate string
	Age       int
}

// UpdateUserInput carries the fields to change. Nil fields are left untouched.
type UpdateUserInput struct {
	Name      *string
	Secret    *string
	BirthDate *string
	Age       *int
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Name   string
	Secret string
}

// UserUsecase defines the interface for account operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	Register(ctx context.Context, input RegisterUserInput) (*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*entity.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
	// Login returns the full account on success, secret included.
	Login(ctx context.Context, input LoginInput) (*entity.User, error)
}
