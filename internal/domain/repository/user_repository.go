// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"penpal/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
type UserRepository interface {
	// Create persists a new user and fills in the store-assigned ID and timestamps.
	Create(ctx context.Context, user *entity.User) error

	// FindByID retrieves a single user, mailboxes included.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByName retrieves the first user registered under name.
	FindByName(ctx context.Context, name string) (*entity.User, error)

	// FindAll retrieves every user in registration order.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// FindNames maps each existing id to the user's name. Unknown ids are omitted.
	FindNames(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error)

	// Update persists the account fields of an existing user (not its mailboxes).
	Update(ctx context.Context, user *entity.User) error

	// Delete removes a user. Letters written by the user are left in place.
	Delete(ctx context.Context, id uuid.UUID) error

	// AppendSentLetter appends letterID to the user's sent mailbox.
	AppendSentLetter(ctx context.Context, userID, letterID uuid.UUID) error

	// AppendReceivedLetter appends letterID to the user's received mailbox.
	AppendReceivedLetter(ctx context.Context, userID, letterID uuid.UUID) error
}
