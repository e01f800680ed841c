// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "penpal/internal/delivery/context"
	"penpal/internal/domain/entity"
	domainerrors "penpal/internal/domain/errors"
	"penpal/internal/domain/repository"
	"penpal/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account with empty mailboxes.
func (srv *userService) Register(ctx context.Context, input usecase.RegisterUserInput) (*entity.User, error) {
	if strings.TrimSpace(input.Name) == "" || input.Secret == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("nome and senha are required")
	}

	user := entity.NewUser(input.Name, input.Secret, input.BirthDate, input.Age)
	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("user_id", user.ID.String()))

	return user, nil
}

// List returns every account.
func (srv *userService) List(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// Get returns a single account.
func (srv *userService) Get(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err, id)
	}

	return user, nil
}

// Update applies the supplied fields and returns the account as stored afterwards.
func (srv *userService) Update(ctx context.Context, id uuid.UUID, input usecase.UpdateUserInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, mapUserLookupError(err, id)
	}

	patch := entity.UserPatch{
		Name:      input.Name,
		Secret:    input.Secret,
		BirthDate: input.BirthDate,
		Age:       input.Age,
	}
	if patch.IsEmpty() {
		return user, nil
	}
	patch.Apply(user)

	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, mapUserLookupError(err, id)
	}

	return user, nil
}

// Delete removes the account. Letters and mailbox references to it are kept.
func (srv *userService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.userRepo.Delete(ctx, id); err != nil {
		return mapUserLookupError(err, id)
	}

	srv.log(ctx).Info("User deleted", slog.String("user_id", id.String()))

	return nil
}

// Login looks the account up by name and compares the plaintext secret.
func (srv *userService) Login(ctx context.Context, input usecase.LoginInput) (*entity.User, error) {
	user, err := srv.userRepo.FindByName(ctx, input.Name)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by name")
	}

	if !user.SecretMatches(input.Secret) {
		srv.log(ctx).Info("Login rejected", slog.String("user_id", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}
